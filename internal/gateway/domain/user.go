package domain

// Identity is the minimal projection of a directory user the gateway needs
// to mint tokens. The directory backend owns the full record; the gateway
// never persists it.
type Identity struct {
	ID       string
	Username string
	Roles    []string
}

// Registration carries the fields forwarded to the directory when creating
// a new user. The gateway never inspects or hashes the password.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}
