package service

import (
	"context"
	"fmt"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
)

// Directory is the slice of the users backend the services need. The gRPC
// client satisfies it; tests substitute a fake.
type Directory interface {
	ValidateCredentials(ctx context.Context, username, password string) (*domain.Identity, error)
	FindOne(ctx context.Context, id string) (domain.Identity, error)
	Create(ctx context.Context, reg domain.Registration) (domain.Identity, error)
}

// UserService fronts the users directory for credential checks and
// registration. The gateway keeps no user records of its own.
type UserService struct {
	directory Directory
}

func NewUserService(directory Directory) *UserService {
	return &UserService{directory: directory}
}

// Validate checks a username/password pair against the directory. A wrong
// pair returns (nil, nil); only infrastructure failures return an error, and
// they always carry ErrDirectoryUnavailable.
func (s *UserService) Validate(ctx context.Context, username, password string) (*domain.Identity, error) {
	identity, err := s.directory.ValidateCredentials(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}
	return identity, nil
}

// Register creates the user in the directory. Backend status errors (a
// duplicate username in particular) pass through untranslated so the HTTP
// layer can map them once.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) (domain.Identity, error) {
	return s.directory.Create(ctx, reg)
}
