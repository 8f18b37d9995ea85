// Package users wraps the directory backend's gRPC surface behind a small
// client the gateway services consume. Credential checks and user creation
// live in the directory; the gateway only projects results into domain types.
package users

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	userspb "github.com/mohamed-achich/api-gateway/internal/proto/users"
	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
)

// Client talks to the users directory service.
type Client struct {
	conn *grpc.ClientConn
	rpc  userspb.UsersServiceClient
}

// Dial creates a lazily-connecting client. Every outbound call carries a
// service bearer token minted from src.
func Dial(addr string, src *grpcx.BearerSource) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcx.UnaryClientCredentials(src)),
	)
	if err != nil {
		return nil, fmt.Errorf("users: dial %s: %w", addr, err)
	}

	return &Client{conn: conn, rpc: userspb.NewUsersServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// State reports the underlying connection state for readiness checks.
func (c *Client) State() connectivity.State {
	return c.conn.GetState()
}

// ValidateCredentials asks the directory to check a username/password pair.
// A definitive "wrong credentials" answer returns (nil, nil); the caller must
// not treat it as an infrastructure failure.
func (c *Client) ValidateCredentials(ctx context.Context, username, password string) (*domain.Identity, error) {
	resp, err := c.rpc.ValidateCredentials(ctx, &userspb.ValidateCredentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("users: validate credentials: %w", err)
	}
	if !resp.GetIsValid() {
		return nil, nil
	}

	id := toIdentity(resp.GetUser())
	return &id, nil
}

// FindOne fetches the current directory record for a user id.
func (c *Client) FindOne(ctx context.Context, id string) (domain.Identity, error) {
	resp, err := c.rpc.FindOne(ctx, &userspb.UserById{Id: id})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("users: find %s: %w", id, err)
	}
	return toIdentity(resp), nil
}

// Create registers a new user in the directory. Duplicate usernames surface
// as an AlreadyExists status from the backend.
func (c *Client) Create(ctx context.Context, reg domain.Registration) (domain.Identity, error) {
	resp, err := c.rpc.Create(ctx, &userspb.CreateUserRequest{
		Username:  reg.Username,
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("users: create: %w", err)
	}
	return toIdentity(resp), nil
}

func toIdentity(u *userspb.User) domain.Identity {
	return domain.Identity{
		ID:       u.GetId(),
		Username: u.GetUsername(),
		Roles:    u.GetRoles(),
	}
}
