package grpcx

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// renewMargin is how long before expiry a cached token is considered stale.
const renewMargin = 30 * time.Second

// MintFunc produces a fresh bearer token and its lifetime.
type MintFunc func() (token string, ttl time.Duration, err error)

// BearerSource caches a minted token and re-mints it shortly before expiry.
// Safe for concurrent use across all outbound backend clients.
type BearerSource struct {
	mu      sync.Mutex
	mint    MintFunc
	token   string
	expires time.Time
}

func NewBearerSource(mint MintFunc) *BearerSource {
	return &BearerSource{mint: mint}
}

// Token returns the cached token, minting a new one when absent or stale.
func (s *BearerSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expires.Add(-renewMargin)) {
		return s.token, nil
	}

	token, ttl, err := s.mint()
	if err != nil {
		return "", err
	}

	s.token = token
	s.expires = time.Now().Add(ttl)
	return token, nil
}

// UnaryClientCredentials attaches "authorization: Bearer <service-token>"
// metadata to every outbound unary call so backends can verify the gateway's
// provenance.
func UnaryClientCredentials(src *BearerSource) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		token, err := src.Token()
		if err != nil {
			return err
		}

		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
