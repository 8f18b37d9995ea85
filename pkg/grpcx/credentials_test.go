package grpcx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
)

func TestBearerSourceCachesToken(t *testing.T) {
	mints := 0
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		mints++
		return "token-1", time.Hour, nil
	})

	for range 5 {
		token, err := src.Token()
		require.NoError(t, err)
		require.Equal(t, "token-1", token)
	}
	require.Equal(t, 1, mints)
}

func TestBearerSourceRemintsStaleToken(t *testing.T) {
	mints := 0
	// TTL shorter than the renew margin, so every call re-mints.
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		mints++
		return "token", time.Second, nil
	})

	_, err := src.Token()
	require.NoError(t, err)
	_, err = src.Token()
	require.NoError(t, err)
	require.Equal(t, 2, mints)
}

func TestBearerSourceMintFailure(t *testing.T) {
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		return "", 0, errors.New("signing broke")
	})

	_, err := src.Token()
	require.Error(t, err)
}

func TestUnaryClientCredentials(t *testing.T) {
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		return "svc-token", time.Hour, nil
	})
	interceptor := grpcx.UnaryClientCredentials(src)

	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		got = md.Get("authorization")
		return nil
	}

	err := interceptor(context.Background(), "/users.UsersService/FindOne", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, []string{"Bearer svc-token"}, got)
}

func TestUnaryClientCredentialsMintFailureBlocksCall(t *testing.T) {
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		return "", 0, errors.New("signing broke")
	})
	interceptor := grpcx.UnaryClientCredentials(src)

	invoked := false
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		invoked = true
		return nil
	}

	err := interceptor(context.Background(), "/users.UsersService/FindOne", nil, nil, nil, invoker)
	require.Error(t, err)
	require.False(t, invoked)
}
