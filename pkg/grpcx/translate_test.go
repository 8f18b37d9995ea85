package grpcx_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code codes.Code
		want int
	}{
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.OutOfRange, http.StatusBadRequest},
		{codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{codes.NotFound, http.StatusNotFound},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.Aborted, http.StatusConflict},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.ResourceExhausted, http.StatusTooManyRequests},
		{codes.FailedPrecondition, http.StatusPreconditionFailed},
		{codes.Unimplemented, http.StatusNotImplemented},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.Internal, http.StatusInternalServerError},
		{codes.DataLoss, http.StatusInternalServerError},
		{codes.Canceled, http.StatusInternalServerError},
		{codes.Code(99), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, grpcx.HTTPStatus(tc.code), "code %s", tc.code)
	}
}

func TestTranslateStatusError(t *testing.T) {
	t.Run("already exists", func(t *testing.T) {
		out := grpcx.Translate(status.Error(codes.AlreadyExists, "Username taken"))
		require.Equal(t, http.StatusConflict, out.StatusCode)
		require.Equal(t, "Username taken", out.Message)
	})

	t.Run("not found", func(t *testing.T) {
		out := grpcx.Translate(status.Error(codes.NotFound, "product not found"))
		require.Equal(t, http.StatusNotFound, out.StatusCode)
		require.Equal(t, "product not found", out.Message)
	})

	t.Run("unavailable", func(t *testing.T) {
		out := grpcx.Translate(status.Error(codes.Unavailable, "connection refused"))
		require.Equal(t, http.StatusServiceUnavailable, out.StatusCode)
	})

	t.Run("wrapped status error", func(t *testing.T) {
		err := fmt.Errorf("products: get 42: %w", status.Error(codes.NotFound, "no such product"))
		out := grpcx.Translate(err)
		require.Equal(t, http.StatusNotFound, out.StatusCode)
		require.Equal(t, "no such product", out.Message)
	})

	t.Run("wrap context never leaks", func(t *testing.T) {
		err := fmt.Errorf("orders: update status ord-7: %w",
			status.Error(codes.PermissionDenied, "order belongs to another user"))
		out := grpcx.Translate(err)
		require.Equal(t, http.StatusForbidden, out.StatusCode)
		require.Equal(t, "order belongs to another user", out.Message)
		require.NotContains(t, out.Message, "orders:")
		require.NotContains(t, out.Message, "rpc error")
	})

	t.Run("nil error", func(t *testing.T) {
		out := grpcx.Translate(nil)
		require.Equal(t, http.StatusOK, out.StatusCode)
	})
}

func TestTranslateLegacyMessageForm(t *testing.T) {
	t.Run("already exists prefix", func(t *testing.T) {
		out := grpcx.Translate(errors.New("6 ALREADY_EXISTS: Username taken"))
		require.Equal(t, http.StatusConflict, out.StatusCode)
		require.Equal(t, "Username taken", out.Message)
	})

	t.Run("unauthenticated prefix", func(t *testing.T) {
		out := grpcx.Translate(errors.New("16 UNAUTHENTICATED: bad service token"))
		require.Equal(t, http.StatusUnauthorized, out.StatusCode)
		require.Equal(t, "bad service token", out.Message)
	})

	t.Run("unknown numeric code", func(t *testing.T) {
		out := grpcx.Translate(errors.New("99 WHO_KNOWS: something odd"))
		require.Equal(t, http.StatusInternalServerError, out.StatusCode)
		require.Equal(t, "something odd", out.Message)
	})
}

func TestTranslatePlainError(t *testing.T) {
	out := grpcx.Translate(errors.New("dial tcp: connection refused"))
	require.Equal(t, http.StatusInternalServerError, out.StatusCode)
	require.Equal(t, "dial tcp: connection refused", out.Message)
}
