// Package grpcx is the single boundary between backend gRPC failures and the
// gateway's external error vocabulary. Every outbound call funnels its error
// through Translate instead of mapping codes inline at the call site.
package grpcx

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Translated is the stable external projection of a backend failure. The
// original gRPC code never leaves the gateway.
type Translated struct {
	StatusCode int
	Message    string
}

// httpStatus maps gRPC status codes onto external HTTP statuses. Codes
// missing from the table intentionally collapse to 500.
var httpStatus = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.Aborted:            http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusPreconditionFailed,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

// Some backends wrap their status into a plain message string, e.g.
// "6 ALREADY_EXISTS: Username taken". Strip the prefix and keep the reason.
var legacyStatusRe = regexp.MustCompile(`^(\d+)\s+([A-Z_]+):\s+(.+)$`)

// HTTPStatus resolves a gRPC code to its external HTTP status,
// defaulting to 500 for anything unmapped.
func HTTPStatus(code codes.Code) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Translate converts any backend RPC failure into its external shape. It
// unwraps to the underlying grpc *status.Status; failing that it parses the
// legacy "<code> <NAME>: <reason>" message form. Unknown codes become
// internal errors with the original message preserved.
func Translate(err error) Translated {
	if err == nil {
		return Translated{StatusCode: http.StatusOK}
	}

	// status.FromError rebuilds the message from err.Error() when the
	// status is wrapped, which would surface call-site context. Unwrap to
	// the status itself and keep only the backend's reason.
	var gs interface{ GRPCStatus() *status.Status }
	msg := err.Error()
	if errors.As(err, &gs) {
		s := gs.GRPCStatus()
		if s.Code() != codes.Unknown {
			return Translated{
				StatusCode: HTTPStatus(s.Code()),
				Message:    s.Message(),
			}
		}
		// codes.Unknown covers backends that wrap their status into a
		// plain message; try the legacy form on the reason below.
		if s.Message() != "" {
			msg = s.Message()
		}
	}

	if m := legacyStatusRe.FindStringSubmatch(msg); m != nil {
		code, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return Translated{
				StatusCode: HTTPStatus(codes.Code(code)),
				Message:    m[3],
			}
		}
	}

	return Translated{
		StatusCode: http.StatusInternalServerError,
		Message:    msg,
	}
}
