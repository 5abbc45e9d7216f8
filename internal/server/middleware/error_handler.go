package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TransparentErrorHandler propagates handler errors to the client as
//
//	{ "error": "<message>" }
//
// An *echo.HTTPError keeps its own code and message, a gRPC status error from
// the query layer is mapped onto the matching HTTP code, anything else is a 500
// carrying the original error string.
func TransparentErrorHandler(err error, c echo.Context) {
	status, message := ExtractError(err)

	// Avoid double responses
	if c.Response().Committed {
		return
	}

	_ = c.JSON(status, map[string]interface{}{"error": message})
}

func ExtractError(err error) (int, interface{}) {
	var (
		code                = http.StatusInternalServerError
		message interface{} = err.Error()
	)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != nil {
			message = he.Message
		}
		return code, message
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return httpStatusFromCode(st.Code()), st.Message()
	}

	return code, message
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
