package public

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	ErrAddressRequired = echo.NewHTTPError(http.StatusBadRequest, "Address is required")
	ErrInvalidAddress  = echo.NewHTTPError(http.StatusBadRequest, "Invalid account address")
	ErrInvalidLimit    = echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
	ErrInvalidPageKey  = echo.NewHTTPError(http.StatusBadRequest, "Invalid page key")
	ErrInvalidDenom    = echo.NewHTTPError(http.StatusBadRequest, "Invalid denom")
	ErrNameNotFound    = echo.NewHTTPError(http.StatusNotFound, "Account has no name")
)
