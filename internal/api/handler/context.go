package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/api/middleware"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxPrincipal extracts the principal injected by the Authenticate middleware.
// Its presence proves the middleware ran; a protected route reached without it
// is a wiring bug and fails closed with 401.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return p, nil
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64("id", &id).BindError(); err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
