package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/usecase"
	"insurance_portal/internal/usecase/interfaces"
	"insurance_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid identifier", http.StatusBadRequest)
	errUpstream       = pkg.NewDomainErrorSimple("UPSTREAM_ERROR", "A collaborator service is unavailable", http.StatusBadGateway)
)

// respondError writes the error body. Server-side causes are attached to the
// gin context so the request logger records them.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, errInvalidID.WithDetail(name, c.Param(name)))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, errInvalidPayload)
		return false
	}
	return true
}

// commonError covers the failures every handler family shares. It returns nil
// when err needs a family specific mapping.
func commonError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", verr.Message, http.StatusBadRequest)
		if len(verr.Fields) > 0 {
			appErr = appErr.WithDetail("fields", verr.Fields)
		}
		return appErr
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrUpstreamUnavailable):
		return pkg.NewDomainError(errUpstream.Code, errUpstream.Message, err, errUpstream.HTTPStatus)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
