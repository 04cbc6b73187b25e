// Package handler contains the HTTP handlers of the site.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	domainerrors "arthurflix/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck answers load balancer probes without touching any store.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// formFailure extracts the status and message to show next to a form.
// ok is false for errors that belong to the central error handler.
func formFailure(err error) (status int, message string, ok bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return 0, "", false
	}

	message = appErr.Message()
	if errors.Is(err, domainerrors.ErrValidationFailed) && appErr.Details() != "" {
		message = appErr.Details()
	}

	return appErr.HTTPCode(), message, true
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}

	return next
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}

	return page
}
