package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/web/response"
	domainerrors "arthurflix/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Something went wrong."

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Pages get the HTML error page,
// JSON and XHR clients get the response envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	if response.WantsJSON(c) {
		_ = response.Error(c, status, code, message, details)

		return
	}

	page := map[string]string{"Message": message, "Code": code}
	if renderErr := response.Page(c, status, "error", http.StatusText(status), page); renderErr != nil {
		m.log(c).Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (status int, code, message, details string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)

			return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), ""
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return httpErr.Code, "HTTP_ERROR", message, ""
	}

	m.log(c).Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	return http.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage, ""
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
