// Package response renders JSON envelopes and HTML pages for the web delivery.
package response

import (
	"net/http"
	"strings"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Response unified JSON response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// View is the data handed to every HTML template.
type View struct {
	Site      *entity.Site
	Principal *entity.Principal
	Title     string
	Message   string
	CSRF      string
	Data      any
}

// Success successful JSON response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error JSON response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError 400 for forms and payloads that could not be decoded
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Page renders the named template inside the site layout.
func Page(c echo.Context, statusCode int, name, title string, data any) error {
	return c.Render(statusCode, name, NewView(c, title, data))
}

// PageWithMessage renders a page with a notice shown above its content.
func PageWithMessage(c echo.Context, statusCode int, name, title, message string, data any) error {
	view := NewView(c, title, data)
	view.Message = message

	return c.Render(statusCode, name, view)
}

// NewView collects the request scoped values every template needs.
func NewView(c echo.Context, title string, data any) *View {
	csrf, _ := c.Get("csrf").(string)

	return &View{
		Site:      deliverycontext.GetSite(c),
		Principal: deliverycontext.GetPrincipal(c),
		Title:     title,
		CSRF:      csrf,
		Data:      data,
	}
}

// WantsJSON reports whether the client asked for a JSON answer.
func WantsJSON(c echo.Context) bool {
	req := c.Request()
	if req.Header.Get(echo.HeaderXRequestedWith) == "XMLHttpRequest" {
		return true
	}

	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
