package middleware

import (
	"errors"
	"net/http"

	"userdesk/internal/api"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// ErrorHandler 讓未處理的錯誤一律回傳 {"message": ...}，5xx 不外洩原因
func ErrorHandler(c echo.Context, err error) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := internalErrorMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			if s, ok := he.Message.(string); ok {
				msg = s
			} else {
				msg = http.StatusText(code)
			}
		}
	}
	if code >= http.StatusInternalServerError {
		Logger(c).Error("request failed", zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, api.HTTPError{Message: msg})
}
