package users

import (
	"net/http"

	"userdesk/internal/api"
	"userdesk/internal/captcha"
	"userdesk/internal/metrics"
	"userdesk/internal/middleware"
	"userdesk/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// @Summary     Login page
// @Description 回傳登入頁面標記
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.PageView
// @Router      /user/login [get]
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.PageView{View: "user/login"})
	}
}

// @Summary     Captcha image
// @Description 產生新的數字驗證碼，答案存入目前 session
// @Tags        auth
// @Produce     png
// @Success     200 {file} binary
// @Failure     500 {object} api.HTTPError
// @Router      /user/captcha [get]
func CaptchaHandler(gen captcha.Generator, sessions SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := current(c)
		if err != nil {
			return err
		}
		ch, err := gen.Generate()
		if err != nil {
			return err
		}
		s.Captcha = ch.Answer
		if err := sessions.Save(c, s); err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		return c.Blob(http.StatusOK, ch.ContentType, ch.Image)
	}
}

// @Summary     Login
// @Description 先比對驗證碼再比對帳密，成功後換發 session；驗證碼每次嘗試後即失效
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "密碼"
// @Param       captcha  formData string true "驗證碼"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /user/login [post]
func LoginHandler(auth Authenticator, sessions SessionManager, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		s, err := current(c)
		if err != nil {
			return err
		}

		expected := s.Captcha
		if expected != "" {
			s.Captcha = ""
			if err := sessions.Save(c, s); err != nil {
				return err
			}
		}

		user, err := auth.Login(c.Request().Context(), service.LoginInput{
			Username:       req.Username,
			Password:       req.Password,
			Captcha:        req.Captcha,
			SessionCaptcha: expected,
		}, echoBinder{sessions: sessions, c: c})
		m.LoginAttempt(loginOutcome(err))
		if err == nil {
			middleware.Logger(c).Info("user logged in", zap.Int("user_id", user.ID))
		}
		return respond(c, err, nil)
	}
}

func loginOutcome(err error) string {
	if err == nil {
		return metrics.LoginSuccess
	}
	msg, ok := service.RejectionMessage(err)
	switch {
	case !ok:
		return metrics.LoginError
	case msg == service.MsgCaptchaMismatch:
		return metrics.LoginCaptchaMismatch
	default:
		return metrics.LoginBadCredentials
	}
}

// @Summary     Logout
// @Description 使目前 session 失效並導回首頁
// @Tags        auth
// @Success     302 "Redirect to /"
// @Router      /user/logout [get]
// @Router      /user/logout [post]
func LogoutHandler(sessions SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sessions.Invalidate(c); err != nil {
			middleware.Logger(c).Warn("invalidate session", zap.Error(err))
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
