package users

import (
	"context"
	"errors"
	"net/http"

	"userdesk/internal/api"
	"userdesk/internal/model"
	"userdesk/internal/service"
	"userdesk/internal/session"

	"github.com/labstack/echo/v4"
)

// UserService 由 *service.UserService 實作
type UserService interface {
	Count(ctx context.Context) (int, error)
	Add(ctx context.Context, u *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, me int, password string) error
	Delete(ctx context.Context, id, me int) error
	Query(ctx context.Context, name string, p *model.Pager) ([]model.User, error)
}

// Authenticator 由 *service.Authenticator 實作
type Authenticator interface {
	Login(ctx context.Context, in service.LoginInput, binder service.SessionBinder) (*model.User, error)
}

// SessionManager 由 *session.Manager 實作
type SessionManager interface {
	Save(c echo.Context, s *session.Session) error
	Invalidate(c echo.Context) error
	BindUser(c echo.Context, userID int) error
}

var errNoSession = errors.New("session middleware not installed")

type echoBinder struct {
	sessions SessionManager
	c        echo.Context
}

func (b echoBinder) BindUser(_ context.Context, userID int) error {
	return b.sessions.BindUser(b.c, userID)
}

func current(c echo.Context) (*session.Session, error) {
	s := session.From(c)
	if s == nil {
		return nil, errNoSession
	}
	return s, nil
}

// bindAndValidate 失敗時回傳 400 的 *echo.HTTPError
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// respond 將業務規則失敗轉成 {ok:false,msg}，其他錯誤交給 HTTPErrorHandler
func respond(c echo.Context, err error, data interface{}) error {
	if err == nil {
		return c.JSON(http.StatusOK, api.Success(data))
	}
	if msg, ok := service.RejectionMessage(err); ok {
		return c.JSON(http.StatusOK, api.Failure(msg))
	}
	return err
}
