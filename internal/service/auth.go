// File: internal/service/auth.go
package service

import (
	"context"
	"errors"

	"userdesk/internal/captcha"
	"userdesk/internal/model"
	"userdesk/internal/store"
)

type LoginInput struct {
	Username       string
	Password       string
	Captcha        string
	SessionCaptcha string
}

type UserFinder interface {
	FindByName(ctx context.Context, name string) (*model.User, error)
}

// SessionBinder 將目前 session 標記為已登入的使用者
type SessionBinder interface {
	BindUser(ctx context.Context, userID int) error
}

type Authenticator struct {
	users           UserFinder
	comparePassword func(hash, password string) error
}

func NewAuthenticator(users UserFinder) *Authenticator {
	return &Authenticator{users: users, comparePassword: ComparePassword}
}

// Login 先檢查驗證碼，再比對帳密，成功後綁定 session。
// 驗證碼不符時不會查詢使用者。
func (a *Authenticator) Login(ctx context.Context, in LoginInput, binder SessionBinder) (*model.User, error) {
	if !captcha.Match(in.SessionCaptcha, in.Captcha) {
		return nil, reject(MsgCaptchaMismatch)
	}

	user, err := a.users.FindByName(ctx, in.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, reject(MsgBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if err := a.comparePassword(user.Password, in.Password); err != nil {
		return nil, reject(MsgBadCredentials)
	}

	if err := binder.BindUser(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}
