// Package session 以 Redis 保存瀏覽器 session，cookie 只攜帶簽章過的 session id
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session 的 UserID 為 0 代表尚未登入
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"me"`
	Captcha   string    `json:"captcha,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID > 0
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Invalidate(ctx context.Context, id string) error
	// InvalidateUser 刪除某使用者所有已登入的 session
	InvalidateUser(ctx context.Context, userID int) error
}
