package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	CookieName = "userdesk_session"
	contextKey = "session"
)

var newID = func() string { return ulid.Make().String() }

// Manager 把 Store 與 cookie 接到 echo 上
type Manager struct {
	store  Store
	codec  *Codec
	ttl    time.Duration
	secure bool
	logger *zap.Logger
}

func NewManager(store Store, codec *Codec, ttl time.Duration, secure bool, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, codec: codec, ttl: ttl, secure: secure, logger: logger}
}

func fresh() *Session {
	return &Session{ID: newID(), CreatedAt: timeNow()}
}

// Load 從 cookie 還原 session；缺少、過期或無法解析時改用新的匿名 session。
// 新 session 在第一次 Save 之前不會寫入 Redis。
func (m *Manager) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		Attach(c, m.restore(c))
		return next(c)
	}
}

func (m *Manager) restore(c echo.Context) *Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return fresh()
	}
	id, err := m.codec.Decode(cookie.Value)
	if err != nil {
		m.logger.Debug("discard session cookie", zap.Error(err))
		return fresh()
	}
	s, err := m.store.Get(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("load session", zap.String("session_id", id), zap.Error(err))
		}
		return fresh()
	}
	return s
}

// RequireUser 未登入時導回首頁
func (m *Manager) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !From(c).Authenticated() {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

// Attach 將 session 放入請求 context
func Attach(c echo.Context, s *Session) {
	c.Set(contextKey, s)
}

// From 取出 Load 放入的 session，未經 Load 時回傳 nil
func From(c echo.Context) *Session {
	s, _ := c.Get(contextKey).(*Session)
	return s
}

// Save 寫入 Redis 並重新簽發 cookie
func (m *Manager) Save(c echo.Context, s *Session) error {
	if err := m.store.Save(c.Request().Context(), s); err != nil {
		return err
	}
	token, err := m.codec.Encode(s.ID)
	if err != nil {
		return err
	}
	cookie := m.cookie(token)
	if m.ttl > 0 {
		cookie.MaxAge = int(m.ttl / time.Second)
	}
	c.SetCookie(cookie)
	Attach(c, s)
	return nil
}

// Invalidate 刪除目前 session 並讓 cookie 過期
func (m *Manager) Invalidate(c echo.Context) error {
	var err error
	if s := From(c); s != nil {
		err = m.store.Invalidate(c.Request().Context(), s.ID)
	}
	cookie := m.cookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
	Attach(c, fresh())
	return err
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// BindUser 登入成功後換發新的 session id，舊 session 一併刪除
func (m *Manager) BindUser(c echo.Context, userID int) error {
	if old := From(c); old != nil {
		if err := m.store.Invalidate(c.Request().Context(), old.ID); err != nil {
			return err
		}
	}
	s := fresh()
	s.UserID = userID
	return m.Save(c, s)
}
