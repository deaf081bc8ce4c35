// File: internal/service/users.go
package service

import (
	"context"
	"errors"

	"userdesk/internal/model"
	"userdesk/internal/store"
	"userdesk/internal/worker"

	"go.uber.org/zap"
)

// UserRepository 是使用者持久化的型別化介面，由 store.UserStore 實作
type UserRepository interface {
	NameCounter
	UserFinder
	Count(ctx context.Context) (int, error)
	CountMatching(ctx context.Context, name string) (int, error)
	Insert(ctx context.Context, u *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, id int, password string) error
	DeleteWithProfile(ctx context.Context, id int) (int64, error)
	Query(ctx context.Context, name string, p *model.Pager) ([]model.User, error)
}

// SessionPurger 使某使用者的所有 session 失效
type SessionPurger interface {
	InvalidateUser(ctx context.Context, userID int) error
}

type UserService struct {
	repo         UserRepository
	purger       SessionPurger
	pool         worker.Pool
	logger       *zap.Logger
	hashPassword func(string) (string, error)
}

// NewUserService 的 purger 與 pool 可為 nil，此時刪除後不清除 session
func NewUserService(repo UserRepository, purger SessionPurger, pool worker.Pool, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		repo:         repo,
		purger:       purger,
		pool:         pool,
		logger:       logger,
		hashPassword: HashPassword,
	}
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Add 以建立模式檢查後寫入新使用者
func (s *UserService) Add(ctx context.Context, u *model.User) (*model.User, error) {
	msg, err := CheckUser(ctx, s.repo, u, true)
	if err != nil {
		return nil, err
	}
	if msg != "" {
		return nil, reject(msg)
	}

	hash, err := s.hashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &model.User{Name: u.Name, Password: hash})
	if errors.Is(err, store.ErrDuplicateName) {
		return nil, reject(MsgNameTaken)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdatePassword 只檢查密碼格式，不要求舊密碼
func (s *UserService) UpdatePassword(ctx context.Context, me int, password string) error {
	u := &model.User{ID: me, Password: password}
	msg, err := CheckUser(ctx, s.repo, u, false)
	if err != nil {
		return err
	}
	if msg != "" {
		return reject(msg)
	}

	hash, err := s.hashPassword(u.Password)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, me, hash)
}

// Delete 不允許刪除自己；id < 1 視為無事可做
func (s *UserService) Delete(ctx context.Context, id, me int) error {
	if id == me {
		return reject(MsgDeleteSelf)
	}
	if id < 1 {
		return nil
	}

	n, err := s.repo.DeleteWithProfile(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 && s.purger != nil && s.pool != nil {
		accepted := s.pool.Submit(func(ctx context.Context) {
			if err := s.purger.InvalidateUser(ctx, id); err != nil {
				s.logger.Warn("purge sessions of deleted user", zap.Int("user_id", id), zap.Error(err))
			}
		})
		if !accepted {
			s.logger.Warn("session purge not scheduled, pool stopped or full", zap.Int("user_id", id))
		}
	}
	return nil
}

// Query 回傳一頁使用者並更新 pager 的總筆數
func (s *UserService) Query(ctx context.Context, name string, p *model.Pager) ([]model.User, error) {
	users, err := s.repo.Query(ctx, name, p)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.CountMatching(ctx, name)
	if err != nil {
		return nil, err
	}
	p.SetRecordCount(n)
	return users, nil
}
