package service

import (
	"context"
	"errors"
	"testing"

	"userdesk/internal/model"

	"github.com/stretchr/testify/require"
)

type recordingBinder struct {
	bound []int
	err   error
}

func (b *recordingBinder) BindUser(_ context.Context, userID int) error {
	if b.err != nil {
		return b.err
	}
	b.bound = append(b.bound, userID)
	return nil
}

type countingFinder struct {
	calls int
	user  *model.User
	err   error
}

func (f *countingFinder) FindByName(context.Context, string) (*model.User, error) {
	f.calls++
	return f.user, f.err
}

func newAuth(t *testing.T, finder UserFinder) *Authenticator {
	t.Helper()
	a := NewAuthenticator(finder)
	a.comparePassword = func(hash, password string) error {
		if hash != "h:"+password {
			return errors.New("mismatch")
		}
		return nil
	}
	return a
}

func TestLoginCaptchaMismatchSkipsLookup(t *testing.T) {
	finder := &countingFinder{}
	binder := &recordingBinder{}
	_, err := newAuth(t, finder).Login(context.Background(), LoginInput{
		Username: "alice", Password: "abcdef", Captcha: "1234", SessionCaptcha: "9999",
	}, binder)
	msg, ok := RejectionMessage(err)
	require.True(t, ok)
	require.Equal(t, MsgCaptchaMismatch, msg)
	require.Zero(t, finder.calls)
	require.Empty(t, binder.bound)
}

func TestLoginMissingSessionCaptcha(t *testing.T) {
	finder := &countingFinder{}
	_, err := newAuth(t, finder).Login(context.Background(), LoginInput{
		Username: "alice", Password: "abcdef", Captcha: "",
	}, &recordingBinder{})
	msg, _ := RejectionMessage(err)
	require.Equal(t, MsgCaptchaMismatch, msg)
	require.Zero(t, finder.calls)
}

func TestLogin(t *testing.T) {
	repo := newMemRepo(model.User{ID: 7, Name: "alice", Password: "h:abcdef"})

	t.Run("unknown user", func(t *testing.T) {
		_, err := newAuth(t, repo).Login(context.Background(), LoginInput{
			Username: "nobody", Password: "abcdef", Captcha: "ab12", SessionCaptcha: "AB12",
		}, &recordingBinder{})
		msg, _ := RejectionMessage(err)
		require.Equal(t, MsgBadCredentials, msg)
	})

	t.Run("wrong password", func(t *testing.T) {
		binder := &recordingBinder{}
		_, err := newAuth(t, repo).Login(context.Background(), LoginInput{
			Username: "alice", Password: "nope12", Captcha: "1234", SessionCaptcha: "1234",
		}, binder)
		msg, _ := RejectionMessage(err)
		require.Equal(t, MsgBadCredentials, msg)
		require.Empty(t, binder.bound)
	})

	t.Run("success binds session", func(t *testing.T) {
		binder := &recordingBinder{}
		u, err := newAuth(t, repo).Login(context.Background(), LoginInput{
			Username: "alice", Password: "abcdef", Captcha: " 1234 ", SessionCaptcha: "1234",
		}, binder)
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, []int{7}, binder.bound)
	})

	t.Run("bind error", func(t *testing.T) {
		_, err := newAuth(t, repo).Login(context.Background(), LoginInput{
			Username: "alice", Password: "abcdef", Captcha: "1234", SessionCaptcha: "1234",
		}, &recordingBinder{err: errors.New("redis")})
		require.EqualError(t, err, "redis")
		_, ok := RejectionMessage(err)
		require.False(t, ok)
	})
}

func TestLoginStoreError(t *testing.T) {
	finder := &countingFinder{err: errors.New("db")}
	_, err := newAuth(t, finder).Login(context.Background(), LoginInput{
		Username: "alice", Password: "abcdef", Captcha: "1", SessionCaptcha: "1",
	}, &recordingBinder{})
	require.EqualError(t, err, "db")
}
