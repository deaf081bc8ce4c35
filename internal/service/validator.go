// File: internal/service/validator.go
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"userdesk/internal/model"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 12
)

type NameCounter interface {
	CountByName(ctx context.Context, name string) (int, error)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CheckUser 依序檢查使用者欄位，回傳空字串代表通過；error 只代表儲存層失敗。
// 通過時 u 的 Name 與 Password 會被改寫為去除前後空白後的值。
func CheckUser(ctx context.Context, names NameCounter, u *model.User, create bool) (string, error) {
	if u == nil {
		return MsgEmptyUser, nil
	}
	if create {
		if isBlank(u.Name) || isBlank(u.Password) {
			return MsgBlankCredentials, nil
		}
	} else if isBlank(u.Password) {
		return MsgBlankPassword, nil
	}

	passwd := strings.TrimSpace(u.Password)
	if n := utf8.RuneCountInString(passwd); n < MinPasswordLength || n > MaxPasswordLength {
		return MsgPasswordLength, nil
	}
	u.Password = passwd
	u.Name = strings.TrimSpace(u.Name)

	if create {
		count, err := names.CountByName(ctx, u.Name)
		if err != nil {
			return "", err
		}
		if count != 0 {
			return MsgNameTaken, nil
		}
	} else if u.ID < 1 {
		return MsgInvalidID, nil
	}
	return "", nil
}
