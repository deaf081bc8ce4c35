// File: internal/service/rejection.go
package service

import "errors"

// 業務規則失敗時回給前端的訊息
const (
	MsgEmptyUser        = "empty user"
	MsgBlankCredentials = "username and password must not be blank"
	MsgBlankPassword    = "password must not be blank"
	MsgPasswordLength   = "password length error"
	MsgNameTaken        = "username already exists"
	MsgInvalidID        = "invalid user id"
	MsgCaptchaMismatch  = "captcha mismatch"
	MsgBadCredentials   = "bad credentials"
	MsgDeleteSelf       = "cannot delete current user"
)

// Rejection 表示輸入違反業務規則，以 {ok:false,msg} 回應而非錯誤頁
type Rejection struct {
	Msg string
}

func (r *Rejection) Error() string { return r.Msg }

func reject(msg string) error { return &Rejection{Msg: msg} }

// RejectionMessage 若 err 為 Rejection 則回傳其訊息
func RejectionMessage(err error) (string, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Msg, true
	}
	return "", false
}
