package api

import (
	"time"

	"userdesk/internal/model"
)

// Result 是所有寫入操作的回應外殼
// swagger:model api.Result
type Result struct {
	OK   bool        `json:"ok" example:"true"`
	Msg  string      `json:"msg,omitempty" example:"username already exists"`
	Data interface{} `json:"data,omitempty"`
}

func Success(data interface{}) Result { return Result{OK: true, Data: data} }

func Failure(msg string) Result { return Result{OK: false, Msg: msg} }

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"alice"`
	CreatedAt string `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt string `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// swagger:model api.QueryResult
type QueryResult struct {
	List  []UserResponse `json:"list"`
	Pager *model.Pager   `json:"pager"`
}

// PageView 告知前端要顯示哪個頁面
// swagger:model api.PageView
type PageView struct {
	View string `json:"view" example:"user/list"`
}

// HTTPError 全域錯誤響應模型
// swagger:model api.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"internal server error"`
}
