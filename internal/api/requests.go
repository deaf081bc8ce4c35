package api

// 空白欄位交給 service 層檢查並以 {ok:false,msg} 回覆，這裡只擋明顯不合法的輸入

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"max=64" example:"alice"`
	Password string `form:"password" validate:"max=128" example:"secret1"`
	Captcha  string `form:"captcha" validate:"max=16" example:"4821"`
}

// swagger:model api.AddUserRequest
type AddUserRequest struct {
	Name     string `form:"name" validate:"max=64" example:"bob"`
	Password string `form:"password" validate:"max=128" example:"secret1"`
}

// swagger:model api.UpdatePasswordRequest
type UpdatePasswordRequest struct {
	Password string `form:"password" validate:"max=128" example:"secret2"`
}

// swagger:model api.DeleteUserRequest
type DeleteUserRequest struct {
	ID int `form:"id" example:"3"`
}

// QueryRequest 同時接受 query string (GET) 與表單 (POST)
// swagger:model api.QueryRequest
type QueryRequest struct {
	Name       string `form:"name" query:"name" validate:"max=64" example:"ali"`
	PageNumber int    `form:"pageNumber" query:"pageNumber" validate:"gte=0" example:"1"`
	PageSize   int    `form:"pageSize" query:"pageSize" validate:"gte=0" example:"20"`
}
