package users

import (
	"net/http"

	"userdesk/internal/api"
	"userdesk/internal/metrics"
	"userdesk/internal/model"

	"github.com/labstack/echo/v4"
)

// @Summary     Count users
// @Description 回傳使用者總數
// @Tags        users
// @Produce     json
// @Success     200 {integer} int
// @Failure     500 {object} api.HTTPError
// @Router      /user [get]
func CountHandler(svc UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := svc.Count(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, n)
	}
}

// @Summary     User list page
// @Description 回傳使用者列表頁面標記
// @Tags        users
// @Produce     json
// @Success     200 {object} api.PageView
// @Router      /user/ [get]
func IndexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.PageView{View: "user/list"})
	}
}

// @Summary     Add a user
// @Description 名稱與密碼不可空白，密碼長度 6 到 12，名稱不可重複
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "使用者名稱"
// @Param       password formData string true "密碼"
// @Success     200 {object} api.Result{data=api.UserResponse}
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /user/add [post]
func AddHandler(svc UserService, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AddUserRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		u, err := svc.Add(c.Request().Context(), &model.User{Name: req.Name, Password: req.Password})
		if err != nil {
			return respond(c, err, nil)
		}
		m.UserCreated()
		return respond(c, nil, api.NewUserResponse(*u))
	}
}

// @Summary     Update my password
// @Description 更新目前登入使用者的密碼
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       password formData string true "新密碼"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /user/update [post]
func UpdateHandler(svc UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdatePasswordRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		s, err := current(c)
		if err != nil {
			return err
		}
		return respond(c, svc.UpdatePassword(c.Request().Context(), s.UserID, req.Password), nil)
	}
}

// @Summary     Delete a user
// @Description 刪除使用者及其個人資料，不可刪除自己
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id formData int true "使用者 ID"
// @Success     200 {object} api.Result
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /user/delete [post]
func DeleteHandler(svc UserService, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.DeleteUserRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		s, err := current(c)
		if err != nil {
			return err
		}
		err = svc.Delete(c.Request().Context(), req.ID, s.UserID)
		if err == nil && req.ID > 0 {
			m.UserDeleted()
		}
		return respond(c, err, nil)
	}
}

// @Summary     Query users
// @Description 依名稱子字串分頁查詢，pager.recordCount 為符合條件的總筆數
// @Tags        users
// @Produce     json
// @Param       name       query string false "名稱子字串"
// @Param       pageNumber query int    false "頁碼" default(1)
// @Param       pageSize   query int    false "每頁筆數" default(20)
// @Success     200 {object} api.QueryResult
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /user/query [get]
// @Router      /user/query [post]
func QueryHandler(svc UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.QueryRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		p := model.NewPager(req.PageNumber, req.PageSize)
		list, err := svc.Query(c.Request().Context(), req.Name, p)
		if err != nil {
			return err
		}
		out := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			out = append(out, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, api.QueryResult{List: out, Pager: p})
	}
}
