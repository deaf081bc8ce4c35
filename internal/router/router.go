package router

import (
	"userdesk/internal/cache"
	"userdesk/internal/captcha"
	"userdesk/internal/database"
	"userdesk/internal/handler"
	"userdesk/internal/handler/users"
	"userdesk/internal/metrics"
	"userdesk/internal/session"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "userdesk/docs" // 引入 swag 註冊的 docs
)

// Deps 是路由需要的所有相依元件
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Users    users.UserService
	Auth     users.Authenticator
	Sessions *session.Manager
	Captcha  captcha.Generator
	Metrics  *metrics.Metrics
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.PingHandler(d.DB, d.Cache))
	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 所有 /user 路由都會載入 session
	u := e.Group("/user", d.Sessions.Load)

	// 不需登入
	u.GET("/login", users.LoginPageHandler())
	u.POST("/login", users.LoginHandler(d.Auth, d.Sessions, d.Metrics))
	u.GET("/captcha", users.CaptchaHandler(d.Captcha, d.Sessions))

	// 需登入，未登入導回首頁
	auth := d.Sessions.RequireUser
	u.GET("", users.CountHandler(d.Users), auth)
	u.GET("/", users.IndexHandler(), auth)
	u.GET("/logout", users.LogoutHandler(d.Sessions), auth)
	u.POST("/logout", users.LogoutHandler(d.Sessions), auth)
	u.POST("/add", users.AddHandler(d.Users, d.Metrics), auth)
	u.POST("/update", users.UpdateHandler(d.Users), auth)
	u.POST("/delete", users.DeleteHandler(d.Users, d.Metrics), auth)
	u.GET("/query", users.QueryHandler(d.Users), auth)
	u.POST("/query", users.QueryHandler(d.Users), auth)
}
