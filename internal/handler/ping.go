package handler

import (
	"net/http"

	"userdesk/internal/api"
	"userdesk/internal/cache"
	"userdesk/internal/database"
	"userdesk/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     503 {object} api.HTTPError
// @Router      /healthz [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			middleware.Logger(c).Warn("database ping failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, api.HTTPError{Message: "database unhealthy"})
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			middleware.Logger(c).Warn("redis ping failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, api.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
