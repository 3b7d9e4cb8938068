// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger はスナップショットDBへの到達確認です。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// db が nil でなければGETでスナップショットDBに到達できるかも確認し、失敗時は503を返します。
func NewHealth(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			if db != nil {
				ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
				defer cancel()
				if err := db.PingContext(ctx); err != nil {
					slog.WarnContext(c.Request.Context(), "health check failed", "error", err)
					c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
					return
				}
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
}
