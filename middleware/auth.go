package middleware

import (
	"ecoconnect/pkg/context"
	"net/http"
	"strings"
	"time"

	"ecoconnect/pkg/jwt"
	"ecoconnect/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		// 快过期的 access token 顺带续签一个
		if time.Until(claims.ExpiresAt.Time) < time.Minute {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				claims.Username,
				"access",
				claims.ID,
				15*time.Minute,
			)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}
