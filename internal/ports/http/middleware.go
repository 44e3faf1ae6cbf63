package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"minpai/internal/app"
	"minpai/internal/log"
)

// SubjectKey is the gin context key holding the authenticated token subject.
const SubjectKey = "subject"

func bearerAuth(tokens *app.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
			return
		}
		subject, err := tokens.Verify(raw)
		if err != nil {
			log.Warn("rejected token from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "invalid token"})
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}

// requestLogger logs one line per request through internal/log.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
