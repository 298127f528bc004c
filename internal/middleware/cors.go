package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Origins lists the cross-origin callers allowed to use the session
// endpoints with credentials.
type Origins []string

// ParseOrigins splits a comma separated CORS_ORIGINS value.
func ParseOrigins(csv string) Origins {
	var out Origins
	for _, o := range strings.Split(csv, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, strings.ToLower(o))
		}
	}
	return out
}

func (o Origins) Allowed(origin string) bool {
	origin = strings.ToLower(strings.TrimRight(origin, "/"))
	for _, allowed := range o {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// CheckOrigin is the websocket upgrade check: no Origin header, the
// site's own host, or a listed origin.
func (o Origins) CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return o.Allowed(origin)
}

// CORSMiddleware answers preflights and tags responses for listed origins.
// Pages post same-origin forms, so unlisted origins get no CORS headers.
func CORSMiddleware(origins Origins) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := origin != "" && origins.Allowed(origin)

		if allowed {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Expose-Headers", "X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			if !allowed {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
