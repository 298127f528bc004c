package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const (
	SessionCookie = "studio_session"
	BrowserCookie = "studio_browser"
	FlashCookie   = "studio_flash"

	ContextBrowserID = "browserID"
)

// Cookies writes the site cookies with a shared security profile.
type Cookies struct {
	Secure bool
}

func (k Cookies) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", k.Secure, true)
}

func (k Cookies) SetSession(c *gin.Context, token string, ttl time.Duration) {
	k.set(c, SessionCookie, token, int(ttl.Seconds()))
}

func (k Cookies) ClearSession(c *gin.Context) {
	k.set(c, SessionCookie, "", -1)
}

// SetFlash stores a notice shown once by the next rendered page.
func (k Cookies) SetFlash(c *gin.Context, n viewmodel.Notice) {
	b, err := json.Marshal(n)
	if err != nil {
		return
	}
	k.set(c, FlashCookie, base64.RawURLEncoding.EncodeToString(b), 60)
}

// PopFlash returns and clears the pending notice, if any.
func (k Cookies) PopFlash(c *gin.Context) *viewmodel.Notice {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return nil
	}
	k.set(c, FlashCookie, "", -1)

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var n viewmodel.Notice
	if err := json.Unmarshal(b, &n); err != nil || n.Message == "" {
		return nil
	}
	return &n
}

// BrowserID tags every browser with a stable id so auth-state events of one
// browser reach all of its open pages.
func (k Cookies) BrowserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(BrowserCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			k.set(c, BrowserCookie, id, int((365 * 24 * time.Hour).Seconds()))
		}
		c.Set(ContextBrowserID, id)
		c.Next()
	}
}

func SessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func BrowserIDFrom(c *gin.Context) string {
	return c.GetString(ContextBrowserID)
}
