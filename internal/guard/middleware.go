package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
)

const ContextDecision = "guardDecision"

// Page guards an HTML page. Denied requests are redirected before the page
// handler runs.
func (g *Guard) Page(page access.Page, cookies middleware.Cookies) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.EvaluateToken(c.Request.Context(), middleware.SessionToken(c), page)

		if !d.Allowed() {
			if d.Notice != nil {
				cookies.SetFlash(c, *d.Notice)
			}
			g.logger.Info().
				Str("page", string(page)).
				Str("outcome", string(d.Outcome)).
				Str("role", d.State.Role.String()).
				Msg("page guard redirect")
			c.Redirect(http.StatusSeeOther, d.Redirect)
			c.Abort()
			return
		}

		c.Set(ContextDecision, d)
		c.Next()
	}
}

// API guards a JSON endpoint with the policy of page.
func (g *Guard) API(page access.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.EvaluateToken(c.Request.Context(), middleware.SessionToken(c), page)

		switch d.Outcome {
		case OutcomeRedirectLogin:
			httperr.Unauthorized(c, "no_session", "Login required.")
			c.Abort()
			return
		case OutcomeDenied:
			httperr.Forbidden(c, "forbidden", AccessDeniedMessage)
			c.Abort()
			return
		}

		c.Set(ContextDecision, d)
		c.Next()
	}
}

// DecisionFrom returns the decision stored by Page or API. Outside guarded
// routes it returns an anonymous decision.
func DecisionFrom(c *gin.Context) Decision {
	if v, ok := c.Get(ContextDecision); ok {
		if d, ok := v.(Decision); ok {
			return d
		}
	}
	state := access.NavState{Role: access.RoleAnonymous, CurrentPage: access.PageIndex}
	return Decision{State: state, Nav: access.Render(state), Outcome: OutcomeAllow}
}
