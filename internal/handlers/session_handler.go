package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
	"github.com/BruksfildServices01/studio-booking/internal/metrics"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// AuthEvents is the auth-state subscription of a browser.
type AuthEvents interface {
	OnAuthStateChange(browserID string) (<-chan auth.Event, func())
}

type SessionHandler struct {
	guard    *guard.Guard
	events   AuthEvents
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewSessionHandler(
	g *guard.Guard,
	events AuthEvents,
	origins middleware.Origins,
	logger zerolog.Logger,
) *SessionHandler {
	return &SessionHandler{
		guard:  g,
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     origins.CheckOrigin,
		},
		logger: logger,
	}
}

// Current returns the guard decision for ?page= as JSON.
func (h *SessionHandler) Current(c *gin.Context) {
	page := access.ParsePage(c.Query("page"))
	d := h.guard.EvaluateToken(c.Request.Context(), middleware.SessionToken(c), page)
	httpresp.OK(c, d)
}

// Stream pushes a freshly evaluated decision for ?page= on connect and
// after every auth event of this browser.
func (h *SessionHandler) Stream(c *gin.Context) {
	page := access.ParsePage(c.Query("page"))
	browserID := middleware.BrowserIDFrom(c)

	// Subscribe before the upgrade so no event between the initial
	// evaluation and the loop is lost.
	events, cancel := h.events.OnAuthStateChange(browserID)
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.SessionStreamsActive.Inc()
	defer metrics.SessionStreamsActive.Dec()

	ctx := c.Request.Context()
	if err := h.send(conn, h.guard.EvaluateToken(ctx, middleware.SessionToken(c), page)); err != nil {
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			d := h.guard.Evaluate(ctx, ev.Session, page)
			h.logger.Debug().
				Str("event", string(ev.Type)).
				Str("page", string(page)).
				Str("outcome", string(d.Outcome)).
				Msg("auth state pushed")
			if err := h.send(conn, d); err != nil {
				return
			}

		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *SessionHandler) send(conn *websocket.Conn, d guard.Decision) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(d); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			h.logger.Debug().Err(err).Msg("websocket write failed")
		}
		return err
	}
	return nil
}

var _ AuthEvents = (*auth.Service)(nil)

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
