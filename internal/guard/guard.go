// Package guard decides, for every page request and every auth-state
// transition, what the navigation shows and whether the page may render.
package guard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/metrics"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const AccessDeniedMessage = "Access denied. You do not have permission to view this page."

type SessionSource interface {
	GetSession(ctx context.Context, token string) (*auth.Session, error)
}

type RoleSource interface {
	FetchRole(ctx context.Context, userID uuid.UUID) (access.Role, error)
}

type Outcome string

const (
	OutcomeAllow         Outcome = "allow"
	OutcomeRedirectLogin Outcome = "redirect_login"
	OutcomeDenied        Outcome = "denied"
)

type Decision struct {
	State    access.NavState   `json:"state"`
	Nav      access.NavView    `json:"nav"`
	Outcome  Outcome           `json:"outcome"`
	Redirect string            `json:"redirect,omitempty"`
	Notice   *viewmodel.Notice `json:"notice,omitempty"`

	Session *auth.Session `json:"-"`
}

func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}

type Guard struct {
	sessions SessionSource
	roles    RoleSource
	policy   access.Policy
	logger   zerolog.Logger
}

func New(
	sessions SessionSource,
	roles RoleSource,
	policy access.Policy,
	logger zerolog.Logger,
) *Guard {
	return &Guard{
		sessions: sessions,
		roles:    roles,
		policy:   policy,
		logger:   logger,
	}
}

func (g *Guard) Policy() access.Policy {
	return g.policy
}

// ResolveSession returns nil when there is no usable session. Backend
// failures degrade to "no session".
func (g *Guard) ResolveSession(ctx context.Context, token string) *auth.Session {
	if token == "" {
		return nil
	}
	sess, err := g.sessions.GetSession(ctx, token)
	if err != nil {
		if !errors.Is(err, auth.ErrNoSession) {
			g.logger.Error().Err(err).Msg("session lookup failed")
		}
		return nil
	}
	return sess
}

func (g *Guard) EvaluateToken(ctx context.Context, token string, page access.Page) Decision {
	return g.Evaluate(ctx, g.ResolveSession(ctx, token), page)
}

// Evaluate recomputes the full decision for sess on page. sess may be nil.
func (g *Guard) Evaluate(ctx context.Context, sess *auth.Session, page access.Page) Decision {
	state := access.NavState{
		LoggedIn:    sess != nil,
		Role:        access.RoleAnonymous,
		CurrentPage: page,
	}
	if sess != nil {
		state.Role = g.resolveRole(ctx, sess.UserID)
	}

	d := Decision{
		State:   state,
		Nav:     access.Render(state),
		Outcome: OutcomeAllow,
		Session: sess,
	}

	if !g.policy.CanAccess(state.Role, page) {
		if state.LoggedIn {
			d.Outcome = OutcomeDenied
			d.Redirect = access.PageIndex.Path()
			d.Notice = viewmodel.Danger(AccessDeniedMessage)
		} else {
			d.Outcome = OutcomeRedirectLogin
			d.Redirect = access.PageLogin.Path()
		}
	}

	metrics.GuardDecisionsTotal.WithLabelValues(string(page), string(d.Outcome)).Inc()
	return d
}

func (g *Guard) resolveRole(ctx context.Context, userID uuid.UUID) access.Role {
	role, err := g.roles.FetchRole(ctx, userID)
	if err != nil {
		metrics.RoleLookupFailuresTotal.Inc()
		g.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("role lookup failed, treating as unresolved")
		return access.RoleUnresolved
	}
	return role
}
