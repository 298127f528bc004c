package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/notify"
	"github.com/BruksfildServices01/studio-booking/internal/validators"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const LogoutMessage = "You have logged out successfully!"

type AuthHandler struct {
	pageBase
	auth   *auth.Service
	mailer notify.Mailer
	logger zerolog.Logger

	// resolver is nil when email domains are not verified.
	resolver validators.Resolver
}

func NewAuthHandler(
	authService *auth.Service,
	mailer notify.Mailer,
	resolver validators.Resolver,
	cookies middleware.Cookies,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		pageBase: pageBase{cookies: cookies},
		auth:     authService,
		mailer:   mailer,
		resolver: resolver,
		logger:   logger,
	}
}

// --------- Requests ---------

type RegisterForm struct {
	FullName string `form:"full_name" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	bindErr := c.ShouldBind(&form)

	page := viewmodel.LoginPage{
		Layout:        h.layout(c, "Login"),
		RegisterName:  form.FullName,
		RegisterEmail: form.Email,
	}

	if bindErr != nil {
		page.Notice = viewmodel.Warning("Please fill in all fields. Passwords need at least 6 characters.")
		c.HTML(http.StatusUnprocessableEntity, "login", page)
		return
	}

	ctx := c.Request.Context()
	email := auth.NormalizeEmail(form.Email)

	if h.resolver != nil && !validators.IsEmailDomainValid(ctx, h.resolver, email) {
		page.Notice = viewmodel.Warning("The email domain does not appear to be valid.")
		c.HTML(http.StatusUnprocessableEntity, "login", page)
		return
	}

	user, err := h.auth.SignUp(ctx, auth.SignUpInput{
		Email:    email,
		Password: form.Password,
		FullName: form.FullName,
	})
	if err != nil {
		status := http.StatusUnprocessableEntity
		if httperr.BusinessCode(err) == "" {
			status = http.StatusInternalServerError
			h.logger.Error().Err(err).Msg("sign up failed")
		}
		page.Notice = viewmodel.Danger("Registration Error: " + messageFor(err, "Please try again later."))
		c.HTML(status, "login", page)
		return
	}

	if err := h.mailer.Send(ctx, notify.WelcomeMessage(user.Email, form.FullName)); err != nil {
		h.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("welcome email failed")
	}

	h.redirectWith(c, "/login", viewmodel.Success("Registration successful! You can now log in."))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	bindErr := c.ShouldBind(&form)

	page := viewmodel.LoginPage{
		Layout:     h.layout(c, "Login"),
		LoginEmail: form.Email,
	}

	if bindErr != nil {
		page.Notice = viewmodel.Warning("Please enter your email and password.")
		c.HTML(http.StatusUnprocessableEntity, "login", page)
		return
	}

	sess, err := h.auth.SignIn(c.Request.Context(), middleware.BrowserIDFrom(c), form.Email, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if httperr.BusinessCode(err) == "" {
			status = http.StatusInternalServerError
			h.logger.Error().Err(err).Msg("sign in failed")
		}
		page.Notice = viewmodel.Danger("Login Error: " + messageFor(err, "Please try again later."))
		c.HTML(status, "login", page)
		return
	}

	h.cookies.SetSession(c, sess.Token, h.auth.TTL())
	h.redirectWith(c, "/", viewmodel.Success("Login successful!"))
}

// Logout always ends on the home page with the session cookie cleared,
// even when revocation fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.auth.SignOut(c.Request.Context(), middleware.BrowserIDFrom(c), middleware.SessionToken(c))
	if err != nil {
		h.logger.Error().Err(err).Msg("sign out failed")
	}

	h.cookies.ClearSession(c)
	h.redirectWith(c, "/", viewmodel.Success(LogoutMessage))
}
