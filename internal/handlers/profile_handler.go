package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

type ProfileHandler struct {
	pageBase
	profiles *profile.Profiles
	logger   zerolog.Logger
}

func NewProfileHandler(
	profiles *profile.Profiles,
	cookies middleware.Cookies,
	logger zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		pageBase: pageBase{cookies: cookies},
		profiles: profiles,
		logger:   logger,
	}
}

type ProfileForm struct {
	FullName string `form:"full_name"`
	Phone    string `form:"phone"`
}

func (h *ProfileHandler) Show(c *gin.Context) {
	d := guard.DecisionFrom(c)
	page := viewmodel.ProfilePage{Layout: h.layout(c, "My Profile")}
	if d.Session == nil {
		c.HTML(http.StatusOK, "profile", page)
		return
	}
	page.Email = d.Session.Email

	p, err := h.profiles.Load(c.Request.Context(), d.Session.UserID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", d.Session.UserID.String()).Msg("failed to load profile")
		page.Notice = viewmodel.Danger("Error loading profile data.")
	} else {
		page.FullName = p.FullName
		page.Phone = p.Phone
	}

	c.HTML(http.StatusOK, "profile", page)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	d := guard.DecisionFrom(c)
	if d.Session == nil {
		h.redirectWith(c, "/login", nil)
		return
	}

	var form ProfileForm
	_ = c.ShouldBind(&form)

	saved, err := h.profiles.Update(c.Request.Context(), d.Session.UserID, profile.UpdateInput{
		FullName: form.FullName,
		Phone:    form.Phone,
	})
	observeForm(profile.FormName, err)

	page := viewmodel.ProfilePage{
		Layout:   h.layout(c, "My Profile"),
		Email:    d.Session.Email,
		FullName: saved.FullName,
		Phone:    saved.Phone,
	}

	status := http.StatusOK
	switch {
	case err == nil:
		page.Notice = viewmodel.Success("Profile updated successfully!")
	case httperr.IsBusiness(err, "missing_fields"):
		status = http.StatusUnprocessableEntity
		page.Notice = viewmodel.Warning("Please fill in all fields.")
	case httperr.IsBusiness(err, "invalid_contact"):
		status = http.StatusUnprocessableEntity
		page.Notice = viewmodel.Warning(businessMessages["invalid_contact"])
	default:
		h.logger.Error().Err(err).Str("user_id", d.Session.UserID.String()).Msg("failed to update profile")
		status = http.StatusInternalServerError
		page.Notice = viewmodel.Danger("Error updating profile. Please try again.")
	}

	c.HTML(status, "profile", page)
}
