package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartjob/job-board/internal/core/ports"
)

// ProfileHandler handles HTTP requests for candidate profiles.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /api/profiles. The owner is always the caller.
//
// @Summary      Create the caller's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile"
// @Success      201   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.service.CreateProfile(c.Request().Context(), ports.CreateProfileInput{
		OwnerEmail:      p.Subject,
		Name:            req.Name,
		YearsExperience: req.YearsExperience,
		Location:        req.Location,
		DesiredSalary:   req.DesiredSalary,
		Skills:          req.Skills,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/profiles/"+profile.ID)
	return c.JSON(http.StatusCreated, profile)
}

// Get handles GET /api/profiles/:id.
//
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  domain.Profile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GetByUser handles GET /api/profiles/user/:userId.
//
// @Summary      Get a profile by owner
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  domain.Profile
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/profiles/user/{userId} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	profile, err := h.service.GetProfileByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
