package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the account directory.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns a single account by id.
//
// @Summary      Get an account
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	account, err := h.profileService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// List returns every account. Unbounded, matching the upstream behavior;
// this is the natural place to introduce pagination later.
//
// @Summary      List accounts
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProfilesResponse
// @Router       /v1/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	accounts, err := h.profileService.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		data = append(data, toAccountResponse(&accounts[i]))
	}
	return c.JSON(http.StatusOK, listProfilesResponse{Data: data})
}

// Update applies a partial profile update to the account named by :id.
//
// Known weakness carried from the upstream behavior: the caller is
// authenticated by the Auth middleware but the token subject is NOT
// compared to :id, so any authenticated caller may update any profile.
// Deployments are expected to front this route with an ownership gate.
//
// @Summary      Update a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  updateProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/profiles/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.profileService.UpdateProfile(c.Request().Context(), c.Param("id"), ports.ProfilePatch{
		Name:       req.Name,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Region:     req.Region,
		Address:    req.Address,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Message: "profile updated",
		Account: toAccountResponse(account),
	})
}
