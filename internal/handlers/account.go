package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/middleware"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/types"
	"github.com/localnerve/eventreg/internal/utils"
	"gorm.io/gorm"
)

// AccountHandler handles registration and the caller's profile
type AccountHandler struct {
	DB  *gorm.DB
	IDP services.IdentityProvider
}

// Register handles POST /api/register
// @Summary Register a participant
// @Description Create an account with the identity provider and its profile
// @Tags Account
// @Accept json
// @Produce json
// @Param account body services.RegisterInput true "Registration"
// @Success 201 {object} utils.CreatedResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, types.TypeRegistration)
	}

	result, err := services.RegisterParticipant(c.UserContext(), h.DB, h.IDP, in)
	if err != nil {
		return respondError(c, err, types.TypeRegistration)
	}

	message := "Registration successful"
	if result.UserID == "" {
		message = "Registration successful, check your email to verify your account"
	}
	return utils.CreatedResponse(c, message, result)
}

// GetProfile handles GET /api/profile
// @Summary Get the caller's profile
// @Description The profile shown to admins next to the caller's submissions
// @Tags Account
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.Profile
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /profile [get]
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	caller := middleware.CurrentIdentity(c)
	if caller == nil {
		return respondError(c, services.ErrAuthenticationRequired, "getProfile")
	}

	profile, err := services.GetProfile(c.UserContext(), h.DB, caller.ID)
	if err != nil {
		return respondError(c, err, "getProfile")
	}
	return utils.SuccessResponse(c, profile, fiber.StatusOK)
}
