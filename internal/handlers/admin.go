package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/types"
	"github.com/localnerve/eventreg/internal/utils"
	"gorm.io/gorm"
)

// PartialHeader is set when some sources were left out of a listing
const PartialHeader = "X-Partial-Result"

// AdminHandler handles the admin routes. DB is the admin pool.
type AdminHandler struct {
	DB *gorm.DB
}

// ListSubmissions handles GET /api/admin/submissions
// @Summary List all submissions
// @Description Every form submission joined with its profile, most recent first
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Success 200 {object} services.SubmissionList
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *fiber.Ctx) error {
	list, err := services.ListAllSubmissions(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, types.TypeRead)
	}

	if list.Partial() {
		c.Set(PartialHeader, strconv.Itoa(len(list.Failed)))
	}
	return utils.SuccessResponse(c, list, fiber.StatusOK)
}

// GetSubmission handles GET /api/admin/submissions/:formType/:id
// @Summary Get one submission
// @Description A single form submission joined with its profile
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Param formType path string true "parent, attendee or waiver"
// @Param id path int true "Submission ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/submissions/{formType}/{id} [get]
func (h *AdminHandler) GetSubmission(c *fiber.Ctx) error {
	form, err := services.ParseFormType(c.Params("formType"))
	if err != nil {
		return respondError(c, err, "getSubmission")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "getSubmission")
	}

	submission, err := services.GetSubmission(c.UserContext(), h.DB, form, id)
	if err != nil {
		return respondError(c, err, "getSubmission")
	}
	return utils.SuccessResponse(c, submission, fiber.StatusOK)
}

// GetUserStatus handles GET /api/admin/users/:userID/status
// @Summary Get a participant's completion status
// @Description Report which forms the given user has submitted
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Param userID path string true "User ID"
// @Success 200 {object} services.CompletionStatus
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/users/{userID}/status [get]
func (h *AdminHandler) GetUserStatus(c *fiber.Ctx) error {
	status := services.GetCompletionStatus(c.UserContext(), h.DB, c.Params("userID"))
	return utils.SuccessResponse(c, status, fiber.StatusOK)
}
