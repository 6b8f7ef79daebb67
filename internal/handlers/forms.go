// forms.go
//
// Event registration forms and admin submissions service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of eventreg.
// eventreg is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// eventreg is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with eventreg.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/middleware"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/utils"
	"gorm.io/gorm"
)

// FormsHandler handles the participant form routes
type FormsHandler struct {
	DB *gorm.DB
}

// GetStatus handles GET /api/forms/status
// @Summary Get form completion status
// @Description Report which of the three forms the caller has submitted
// @Tags Forms
// @Produce json
// @Security CookieAuth
// @Success 200 {object} services.CompletionStatus
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /forms/status [get]
func (h *FormsHandler) GetStatus(c *fiber.Ctx) error {
	caller := middleware.CurrentIdentity(c)
	if caller == nil {
		return respondError(c, services.ErrAuthenticationRequired, "getFormStatus")
	}

	status := services.GetCompletionStatus(c.UserContext(), h.DB, caller.ID)
	return utils.SuccessResponse(c, status, fiber.StatusOK)
}

// SubmitParent handles POST /api/forms/parent
// @Summary Submit the parent form
// @Description Store parent or guardian contact details, once per participant
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param form body services.ParentFormInput true "Parent form"
// @Success 201 {object} utils.CreatedResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /forms/parent [post]
func (h *FormsHandler) SubmitParent(c *fiber.Ctx) error {
	var in services.ParentFormInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "submitParentForm")
	}

	result, err := services.SubmitParentForm(c.UserContext(), h.DB, middleware.CurrentIdentity(c), in)
	if err != nil {
		return respondError(c, err, "submitParentForm")
	}
	return utils.CreatedResponse(c, "Parent form submitted", result)
}

// SubmitAttendee handles POST /api/forms/attendee
// @Summary Submit the attendee form
// @Description Store the attendee's details, once per participant
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param form body services.AttendeeFormInput true "Attendee form"
// @Success 201 {object} utils.CreatedResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /forms/attendee [post]
func (h *FormsHandler) SubmitAttendee(c *fiber.Ctx) error {
	var in services.AttendeeFormInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "submitAttendeeForm")
	}

	result, err := services.SubmitAttendeeForm(c.UserContext(), h.DB, middleware.CurrentIdentity(c), in)
	if err != nil {
		return respondError(c, err, "submitAttendeeForm")
	}
	return utils.CreatedResponse(c, "Attendee form submitted", result)
}

// SubmitWaiver handles POST /api/forms/waiver
// @Summary Submit the waiver form
// @Description Record acceptance of the waiver; waiver_agreement must be "agree"
// @Tags Forms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param form body services.WaiverFormInput true "Waiver form"
// @Success 201 {object} utils.CreatedResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /forms/waiver [post]
func (h *FormsHandler) SubmitWaiver(c *fiber.Ctx) error {
	var in services.WaiverFormInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "submitWaiverForm")
	}

	result, err := services.SubmitWaiverForm(c.UserContext(), h.DB, middleware.CurrentIdentity(c), in)
	if err != nil {
		return respondError(c, err, "submitWaiverForm")
	}
	return utils.CreatedResponse(c, "Waiver form submitted", result)
}

// GetWaiverTerms handles GET /api/forms/waiver/terms
// @Summary Get the waiver terms
// @Description Rendered waiver text and its content version
// @Tags Forms
// @Produce json
// @Success 200 {object} services.WaiverTerms
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /forms/waiver/terms [get]
func GetWaiverTerms(c *fiber.Ctx) error {
	terms, err := services.RenderWaiverTerms()
	if err != nil {
		return respondError(c, err, "getWaiverTerms")
	}
	return utils.SuccessResponse(c, terms, fiber.StatusOK)
}
