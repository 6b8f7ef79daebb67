// common.go
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
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/types"
	"github.com/localnerve/eventreg/internal/utils"
)

// fallbackMessages are the client messages for unrecognized errors, by operation
var fallbackMessages = map[string]string{
	types.TypeRegistration: "Registration failed",
	types.TypeRead:         "Failed to fetch submissions",
	"getProfile":           "Failed to load profile",
	"getSubmission":        "Failed to load submission",
	"getWaiverTerms":       "Failed to load waiver terms",
	"submitParentForm":     "Failed to submit parent form",
	"submitAttendeeForm":   "Failed to submit attendee form",
	"submitWaiverForm":     "Failed to submit waiver form",
}

// respondError maps a service error onto the error envelope.
// fallbackType names the operation for anything unrecognized; the cause is
// logged and the client gets that operation's fixed message.
func respondError(c *fiber.Ctx, err error, fallbackType string) error {
	var (
		validationErr *services.ValidationError
		writeErr      *services.WriteError
		fetchErr      *services.StoreFetchError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.ErrorResponse(c, validationErr.Error(), fiber.StatusBadRequest, types.TypeValidation)

	case errors.Is(err, services.ErrAuthenticationRequired):
		return utils.ErrorResponse(c, "Authentication required", fiber.StatusForbidden, types.TypeAuthorizationUser)

	case errors.Is(err, services.ErrAlreadySubmitted):
		return utils.ErrorResponse(c, "This form has already been submitted", fiber.StatusConflict, types.TypeDuplicate)

	case errors.Is(err, services.ErrProfileNotFound):
		return utils.NotFoundResponse(c, "Profile not found")

	case errors.Is(err, services.ErrSubmissionNotFound):
		return utils.NotFoundResponse(c, "Submission not found")

	case errors.Is(err, services.ErrUnknownFormType):
		return utils.NotFoundResponse(c, err.Error())

	case errors.As(err, &writeErr):
		// the store's reason goes back to the participant unchanged
		log.Printf("%v", writeErr)
		return utils.ErrorResponse(c, writeErr.Err.Error(), fiber.StatusInternalServerError, types.TypeWrite)

	case errors.As(err, &fetchErr):
		log.Printf("%v", fetchErr)
		return utils.ErrorResponse(c, "Failed to fetch submissions", fiber.StatusServiceUnavailable, types.TypeRead)
	}

	log.Printf("%s: %v", fallbackType, err)
	message, ok := fallbackMessages[fallbackType]
	if !ok {
		message = "Request failed"
	}
	return utils.ErrorResponse(c, message, fiber.StatusInternalServerError, fallbackType)
}

// parseBody decodes the JSON request body into target
func parseBody(c *fiber.Ctx, target interface{}) error {
	if err := c.BodyParser(target); err != nil {
		return &services.ValidationError{Message: fmt.Sprintf("Invalid request body: %v", err)}
	}
	return nil
}

// parseID reads a positive numeric route parameter
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, &services.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}
