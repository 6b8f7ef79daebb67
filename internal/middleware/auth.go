package middleware

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/types"
	"gorm.io/gorm"
)

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

const identityKey = "identity"

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(idp services.IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, idp, []string{services.RoleAdmin}, types.TypeAuthorizationAdmin)
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(idp services.IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, idp, []string{services.RoleUser}, types.TypeAuthorizationUser)
	}
}

// EnsureProfile creates the caller's profile the first time they are seen.
// It must run after AuthUser.
func EnsureProfile(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CurrentIdentity(c)
		if caller == nil {
			return types.NewError(fiber.StatusForbidden, types.TypeAuthorizationUser, "Authentication required")
		}
		if _, err := services.EnsureProfile(c.UserContext(), db, caller); err != nil {
			log.Printf("EnsureProfile failed for %s: %v", caller.ID, err)
			return types.NewError(fiber.StatusInternalServerError, types.TypeWrite, "Failed to create profile")
		}
		return c.Next()
	}
}

// CurrentIdentity returns the identity set by the auth middleware, or nil
func CurrentIdentity(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, idp services.IdentityProvider, roles []string, errorType string) error {
	// Get session cookie
	session := c.Cookies(SessionCookie)
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
			Type:    errorType,
		}
	}

	// Validate session
	identity, err := idp.ValidateSession(c.UserContext(), session, roles)
	if err != nil {
		log.Printf("Session validation failed: %v", err)
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Invalid session",
			Type:    errorType,
		}
	}

	c.Locals(identityKey, identity)
	return c.Next()
}
