package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/middleware"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/types"
	"github.com/localnerve/eventreg/internal/utils"
	"gorm.io/gorm"
)

// Routes holds what the /api routes need
type Routes struct {
	AppDB  *gorm.DB // admin pool
	UserDB *gorm.DB // participant pool
	IDP    services.IdentityProvider
}

// Mount registers every /api route on router
func (r Routes) Mount(router fiber.Router) {
	api := router.Group("/api")

	forms := &FormsHandler{DB: r.UserDB}
	admin := &AdminHandler{DB: r.AppDB}
	account := &AccountHandler{DB: r.UserDB, IDP: r.IDP}

	// Public routes
	api.Post("/register", account.Register)
	api.Get("/forms/waiver/terms", GetWaiverTerms)

	// Participant routes, registered after the public terms route above
	authUser := middleware.AuthUser(r.IDP)
	ensureProfile := middleware.EnsureProfile(r.UserDB)
	api.Get("/profile", authUser, ensureProfile, account.GetProfile)

	formsGroup := api.Group("/forms", authUser, ensureProfile)
	formsGroup.Get("/status", forms.GetStatus)
	formsGroup.Post("/parent", forms.SubmitParent)
	formsGroup.Post("/attendee", forms.SubmitAttendee)
	formsGroup.Post("/waiver", forms.SubmitWaiver)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthAdmin(r.IDP))
	adminGroup.Get("/submissions", admin.ListSubmissions)
	adminGroup.Get("/submissions/:formType/:id", admin.GetSubmission)
	adminGroup.Get("/users/:userID/status", admin.GetUserStatus)
}

// NotFound is the catch-all 404 handler
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// ErrorHandler renders errors that escape a handler into the error envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var (
		fiberErr  *fiber.Error
		customErr *types.CustomError
	)
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
