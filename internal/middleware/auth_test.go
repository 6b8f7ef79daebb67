package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/handlers"
	"github.com/localnerve/eventreg/internal/middleware"
	"github.com/localnerve/eventreg/internal/models"
	"github.com/localnerve/eventreg/internal/testutil"
	"github.com/localnerve/eventreg/internal/types"
)

func whoami(c *fiber.Ctx) error {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		return c.SendString("anonymous")
	}
	return c.SendString(identity.ID)
}

func request(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func TestAuthUser(t *testing.T) {
	idp := testutil.NewFakeIdentityProvider()
	ana := testutil.NewParticipant("Ana", "ana@x.com")
	cookie := idp.AddSession(ana)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/open", whoami)
	app.Get("/user", middleware.AuthUser(idp), whoami)
	app.Get("/admin", middleware.AuthAdmin(idp), whoami)

	resp := request(t, app, "/open", "")
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = request(t, app, "/user", cookie)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	body, _ := io.ReadAll(resp.Body)
	if string(body) != ana.ID {
		t.Errorf("Expected identity %s in handler, got %q", ana.ID, body)
	}

	env := testutil.AssertEnvelope(t, request(t, app, "/user", ""), fiber.StatusForbidden, types.TypeAuthorizationUser)
	if env.URL != "/user" {
		t.Errorf("Expected url /user in envelope, got %q", env.URL)
	}
	testutil.AssertEnvelope(t, request(t, app, "/admin", cookie), fiber.StatusForbidden, types.TypeAuthorizationAdmin)
}

func TestEnsureProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	idp := testutil.NewFakeIdentityProvider()
	cookie := idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/user", middleware.AuthUser(idp), middleware.EnsureProfile(db), whoami)
	app.Get("/lost", middleware.EnsureProfile(db), whoami)

	testutil.AssertStatus(t, request(t, app, "/user", cookie), fiber.StatusOK)
	var n int64
	db.Model(&models.Profile{}).Count(&n)
	if n != 1 {
		t.Errorf("Expected one profile, got %d", n)
	}

	// without AuthUser there is no identity
	testutil.AssertEnvelope(t, request(t, app, "/lost", ""), fiber.StatusForbidden, types.TypeAuthorizationUser)

	testutil.DropTable(t, db, &models.Profile{})
	env := testutil.AssertEnvelope(t, request(t, app, "/user", cookie), fiber.StatusInternalServerError, types.TypeWrite)
	if env.Message != "Failed to create profile" {
		t.Errorf("Expected fixed profile message, got %q", env.Message)
	}
}
