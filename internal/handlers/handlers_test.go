// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/eventreg/internal/handlers"
	"github.com/localnerve/eventreg/internal/middleware"
	"github.com/localnerve/eventreg/internal/models"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/testutil"
	"github.com/localnerve/eventreg/internal/types"
	"gorm.io/gorm"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
	idp *testutil.FakeIdentityProvider
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.NewTestDB(t)
	idp := testutil.NewFakeIdentityProvider()

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.Routes{AppDB: db, UserDB: db, IDP: idp}.Mount(app)
	app.Use(handlers.NotFound)

	return &testApp{app: app, db: db, idp: idp}
}

func (ta *testApp) do(t *testing.T, method, path, cookie string, body interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func TestSubmitFormsAndStatus(t *testing.T) {
	ta := setupApp(t)
	ana := testutil.NewParticipant("Ana", "ana@x.com")
	cookie := ta.idp.AddSession(ana)

	resp := ta.do(t, "POST", "/api/forms/parent", cookie, services.ParentFormInput{
		ParentName: "Bob", ContactNumber: "555", EmergencyContact: "999",
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	var created struct {
		Ok   bool                  `json:"ok"`
		Data services.SubmitResult `json:"data"`
	}
	testutil.ParseJSON(t, resp, &created)
	if !created.Ok || created.Data.ID == 0 || created.Data.FormType != services.ParentFormType {
		t.Errorf("Unexpected create response: %+v", created)
	}

	resp = ta.do(t, "GET", "/api/forms/status", cookie, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var status services.CompletionStatus
	testutil.ParseJSON(t, resp, &status)
	if !status.ParentForm || status.AttendeeForm || status.WaiverForm {
		t.Errorf("Expected {true false false}, got %+v", status)
	}

	// the auth middleware created the profile
	if _, err := services.GetProfile(t.Context(), ta.db, ana.ID); err != nil {
		t.Errorf("Expected a profile for the caller: %v", err)
	}
}

func TestSubmitDuplicateConflict(t *testing.T) {
	ta := setupApp(t)
	cookie := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))
	in := services.AttendeeFormInput{AttendeeName: "Ana"}

	testutil.AssertStatus(t, ta.do(t, "POST", "/api/forms/attendee", cookie, in), fiber.StatusCreated)
	testutil.AssertEnvelope(t, ta.do(t, "POST", "/api/forms/attendee", cookie, in), fiber.StatusConflict, types.TypeDuplicate)
}

func TestSubmitWaiverDisagree(t *testing.T) {
	ta := setupApp(t)
	cookie := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))

	resp := ta.do(t, "POST", "/api/forms/waiver", cookie, services.WaiverFormInput{WaiverAgreement: "disagree", Signature: "Ana"})
	testutil.AssertEnvelope(t, resp, fiber.StatusBadRequest, types.TypeValidation)

	var n int64
	ta.db.Model(&models.WaiverForm{}).Count(&n)
	if n != 0 {
		t.Errorf("Expected zero waiver rows, got %d", n)
	}
}

func TestSubmitInvalidBody(t *testing.T) {
	ta := setupApp(t)
	cookie := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))

	req := httptest.NewRequest("POST", "/api/forms/parent", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertEnvelope(t, resp, fiber.StatusBadRequest, types.TypeValidation)
}

func TestSubmitWriteFailure(t *testing.T) {
	ta := setupApp(t)
	cookie := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))
	testutil.DropTable(t, ta.db, &models.ParentForm{})

	resp := ta.do(t, "POST", "/api/forms/parent", cookie, services.ParentFormInput{
		ParentName: "Bob", ContactNumber: "555", EmergencyContact: "999",
	})
	env := testutil.AssertEnvelope(t, resp, fiber.StatusInternalServerError, types.TypeWrite)
	if env.Message == "" {
		t.Error("Expected the store's reason in the message")
	}
}

func TestFormsRequireSession(t *testing.T) {
	ta := setupApp(t)

	testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/forms/status", "", nil), fiber.StatusForbidden, types.TypeAuthorizationUser)
	testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/forms/status", "bogus", nil), fiber.StatusForbidden, types.TypeAuthorizationUser)
}

func TestWaiverTermsPublic(t *testing.T) {
	ta := setupApp(t)

	resp := ta.do(t, "GET", "/api/forms/waiver/terms", "", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var terms services.WaiverTerms
	testutil.ParseJSON(t, resp, &terms)
	if terms.HTML == "" || terms.Version == "" {
		t.Errorf("Unexpected terms: %+v", terms)
	}
}

func TestAdminListSubmissions(t *testing.T) {
	ta := setupApp(t)
	ana := testutil.NewUserID()
	testutil.CreateProfile(t, ta.db, ana, "Ana", "ana@x.com")
	testutil.CreateParentForm(t, ta.db, ana, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	testutil.CreateAttendeeForm(t, ta.db, ana, time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC), nil)

	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))
	resp := ta.do(t, "GET", "/api/admin/submissions", admin, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	if resp.Header.Get(handlers.PartialHeader) != "" {
		t.Error("Unexpected partial header")
	}

	var list struct {
		Submissions []struct {
			FormType string `json:"form_type"`
			UserName string `json:"user_name"`
		} `json:"submissions"`
	}
	testutil.ParseJSON(t, resp, &list)
	if len(list.Submissions) != 2 || list.Submissions[0].FormType != "Attendee Form" || list.Submissions[0].UserName != "Ana" {
		t.Errorf("Unexpected list: %+v", list.Submissions)
	}
}

func TestAdminListPartial(t *testing.T) {
	ta := setupApp(t)
	testutil.DropTable(t, ta.db, &models.WaiverForm{})
	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))

	resp := ta.do(t, "GET", "/api/admin/submissions", admin, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	if resp.Header.Get(handlers.PartialHeader) != "1" {
		t.Errorf("Expected partial header 1, got %q", resp.Header.Get(handlers.PartialHeader))
	}
}

func TestAdminListAllStoresDown(t *testing.T) {
	ta := setupApp(t)
	testutil.DropTable(t, ta.db, &models.ParentForm{})
	testutil.DropTable(t, ta.db, &models.AttendeeForm{})
	testutil.DropTable(t, ta.db, &models.WaiverForm{})
	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))

	testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/admin/submissions", admin, nil), fiber.StatusServiceUnavailable, types.TypeRead)
}

func TestAdminRequiresRole(t *testing.T) {
	ta := setupApp(t)
	participant := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))

	testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/admin/submissions", participant, nil), fiber.StatusForbidden, types.TypeAuthorizationAdmin)
}

func TestAdminGetSubmission(t *testing.T) {
	ta := setupApp(t)
	ana := testutil.NewUserID()
	row := testutil.CreateWaiverForm(t, ta.db, ana, time.Now())
	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))

	resp := ta.do(t, "GET", "/api/admin/submissions/waiver/"+strconv.FormatUint(row.ID, 10), admin, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var got map[string]any
	testutil.ParseJSON(t, resp, &got)
	if got["form_type"] != "Waiver Form" || got["user_email"] != services.UnknownUserEmail {
		t.Errorf("Unexpected submission: %v", got)
	}

	testutil.AssertStatus(t, ta.do(t, "GET", "/api/admin/submissions/parent/"+strconv.FormatUint(row.ID, 10), admin, nil), fiber.StatusNotFound)
	testutil.AssertStatus(t, ta.do(t, "GET", "/api/admin/submissions/medical/1", admin, nil), fiber.StatusNotFound)
	testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/admin/submissions/waiver/abc", admin, nil), fiber.StatusBadRequest, types.TypeValidation)
}

func TestStoreErrorsKeepDriverTextOut(t *testing.T) {
	ta := setupApp(t)
	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))
	testutil.DropTable(t, ta.db, &models.ParentForm{}, &models.Profile{})

	resp := ta.do(t, "GET", "/api/admin/submissions/parent/1", admin, nil)
	env := testutil.AssertEnvelope(t, resp, fiber.StatusInternalServerError, "getSubmission")
	if env.Message != "Failed to load submission" {
		t.Errorf("Expected fixed submission message, got %q", env.Message)
	}

	resp = ta.do(t, "POST", "/api/register", "", services.RegisterInput{
		Name: "Ana", Email: "ana@x.com", Password: testutil.GeneratePassword(),
	})
	env = testutil.AssertEnvelope(t, resp, fiber.StatusInternalServerError, types.TypeRegistration)
	if env.Message != "Registration failed" {
		t.Errorf("Expected fixed registration message, got %q", env.Message)
	}

	participant := ta.idp.AddSession(testutil.NewParticipant("Ana", "ana@x.com"))
	env = testutil.AssertEnvelope(t, ta.do(t, "GET", "/api/profile", participant, nil), fiber.StatusInternalServerError, types.TypeWrite)
	if strings.Contains(env.Message, "no such table") {
		t.Errorf("Expected no driver text, got %q", env.Message)
	}
}

func TestAdminUserStatus(t *testing.T) {
	ta := setupApp(t)
	ana := testutil.NewUserID()
	testutil.CreateAttendeeForm(t, ta.db, ana, time.Now(), nil)
	admin := ta.idp.AddSession(testutil.NewAdmin("admin@x.com"))

	resp := ta.do(t, "GET", "/api/admin/users/"+ana+"/status", admin, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var status services.CompletionStatus
	testutil.ParseJSON(t, resp, &status)
	if status.ParentForm || !status.AttendeeForm || status.WaiverForm {
		t.Errorf("Expected {false true false}, got %+v", status)
	}
}

func TestRegisterAndProfile(t *testing.T) {
	ta := setupApp(t)

	resp := ta.do(t, "POST", "/api/register", "", services.RegisterInput{
		Name: "Ana Lopez", Email: "ana@x.com", Password: testutil.GeneratePassword(),
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	var created struct {
		Data services.RegisterResult `json:"data"`
	}
	testutil.ParseJSON(t, resp, &created)
	if created.Data.UserID == "" {
		t.Fatalf("Expected a user id, got %+v", created.Data)
	}

	cookie := ta.idp.AddSession(&services.Identity{ID: created.Data.UserID, Email: "ana@x.com", Roles: []string{services.RoleUser}})
	resp = ta.do(t, "GET", "/api/profile", cookie, nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var profile models.Profile
	testutil.ParseJSON(t, resp, &profile)
	if profile.Name != "Ana Lopez" {
		t.Errorf("Expected the registered name, got %q", profile.Name)
	}

	resp = ta.do(t, "POST", "/api/register", "", services.RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "weak"})
	testutil.AssertEnvelope(t, resp, fiber.StatusBadRequest, types.TypeValidation)
}

func TestNotFound(t *testing.T) {
	ta := setupApp(t)

	resp := ta.do(t, "GET", "/nope", "", nil)
	env := testutil.AssertEnvelope(t, resp, fiber.StatusNotFound, types.TypeNotFound)
	if env.URL != "/nope" {
		t.Errorf("Expected url /nope, got %s", env.URL)
	}
}
