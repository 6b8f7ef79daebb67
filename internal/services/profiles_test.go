package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/testutil"
)

func TestProfileDirectoryLookup(t *testing.T) {
	dir := services.ProfileDirectory{"u1": {Name: "Ana", Email: "ana@x.com"}}

	if name, email := dir.Lookup("u1"); name != "Ana" || email != "ana@x.com" {
		t.Errorf("Unexpected lookup: %q %q", name, email)
	}
	if name, email := dir.Lookup("u2"); name != services.UnknownUserName || email != services.UnknownUserEmail {
		t.Errorf("Expected sentinels, got %q %q", name, email)
	}
}

func TestLoadProfileDirectoryByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana, bob := testutil.NewUserID(), testutil.NewUserID()
	testutil.CreateProfile(t, db, ana, "Ana", "ana@x.com")
	testutil.CreateProfile(t, db, bob, "Bob", "bob@x.com")

	dir, err := services.LoadProfileDirectory(context.Background(), db, bob)
	if err != nil {
		t.Fatalf("LoadProfileDirectory failed: %v", err)
	}
	if len(dir) != 1 || dir[bob].Name != "Bob" {
		t.Errorf("Expected only Bob, got %v", dir)
	}
}

func TestEnsureProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	caller := &services.Identity{ID: testutil.NewUserID(), Email: "ana@x.com", GivenName: "Ana", FamilyName: "Lopez"}
	profile, err := services.EnsureProfile(ctx, db, caller)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Name != "Ana Lopez" || profile.Email != "ana@x.com" {
		t.Errorf("Unexpected profile: %+v", profile)
	}

	var claims map[string]any
	if err := json.Unmarshal([]byte(profile.Metadata.JSON), &claims); err != nil {
		t.Fatalf("Invalid metadata: %v", err)
	}
	if claims["given_name"] != "Ana" || claims["id"] != caller.ID {
		t.Errorf("Unexpected claims: %v", claims)
	}

	// a second call keeps the stored row
	caller.GivenName = "Changed"
	again, err := services.EnsureProfile(ctx, db, caller)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if again.Name != "Ana Lopez" {
		t.Errorf("Expected the stored name, got %q", again.Name)
	}
}

func TestEnsureProfileFallbackName(t *testing.T) {
	db := testutil.NewTestDB(t)

	profile, err := services.EnsureProfile(context.Background(), db, &services.Identity{ID: testutil.NewUserID(), Email: "x@x.com"})
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Name != "Participant" {
		t.Errorf("Expected fallback name, got %q", profile.Name)
	}

	if _, err := services.EnsureProfile(context.Background(), db, nil); !errors.Is(err, services.ErrAuthenticationRequired) {
		t.Errorf("Expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	if _, err := services.GetProfile(context.Background(), db, "nobody"); !errors.Is(err, services.ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestIdentityDisplayName(t *testing.T) {
	cases := []struct {
		identity services.Identity
		want     string
	}{
		{services.Identity{GivenName: "Ana", FamilyName: "Lopez", Nickname: "al"}, "Ana Lopez"},
		{services.Identity{FamilyName: "Lopez"}, "Lopez"},
		{services.Identity{Nickname: "al", PreferredUsername: "ana"}, "al"},
		{services.Identity{PreferredUsername: "ana"}, "ana"},
		{services.Identity{}, ""},
	}
	for _, tc := range cases {
		if got := tc.identity.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tc.identity, got, tc.want)
		}
	}
}
