package database_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/localnerve/eventreg/internal/config"
	"github.com/localnerve/eventreg/internal/database"
	"github.com/localnerve/eventreg/internal/services"
	"github.com/localnerve/eventreg/internal/testutil"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func imageOr(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// TestWithMariaDB runs the form flow against MariaDB with the init scripts applied
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	t.Setenv("DB_APP_DATABASE", "eventreg")
	t.Setenv("DB_APP_USER", "eventreg_admin")
	t.Setenv("DB_APP_PASSWORD", "adminpass")
	t.Setenv("DB_USER", "eventreg_user")
	t.Setenv("DB_PASSWORD", "userpass")
	t.Setenv("AUTHZ_DATABASE", "")

	if err := testutil.InitMySQL(fmt.Sprintf("root:rootpass@tcp(%s:%s)/", host, port.Port())); err != nil {
		t.Fatalf("Failed to initialize MariaDB: %v", err)
	}

	cfg := &config.Config{
		DBType:               "mariadb",
		DBHost:               host,
		DBPort:               port.Port(),
		DBAppDatabase:        "eventreg",
		DBAppUser:            "eventreg_admin",
		DBAppPassword:        "adminpass",
		DBAppConnectionLimit: 5,
		DBUser:               "eventreg_user",
		DBPassword:           "userpass",
		DBConnectionLimit:    5,
		DBLogLevel:           "warn",
	}
	runFormFlow(t, cfg)
}

// TestWithPostgreSQL runs the form flow against PostgreSQL with gorm migrations
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageOr("POSTGRES_IMAGE", "postgres:17"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// one role serves both pools here
	cfg := &config.Config{
		DBType:               "postgres",
		DBHost:               host,
		DBPort:               port.Port(),
		DBAppDatabase:        "testdb",
		DBAppUser:            "testuser",
		DBAppPassword:        "testpass",
		DBAppConnectionLimit: 5,
		DBUser:               "testuser",
		DBPassword:           "testpass",
		DBConnectionLimit:    5,
		DBLogLevel:           "warn",
	}
	runFormFlow(t, cfg)
}

// runFormFlow migrates with the admin pool, submits through the participant
// pool and reads the aggregate back through the admin pool.
func runFormFlow(t *testing.T, cfg *config.Config) {
	t.Helper()
	ctx := context.Background()

	appDB, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect admin pool: %v", err)
	}
	defer database.Close(appDB)

	if err := database.AutoMigrate(appDB); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userDB, err := database.ConnectUser(cfg)
	if err != nil {
		t.Fatalf("Failed to connect participant pool: %v", err)
	}
	defer database.Close(userDB)

	t.Run("HealthCheckSchema", func(t *testing.T) {
		cfg := *cfg
		cfg.AuthzURL = "http://127.0.0.1:1"
		result := services.HealthCheck(ctx, &cfg, appDB)
		if result.Database != "ok" {
			t.Errorf("Expected database ok, got %s (%s)", result.Database, result.ErrorMessage)
		}
	})

	t.Run("SubmitAndAggregate", func(t *testing.T) {
		testSubmitAndAggregate(t, appDB, userDB)
	})
}

func testSubmitAndAggregate(t *testing.T, appDB, userDB *gorm.DB) {
	ctx := context.Background()
	ana := testutil.NewParticipant("Ana", "ana@x.com")

	if _, err := services.EnsureProfile(ctx, userDB, ana); err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if _, err := services.SubmitParentForm(ctx, userDB, ana, services.ParentFormInput{
		ParentName: "Bob", ContactNumber: "555", EmergencyContact: "999",
	}); err != nil {
		t.Fatalf("SubmitParentForm failed: %v", err)
	}
	if _, err := services.SubmitAttendeeForm(ctx, userDB, ana, services.AttendeeFormInput{AttendeeName: "Ana"}); err != nil {
		t.Fatalf("SubmitAttendeeForm failed: %v", err)
	}
	if _, err := services.SubmitAttendeeForm(ctx, userDB, ana, services.AttendeeFormInput{AttendeeName: "Ana"}); !errors.Is(err, services.ErrAlreadySubmitted) {
		t.Fatalf("Expected ErrAlreadySubmitted, got %v", err)
	}

	list, err := services.ListAllSubmissions(ctx, appDB)
	if err != nil {
		t.Fatalf("ListAllSubmissions failed: %v", err)
	}
	if list.Partial() || len(list.Submissions) != 2 {
		t.Fatalf("Expected 2 complete submissions, got %+v", list)
	}
	for _, s := range list.Submissions {
		if s.UserName != "Ana" {
			t.Errorf("Expected Ana, got %q", s.UserName)
		}
	}

	status := services.GetCompletionStatus(ctx, userDB, ana.ID)
	if !status.ParentForm || !status.AttendeeForm || status.WaiverForm {
		t.Errorf("Expected {true true false}, got %+v", status)
	}
}
