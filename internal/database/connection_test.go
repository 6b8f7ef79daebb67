package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/eventreg/internal/config"
	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/gorm/logger"
)

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":     "mysql",
		"mariadb":   "mysql",
		"postgres":  "postgres",
		"sqlite":    "sqlite",
		"sqlite3":   "sqlite",
		"sqlserver": "sqlserver",
	}

	for dbType, want := range cases {
		cfg := &config.Config{DBType: dbType, DBHost: "localhost", DBPort: "1", DBAppDatabase: "eventreg"}
		d, err := Dialector(cfg, "user", "pass")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", dbType, err)
		}
		if d.Name() != want {
			t.Errorf("%s: expected dialector %s, got %s", dbType, want, d.Name())
		}
	}
}

func TestDialectorUnsupported(t *testing.T) {
	if _, err := Dialector(&config.Config{DBType: "oracle"}, "", ""); err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}

func TestLogLevel(t *testing.T) {
	if LogLevel("silent") != logger.Silent || LogLevel("info") != logger.Info {
		t.Error("LogLevel did not map known levels")
	}
	if LogLevel("") != logger.Warn {
		t.Error("Expected warn for unknown level")
	}
}

// TestConnectSQLiteFile exercises the pure Go driver end to end
func TestConnectSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBType:               "sqlite",
		DBAppDatabase:        filepath.Join(t.TempDir(), "eventreg.db"),
		DBAppConnectionLimit: 2,
		DBLogLevel:           "silent",
	}

	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer Close(db)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	for _, m := range models.All() {
		if !db.Migrator().HasTable(m) {
			t.Errorf("Expected table for %T", m)
		}
	}
}
