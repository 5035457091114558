package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simka-id/simka-backend/pkg/migrate"
)

func TestInitSchemaMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE members",
		"CONSTRAINT members_npa_key UNIQUE (npa)",
		"member_id UUID NOT NULL REFERENCES members (id) ON DELETE CASCADE",
		"CREATE INDEX idx_members_cabang ON members (cabang)",
		"CREATE INDEX idx_activity_logs_created_at ON activity_logs (created_at)",
		"DROP TABLE IF EXISTS practice_locations",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirectoryValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
