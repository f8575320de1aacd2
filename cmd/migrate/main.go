package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/kelseyhightower/envconfig"

	"github.com/murkotick/storefront-cart-service/internal/pkg/logging"
)

type migrateConfig struct {
	SpannerDatabase string `envconfig:"SPANNER_DATABASE" required:"true"`
	MigrationsDir   string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
}

// A tiny migration helper that applies the DDL files in migrations/ (in name
// order) to a Cloud Spanner database, typically the emulator for local dev.
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logging.New("info", "json").Fatalf("config: %v", err)
	}
	log := logging.New(cfg.LogLevel, "json")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stmts, err := readDDLDir(cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("read DDL: %v", err)
	}
	if len(stmts) == 0 {
		log.Fatalf("no DDL statements found in %s", cfg.MigrationsDir)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		log.Fatalf("database admin client: %v", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.SpannerDatabase,
		Statements: stmts,
	})
	if err != nil {
		log.Fatalf("UpdateDatabaseDdl: %v", err)
	}

	if err := op.Wait(ctx); err != nil {
		log.Fatalf("UpdateDatabaseDdl wait: %v", err)
	}

	log.WithField("statements", len(stmts)).WithField("database", cfg.SpannerDatabase).Info("applied DDL")
}

func readDDLDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []string
	for _, f := range files {
		stmts, err := readDDLStatements(f)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Normalize line endings for Windows-authored files.
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(stripComments(sql), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}

// stripComments drops "--" line comments, which Spanner DDL does not accept.
func stripComments(sql string) string {
	lines := strings.Split(sql, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "--") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}
