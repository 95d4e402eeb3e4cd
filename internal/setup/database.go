package setup

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
)

// DatabaseStep provisions an isolated database for the review worktree when
// the checked-out project's .env asks for MySQL or PostgreSQL and names no
// database yet. The generated name is written back into the .env file.
type DatabaseStep struct{}

// NewDatabaseStep creates a database.create step.
func NewDatabaseStep() *DatabaseStep {
	return &DatabaseStep{}
}

func (s *DatabaseStep) Name() string {
	return "database.create"
}

func (s *DatabaseStep) Condition(sc *Context) bool {
	env := readEnvFile(filepath.Join(sc.WorktreePath, ".env"))

	switch env["DB_CONNECTION"] {
	case "mysql", "mariadb", "pgsql", "postgres":
	default:
		return false
	}

	return env["DB_DATABASE"] == ""
}

func (s *DatabaseStep) Run(ctx context.Context, sc *Context, opts Options) error {
	envPath := filepath.Join(sc.WorktreePath, ".env")
	env := readEnvFile(envPath)

	dbName := generateDatabaseName(sc.PR)

	var err error
	switch env["DB_CONNECTION"] {
	case "mysql", "mariadb":
		err = createMySQLDatabase(ctx, env, dbName)
	case "pgsql", "postgres":
		err = createPostgresDatabase(ctx, env, dbName)
	}
	if err != nil {
		return fmt.Errorf("creating database %q: %w", dbName, err)
	}

	content, err := os.ReadFile(envPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .env: %w", err)
	}
	content = upsertEnvValue(content, "DB_DATABASE", dbName)
	if err := os.WriteFile(envPath, content, 0644); err != nil {
		return fmt.Errorf("updating .env: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("created review database", "database", dbName)
	}

	return nil
}

func createMySQLDatabase(ctx context.Context, env map[string]string, dbName string) error {
	cfg := mysql.NewConfig()
	cfg.User = envOr(env, "DB_USERNAME", "root")
	cfg.Passwd = env["DB_PASSWORD"]
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", envOr(env, "DB_HOST", "127.0.0.1"), envOr(env, "DB_PORT", "3306"))

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName))
	return err
}

func createPostgresDatabase(ctx context.Context, env map[string]string, dbName string) error {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres",
		url.QueryEscape(envOr(env, "DB_USERNAME", "postgres")),
		url.QueryEscape(env["DB_PASSWORD"]),
		envOr(env, "DB_HOST", "127.0.0.1"),
		envOr(env, "DB_PORT", "5432"))

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize())
	return err
}

func generateDatabaseName(pr int) string {
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return fmt.Sprintf("pr%d_%s", pr, hex.EncodeToString(bytes))
}

func envOr(env map[string]string, key, fallback string) string {
	if v := env[key]; v != "" {
		return v
	}
	return fallback
}
