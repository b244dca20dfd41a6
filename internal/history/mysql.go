package history

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"cute/internal/config"
	"cute/pkg/engine"
)

// RunSummary is one archived run
type RunSummary struct {
	ID              int64
	Timestamp       time.Time
	Mode            string
	Found           int
	Passing         int
	Failing         int
	DurationSeconds float64
}

// Archive records finished runs in MySQL so pass/fail trends survive
// across invocations.
type Archive struct {
	config *config.Config
}

// NewArchive creates a new Archive
func NewArchive(cfg *config.Config) *Archive {
	return &Archive{config: cfg}
}

// connect opens a connection using CUTE_DB_* settings from the
// environment (a project .env file is loaded first when present).
func (a *Archive) connect() (*sql.DB, error) {
	if err := godotenv.Load(a.config.GetEnvPath()); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	dbHost := os.Getenv("CUTE_DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("CUTE_DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("CUTE_DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("CUTE_DB_PASSWORD")
	dbName := os.Getenv("CUTE_DB_DATABASE")
	if dbName == "" {
		dbName = "cute"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

var validTableName = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// table returns the configured history table name after validating it,
// since table names cannot be bound as query parameters.
func (a *Archive) table() (string, error) {
	name := a.config.GetHistoryTable()
	if !validTableName.MatchString(name) {
		return "", fmt.Errorf("invalid history table name: %s", name)
	}
	return name, nil
}

// ensureSchema creates the history table if it does not exist
func (a *Archive) ensureSchema(db *sql.DB, table string) error {
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, "+
		"ts TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, "+
		"mode VARCHAR(16) NOT NULL, "+
		"found INT NOT NULL, "+
		"passing INT NOT NULL, "+
		"failing INT NOT NULL, "+
		"duration_seconds DOUBLE NOT NULL)", table)
	_, err := db.Exec(query)
	return err
}

// Record inserts a summary row for the finished run
func (a *Archive) Record(report *engine.Report) error {
	table, err := a.table()
	if err != nil {
		return err
	}
	db, err := a.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := a.ensureSchema(db, table); err != nil {
		return fmt.Errorf("failed to prepare history table: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO `%s` (mode, found, passing, failing, duration_seconds) VALUES (?, ?, ?, ?, ?)", table)
	_, err = db.Exec(query,
		report.Mode,
		report.Aggregate.Found,
		report.Aggregate.Passing,
		report.Aggregate.Failing,
		report.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent archived runs, newest first
func (a *Archive) List(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	table, err := a.table()
	if err != nil {
		return nil, err
	}
	db, err := a.connect()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := a.ensureSchema(db, table); err != nil {
		return nil, fmt.Errorf("failed to prepare history table: %w", err)
	}

	query := fmt.Sprintf("SELECT id, ts, mode, found, passing, failing, duration_seconds FROM `%s` ORDER BY id DESC LIMIT ?", table)
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var run RunSummary
		if err := rows.Scan(&run.ID, &run.Timestamp, &run.Mode, &run.Found, &run.Passing, &run.Failing, &run.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
