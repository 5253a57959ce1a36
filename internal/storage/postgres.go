// Package storage is the optional analysis history. The pipeline itself is
// request-scoped and never reads from here; writes are best-effort.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/venture_radar/internal/config"
)

// Record is one completed analysis.
type Record struct {
	ID        string
	City      string
	Country   string
	Sector    string
	Narrative string
	Sources   []string
	CreatedAt time.Time
}

// Storage wraps the history database.
type Storage struct {
	db *sql.DB
}

// NewStorage opens the connection and initializes the schema.
func NewStorage(cfg config.DBConfig) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS analyses (
			id TEXT PRIMARY KEY,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			sector TEXT NOT NULL,
			narrative TEXT NOT NULL,
			sources TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init analyses table: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close releases the connection pool.
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveAnalysis records one completed analysis and returns its ID.
func (s *Storage) SaveAnalysis(ctx context.Context, rec *Record) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	// Postgres text columns reject NUL bytes.
	narrative := strings.ReplaceAll(rec.Narrative, "\x00", "")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, city, country, sector, narrative, sources) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, rec.City, rec.Country, rec.Sector, narrative, strings.Join(rec.Sources, "\n"))
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}
	return id, nil
}

// ListRecent returns the newest analyses first, narratives omitted.
func (s *Storage) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, city, country, sector, sources, created_at FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var sources string
		if err := rows.Scan(&rec.ID, &rec.City, &rec.Country, &rec.Sector, &sources, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis row: %w", err)
		}
		if sources != "" {
			rec.Sources = strings.Split(sources, "\n")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
