package runcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded generation for an API.
type Run struct {
	ID             string
	API            string
	WSDLURL        string
	SchemaHash     string
	OperationCount int
	Deployed       bool
	CreatedAt      time.Time
}

// Repository handles run history persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository on an open database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// HashSchema returns the content hash stored with each run.
func HashSchema(schema string) string {
	sum := sha256.Sum256([]byte(schema))
	return hex.EncodeToString(sum[:])
}

// Record inserts a run, assigning its ID and timestamp.
func (r *Repository) Record(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO runs (id, api, wsdl_url, schema_hash, operation_count, deployed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.API, run.WSDLURL, run.SchemaHash, run.OperationCount, run.Deployed, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// MarkDeployed flips the deployed flag after a successful deploy.
func (r *Repository) MarkDeployed(id string) error {
	if _, err := r.db.Exec("UPDATE runs SET deployed = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to mark run deployed: %w", err)
	}
	return nil
}

// Latest returns the most recent run for an API, or nil when the API
// has never been generated.
func (r *Repository) Latest(api string) (*Run, error) {
	run := &Run{}
	err := r.db.QueryRow(`
		SELECT id, api, wsdl_url, schema_hash, operation_count, deployed, created_at
		FROM runs WHERE api = ? ORDER BY created_at DESC LIMIT 1
	`, api).Scan(&run.ID, &run.API, &run.WSDLURL, &run.SchemaHash, &run.OperationCount, &run.Deployed, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (r *Repository) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(`
		SELECT id, api, wsdl_url, schema_hash, operation_count, deployed, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.API, &run.WSDLURL, &run.SchemaHash, &run.OperationCount, &run.Deployed, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
