package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// ErrNotFound is returned when no project matches the requested ID.
var ErrNotFound = errors.New("project not found")

// SQLiteProjectRepo implements ProjectRepo using a SQLite database. The
// roadmap and constraints round-trip as JSON blobs; the store stays opaque.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	roadmapJSON, constraintsJSON, err := marshalProject(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (id, name, description, roadmap_json, constraints_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		roadmapJSON,
		constraintsJSON,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, description, roadmap_json, constraints_json, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT id, name, description, roadmap_json, constraints_json, created_at, updated_at
		FROM projects ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	roadmapJSON, constraintsJSON, err := marshalProject(p)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET name = ?, description = ?, roadmap_json = ?, constraints_json = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		roadmapJSON,
		constraintsJSON,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalProject(p *domain.Project) (roadmapJSON, constraintsJSON string, err error) {
	rb, err := json.Marshal(p.Roadmap)
	if err != nil {
		return "", "", fmt.Errorf("marshaling roadmap: %w", err)
	}
	cb, err := json.Marshal(p.Constraints)
	if err != nil {
		return "", "", fmt.Errorf("marshaling constraints: %w", err)
	}
	return string(rb), string(cb), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var roadmapJSON, constraintsJSON, createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &roadmapJSON, &constraintsJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if err := json.Unmarshal([]byte(roadmapJSON), &p.Roadmap); err != nil {
		return nil, fmt.Errorf("parsing stored roadmap: %w", err)
	}
	if err := json.Unmarshal([]byte(constraintsJSON), &p.Constraints); err != nil {
		return nil, fmt.Errorf("parsing stored constraints: %w", err)
	}
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
