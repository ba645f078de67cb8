package repository

import (
	"context"
	"database/sql"
	"errors"
)

// JobRepo reads the job catalog.
type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

// Upsert is used by seeding only; the catalog is read-only to the portal.
func (r *JobRepo) Upsert(ctx context.Context, j JobPosting) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO job_postings(id, position, company, location, salary_range)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 position=excluded.position,
	 company=excluded.company,
	 location=excluded.location,
	 salary_range=excluded.salary_range;
	`, j.ID, j.Position, j.Company, j.Location, j.SalaryRange)
	return err
}

func (r *JobRepo) List(ctx context.Context) ([]JobPosting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, position, company, location, salary_range FROM job_postings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []JobPosting
	for rows.Next() {
		var j JobPosting
		if err := rows.Scan(&j.ID, &j.Position, &j.Company, &j.Location, &j.SalaryRange); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Get returns nil, nil when no posting has the id.
func (r *JobRepo) Get(ctx context.Context, id int) (*JobPosting, error) {
	var j JobPosting
	err := r.db.QueryRowContext(ctx, `SELECT id, position, company, location, salary_range FROM job_postings WHERE id = ?`, id).
		Scan(&j.ID, &j.Position, &j.Company, &j.Location, &j.SalaryRange)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}
