package repository

import (
	"context"
	"database/sql"
)

// ApplicationRepo reads the demo application history.
type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) Upsert(ctx context.Context, a Application) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO applications(id, position, company, applied_date, status)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 position=excluded.position,
	 company=excluded.company,
	 applied_date=excluded.applied_date,
	 status=excluded.status;
	`, a.ID, a.Position, a.Company, a.AppliedDate, string(a.Status))
	return err
}

// List returns applications newest first.
func (r *ApplicationRepo) List(ctx context.Context) ([]Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, position, company, applied_date, status FROM applications ORDER BY applied_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Application
	for rows.Next() {
		var a Application
		var status string
		if err := rows.Scan(&a.ID, &a.Position, &a.Company, &a.AppliedDate, &status); err != nil {
			return nil, err
		}
		a.Status = ApplicationStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}
