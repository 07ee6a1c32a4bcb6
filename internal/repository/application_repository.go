package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// ApplicationDetail joins an application with its job and student fields
// for company review screens.
type ApplicationDetail struct {
	domain.Application
	JobTitle     string
	Department   string
	FirstName    string
	LastName     string
	StudentEmail string
	StudentPhone *string
	ResumeURL    *string
}

// ApplicationFilter narrows company application listings.
type ApplicationFilter struct {
	JobID *int64
	Limit int
}

// ApplicationRepository handles persistence for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	ListByCompany(ctx context.Context, companyID int64, filter ApplicationFilter) ([]ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	CountByCompanyAndStatus(ctx context.Context, companyID int64, status domain.ApplicationStatus) (int64, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates the repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, student_id, status, applied_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.StudentID,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, student_id, status)
        VALUES ($1, $2, $3)
        RETURNING id, applied_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		app.JobID,
		app.StudentID,
		app.Status,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 ORDER BY applied_at ASC`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	return result, rows.Err()
}

func (r *applicationRepository) ListByCompany(ctx context.Context, companyID int64, filter ApplicationFilter) ([]ApplicationDetail, error) {
	query := `
        SELECT a.id, a.job_id, a.student_id, a.status, a.applied_at, a.updated_at,
               j.job_title, j.department,
               s.first_name, s.last_name, s.email, s.phone, s.resume_url
        FROM applications a
        JOIN job_postings j ON a.job_id = j.id
        JOIN students s ON a.student_id = s.id
        WHERE j.company_id = $1`
	args := []any{companyID}

	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		query += fmt.Sprintf(" AND a.job_id = $%d", len(args))
	}

	query += " ORDER BY a.applied_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ApplicationDetail
	for rows.Next() {
		var detail ApplicationDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.JobID,
			&detail.StudentID,
			&detail.Status,
			&detail.AppliedAt,
			&detail.UpdatedAt,
			&detail.JobTitle,
			&detail.Department,
			&detail.FirstName,
			&detail.LastName,
			&detail.StudentEmail,
			&detail.StudentPhone,
			&detail.ResumeURL,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM applications a
        JOIN job_postings j ON a.job_id = j.id
        WHERE j.company_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *applicationRepository) CountByCompanyAndStatus(ctx context.Context, companyID int64, status domain.ApplicationStatus) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM applications a
        JOIN job_postings j ON a.job_id = j.id
        WHERE j.company_id = $1 AND a.status = $2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, companyID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
