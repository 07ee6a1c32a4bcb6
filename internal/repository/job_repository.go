package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// JobWithApplications pairs a posting with its application count.
type JobWithApplications struct {
	domain.JobPosting
	ApplicationsCount int64
}

// JobRepository handles persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	GetByID(ctx context.Context, id int64) (*domain.JobPosting, error)
	List(ctx context.Context) ([]domain.JobPosting, error)
	ListByCompany(ctx context.Context, companyID int64, limit int) ([]JobWithApplications, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error
	CountByCompany(ctx context.Context, companyID int64, status domain.JobStatus) (int64, error)
	CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates the repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `
        id, company_id, job_title, department, description, location,
        job_type, salary_range, status, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var job domain.JobPosting
	if err := row.Scan(
		&job.ID,
		&job.CompanyID,
		&job.JobTitle,
		&job.Department,
		&job.Description,
		&job.Location,
		&job.JobType,
		&job.SalaryRange,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *domain.JobPosting) error {
	const query = `
        INSERT INTO job_postings (company_id, job_title, department, description,
            location, job_type, salary_range, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		job.CompanyID,
		job.JobTitle,
		job.Department,
		job.Description,
		job.Location,
		job.JobType,
		job.SalaryRange,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT` + jobColumns + ` FROM job_postings WHERE id=$1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

func (r *jobRepository) List(ctx context.Context) ([]domain.JobPosting, error) {
	query := `SELECT` + jobColumns + ` FROM job_postings ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	return result, rows.Err()
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyID int64, limit int) ([]JobWithApplications, error) {
	query := `
        SELECT j.id, j.company_id, j.job_title, j.department, j.description,
               j.location, j.job_type, j.salary_range, j.status, j.created_at,
               j.updated_at, COUNT(a.id) AS applications_count
        FROM job_postings j
        LEFT JOIN applications a ON j.id = a.job_id
        WHERE j.company_id = $1
        GROUP BY j.id
        ORDER BY j.created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []JobWithApplications
	for rows.Next() {
		var job JobWithApplications
		if err := rows.Scan(
			&job.ID,
			&job.CompanyID,
			&job.JobTitle,
			&job.Department,
			&job.Description,
			&job.Location,
			&job.JobType,
			&job.SalaryRange,
			&job.Status,
			&job.CreatedAt,
			&job.UpdatedAt,
			&job.ApplicationsCount,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	const query = `UPDATE job_postings SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) CountByCompany(ctx context.Context, companyID int64, status domain.JobStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM job_postings WHERE company_id=$1 AND status=$2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, companyID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *jobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM job_postings WHERE status=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
