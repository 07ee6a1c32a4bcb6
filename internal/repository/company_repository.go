package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// CompanyRepository defines persistence access for company accounts.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetByEmail(ctx context.Context, email string) (*domain.Company, error)
	UpdateProfile(ctx context.Context, id int64, profile domain.CompanyProfile) error
	UpdateStatus(ctx context.Context, id int64, status domain.CompanyStatus) error
	TouchLastLogin(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status domain.CompanyStatus) ([]domain.Company, error)
	CountByStatus(ctx context.Context, status domain.CompanyStatus) (int64, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

const companyColumns = `
        id, email, password_hash, company_name, contact_person, industry,
        website, location, company_size, description, contact_email,
        contact_phone, status, last_login_at, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	if err := row.Scan(
		&company.ID,
		&company.Email,
		&company.PasswordHash,
		&company.CompanyName,
		&company.ContactPerson,
		&company.Industry,
		&company.Website,
		&company.Location,
		&company.CompanySize,
		&company.Description,
		&company.ContactEmail,
		&company.ContactPhone,
		&company.Status,
		&company.LastLoginAt,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (email, password_hash, company_name, contact_person, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		company.Email,
		company.PasswordHash,
		company.CompanyName,
		company.ContactPerson,
		company.Status,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT` + companyColumns + ` FROM companies WHERE id=$1`
	return scanCompany(r.pool.QueryRow(ctx, query, id))
}

func (r *companyRepository) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	query := `SELECT` + companyColumns + ` FROM companies WHERE email=$1`
	return scanCompany(r.pool.QueryRow(ctx, query, email))
}

func (r *companyRepository) UpdateProfile(ctx context.Context, id int64, profile domain.CompanyProfile) error {
	const query = `
        UPDATE companies SET
            company_name=$1, industry=$2, website=$3, location=$4,
            company_size=$5, description=$6, contact_person=$7,
            contact_email=$8, contact_phone=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		profile.CompanyName,
		profile.Industry,
		profile.Website,
		profile.Location,
		profile.CompanySize,
		profile.Description,
		profile.ContactPerson,
		profile.ContactEmail,
		profile.ContactPhone,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepository) UpdateStatus(ctx context.Context, id int64, status domain.CompanyStatus) error {
	const query = `UPDATE companies SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepository) TouchLastLogin(ctx context.Context, id int64) error {
	const query = `UPDATE companies SET last_login_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *companyRepository) ListByStatus(ctx context.Context, status domain.CompanyStatus) ([]domain.Company, error) {
	query := `SELECT` + companyColumns + ` FROM companies WHERE status=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *company)
	}
	return result, rows.Err()
}

func (r *companyRepository) CountByStatus(ctx context.Context, status domain.CompanyStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM companies WHERE status=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
