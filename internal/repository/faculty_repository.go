package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// FacultyRepository handles persistence for placement-cell faculty.
type FacultyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*domain.Faculty, error)
}

type facultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository instantiates the repository.
func NewFacultyRepository(pool *pgxpool.Pool) FacultyRepository {
	return &facultyRepository{pool: pool}
}

const facultyColumns = `
        id, email, password_hash, first_name, last_name, department,
        created_at, updated_at`

func scanFaculty(row pgx.Row) (*domain.Faculty, error) {
	var faculty domain.Faculty
	if err := row.Scan(
		&faculty.ID,
		&faculty.Email,
		&faculty.PasswordHash,
		&faculty.FirstName,
		&faculty.LastName,
		&faculty.Department,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id int64) (*domain.Faculty, error) {
	query := `SELECT` + facultyColumns + ` FROM faculty WHERE id=$1`
	return scanFaculty(r.pool.QueryRow(ctx, query, id))
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*domain.Faculty, error) {
	query := `SELECT` + facultyColumns + ` FROM faculty WHERE email=$1`
	return scanFaculty(r.pool.QueryRow(ctx, query, email))
}
