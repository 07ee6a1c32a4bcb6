package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// StudentRepository handles persistence for students.
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
	ListByYearBranch(ctx context.Context, year int, branches ...string) ([]domain.Student, error)
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository instantiates the repository.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

const studentColumns = `
        id, email, password_hash, first_name, last_name, phone, resume_url,
        year, branch, created_at, updated_at`

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var student domain.Student
	if err := row.Scan(
		&student.ID,
		&student.Email,
		&student.PasswordHash,
		&student.FirstName,
		&student.LastName,
		&student.Phone,
		&student.ResumeURL,
		&student.Year,
		&student.Branch,
		&student.CreatedAt,
		&student.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT` + studentColumns + ` FROM students WHERE id=$1`
	return scanStudent(r.pool.QueryRow(ctx, query, id))
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT` + studentColumns + ` FROM students WHERE email=$1`
	return scanStudent(r.pool.QueryRow(ctx, query, email))
}

func (r *studentRepository) ListByYearBranch(ctx context.Context, year int, branches ...string) ([]domain.Student, error) {
	if len(branches) == 0 {
		return nil, nil
	}

	args := []any{year}
	placeholders := make([]string, 0, len(branches))
	for _, branch := range branches {
		args = append(args, branch)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := `SELECT` + studentColumns + ` FROM students WHERE year=$1 AND branch IN (` +
		strings.Join(placeholders, ",") + `) ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *student)
	}
	return result, rows.Err()
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
