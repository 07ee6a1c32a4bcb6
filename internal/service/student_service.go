package service

import (
	"context"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
	apperrors "github.com/CSAbhinav3/IWP-CIA3/pkg/util"
)

// StudentService lists placement-eligible students for the cell.
type StudentService struct {
	students repository.StudentRepository
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// ListByYearBranch filters students; both parameters are required.
func (s *StudentService) ListByYearBranch(ctx context.Context, year int, branch string) ([]domain.Student, error) {
	if year == 0 || branch == "" {
		return nil, apperrors.NewValidationError("Year and branch are required")
	}
	return s.students.ListByYearBranch(ctx, year, branch)
}
