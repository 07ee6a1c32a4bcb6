package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

// fakeCompanyRepo is an in-memory CompanyRepository. Lookups copy the
// stored row so callers always observe current store state.
type fakeCompanyRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]*domain.Company
	err       error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{nextID: 1, companies: make(map[int64]*domain.Company)}
}

func (f *fakeCompanyRepo) put(company *domain.Company) *domain.Company {
	f.mu.Lock()
	defer f.mu.Unlock()
	if company.ID == 0 {
		company.ID = f.nextID
		f.nextID++
	}
	f.companies[company.ID] = company
	return company
}

func (f *fakeCompanyRepo) setStatus(id int64, status domain.CompanyStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if company, ok := f.companies[id]; ok {
		company.Status = status
	}
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	if f.err != nil {
		return f.err
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	f.put(company)
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *company
	return &copied, nil
}

func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*domain.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, company := range f.companies {
		if company.Email == email {
			copied := *company
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) UpdateProfile(_ context.Context, id int64, profile domain.CompanyProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	company.CompanyName = profile.CompanyName
	company.ContactPerson = profile.ContactPerson
	return nil
}

func (f *fakeCompanyRepo) UpdateStatus(_ context.Context, id int64, status domain.CompanyStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	company.Status = status
	return nil
}

func (f *fakeCompanyRepo) TouchLastLogin(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if company, ok := f.companies[id]; ok {
		now := time.Now()
		company.LastLoginAt = &now
	}
	return nil
}

func (f *fakeCompanyRepo) ListByStatus(_ context.Context, status domain.CompanyStatus) ([]domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Company
	for _, company := range f.companies {
		if company.Status == status {
			result = append(result, *company)
		}
	}
	return result, nil
}

func (f *fakeCompanyRepo) CountByStatus(_ context.Context, status domain.CompanyStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, company := range f.companies {
		if company.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[int64]*domain.Student
	err      error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*domain.Student)}
}

func (f *fakeStudentRepo) put(student *domain.Student) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.students[student.ID] = student
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	student, ok := f.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, student := range f.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentRepo) ListByYearBranch(_ context.Context, year int, branches ...string) ([]domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	branchSet := make(map[string]struct{}, len(branches))
	for _, branch := range branches {
		branchSet[branch] = struct{}{}
	}
	var result []domain.Student
	for _, student := range f.students {
		if student.Year != year {
			continue
		}
		if _, ok := branchSet[student.Branch]; ok {
			result = append(result, *student)
		}
	}
	return result, nil
}

func (f *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.students)), nil
}

type fakeFacultyRepo struct {
	mu      sync.Mutex
	faculty map[int64]*domain.Faculty
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{faculty: make(map[int64]*domain.Faculty)}
}

func (f *fakeFacultyRepo) put(member *domain.Faculty) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faculty[member.ID] = member
}

func (f *fakeFacultyRepo) GetByID(_ context.Context, id int64) (*domain.Faculty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.faculty[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *member
	return &copied, nil
}

func (f *fakeFacultyRepo) GetByEmail(_ context.Context, email string) (*domain.Faculty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, member := range f.faculty {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

var (
	_ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
	_ repository.StudentRepository = (*fakeStudentRepo)(nil)
	_ repository.FacultyRepository = (*fakeFacultyRepo)(nil)
)
