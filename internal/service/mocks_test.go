package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

type memCompanyRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]*domain.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{nextID: 1, companies: make(map[int64]*domain.Company)}
}

func (m *memCompanyRepo) seed(company *domain.Company) *domain.Company {
	m.mu.Lock()
	defer m.mu.Unlock()
	if company.ID == 0 {
		company.ID = m.nextID
		m.nextID++
	}
	m.companies[company.ID] = company
	return company
}

func (m *memCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	m.seed(company)
	return nil
}

func (m *memCompanyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	company, ok := m.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *company
	return &copied, nil
}

func (m *memCompanyRepo) GetByEmail(_ context.Context, email string) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, company := range m.companies {
		if company.Email == email {
			copied := *company
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memCompanyRepo) UpdateProfile(_ context.Context, id int64, profile domain.CompanyProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	company, ok := m.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	company.CompanyName = profile.CompanyName
	company.ContactPerson = profile.ContactPerson
	company.Industry = profile.Industry
	company.Website = profile.Website
	return nil
}

func (m *memCompanyRepo) UpdateStatus(_ context.Context, id int64, status domain.CompanyStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	company, ok := m.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	company.Status = status
	return nil
}

func (m *memCompanyRepo) TouchLastLogin(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if company, ok := m.companies[id]; ok {
		now := time.Now()
		company.LastLoginAt = &now
	}
	return nil
}

func (m *memCompanyRepo) ListByStatus(_ context.Context, status domain.CompanyStatus) ([]domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Company
	for _, company := range m.companies {
		if company.Status == status {
			result = append(result, *company)
		}
	}
	return result, nil
}

func (m *memCompanyRepo) CountByStatus(_ context.Context, status domain.CompanyStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, company := range m.companies {
		if company.Status == status {
			count++
		}
	}
	return count, nil
}

type memStudentRepo struct {
	mu       sync.Mutex
	students map[int64]*domain.Student
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{students: make(map[int64]*domain.Student)}
}

func (m *memStudentRepo) seed(student *domain.Student) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students[student.ID] = student
}

func (m *memStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	student, ok := m.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *student
	return &copied, nil
}

func (m *memStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, student := range m.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStudentRepo) ListByYearBranch(_ context.Context, year int, branches ...string) ([]domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	branchSet := make(map[string]struct{}, len(branches))
	for _, branch := range branches {
		branchSet[branch] = struct{}{}
	}
	var result []domain.Student
	for _, student := range m.students {
		if student.Year != year {
			continue
		}
		if _, ok := branchSet[student.Branch]; ok {
			result = append(result, *student)
		}
	}
	return result, nil
}

func (m *memStudentRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.students)), nil
}

type memFacultyRepo struct {
	mu      sync.Mutex
	faculty map[int64]*domain.Faculty
}

func newMemFacultyRepo() *memFacultyRepo {
	return &memFacultyRepo{faculty: make(map[int64]*domain.Faculty)}
}

func (m *memFacultyRepo) seed(member *domain.Faculty) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faculty[member.ID] = member
}

func (m *memFacultyRepo) GetByID(_ context.Context, id int64) (*domain.Faculty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.faculty[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *member
	return &copied, nil
}

func (m *memFacultyRepo) GetByEmail(_ context.Context, email string) (*domain.Faculty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range m.faculty {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memJobRepo struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*domain.JobPosting
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{nextID: 1, jobs: make(map[int64]*domain.JobPosting)}
}

func (m *memJobRepo) seed(job *domain.JobPosting) *domain.JobPosting {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job.ID == 0 {
		job.ID = m.nextID
		m.nextID++
	}
	m.jobs[job.ID] = job
	return job
}

func (m *memJobRepo) Create(_ context.Context, job *domain.JobPosting) error {
	m.seed(job)
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id int64) (*domain.JobPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (m *memJobRepo) List(_ context.Context) ([]domain.JobPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.JobPosting
	for _, job := range m.jobs {
		result = append(result, *job)
	}
	return result, nil
}

func (m *memJobRepo) ListByCompany(_ context.Context, companyID int64, _ int) ([]repository.JobWithApplications, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []repository.JobWithApplications
	for _, job := range m.jobs {
		if job.CompanyID == companyID {
			result = append(result, repository.JobWithApplications{JobPosting: *job})
		}
	}
	return result, nil
}

func (m *memJobRepo) UpdateStatus(_ context.Context, id int64, status domain.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return pgx.ErrNoRows
	}
	job.Status = status
	return nil
}

func (m *memJobRepo) CountByCompany(_ context.Context, companyID int64, status domain.JobStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, job := range m.jobs {
		if job.CompanyID == companyID && job.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memJobRepo) CountByStatus(_ context.Context, status domain.JobStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, job := range m.jobs {
		if job.Status == status {
			count++
		}
	}
	return count, nil
}

type memApplicationRepo struct {
	mu           sync.Mutex
	nextID       int64
	applications map[int64]*domain.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{nextID: 1, applications: make(map[int64]*domain.Application)}
}

func (m *memApplicationRepo) seed(app *domain.Application) *domain.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.ID == 0 {
		app.ID = m.nextID
		m.nextID++
	}
	m.applications[app.ID] = app
	return app
}

func (m *memApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	m.seed(app)
	return nil
}

func (m *memApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *app
	return &copied, nil
}

func (m *memApplicationRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Application
	for _, app := range m.applications {
		if app.JobID == jobID {
			result = append(result, *app)
		}
	}
	return result, nil
}

func (m *memApplicationRepo) ListByCompany(_ context.Context, _ int64, _ repository.ApplicationFilter) ([]repository.ApplicationDetail, error) {
	return nil, nil
}

func (m *memApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.applications[id]
	if !ok {
		return pgx.ErrNoRows
	}
	app.Status = status
	return nil
}

func (m *memApplicationRepo) CountByCompany(_ context.Context, _ int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.applications)), nil
}

func (m *memApplicationRepo) CountByCompanyAndStatus(_ context.Context, _ int64, status domain.ApplicationStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, app := range m.applications {
		if app.Status == status {
			count++
		}
	}
	return count, nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	nextID        int64
	notifications []domain.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{nextID: 1}
}

func (m *memNotificationRepo) CreateBatch(_ context.Context, notifications []domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, notification := range notifications {
		notification.ID = m.nextID
		m.nextID++
		m.notifications = append(m.notifications, notification)
	}
	return nil
}

func (m *memNotificationRepo) ListByStudent(_ context.Context, studentID int64) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Notification
	for _, notification := range m.notifications {
		if notification.StudentID == studentID {
			result = append(result, notification)
		}
	}
	return result, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, event)
	return nil
}

func (r *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (r *recordingDispatcher) events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event{}, r.published...)
}

var (
	_ repository.CompanyRepository      = (*memCompanyRepo)(nil)
	_ repository.StudentRepository      = (*memStudentRepo)(nil)
	_ repository.FacultyRepository      = (*memFacultyRepo)(nil)
	_ repository.JobRepository          = (*memJobRepo)(nil)
	_ repository.ApplicationRepository  = (*memApplicationRepo)(nil)
	_ repository.NotificationRepository = (*memNotificationRepo)(nil)
	_ events.Dispatcher                 = (*recordingDispatcher)(nil)
)
