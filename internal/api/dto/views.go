package dto

import (
	"time"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

// JobView is the wire shape for job postings.
type JobView struct {
	ID                int64      `json:"id"`
	CompanyID         int64      `json:"companyId"`
	JobTitle          string     `json:"jobTitle"`
	Department        string     `json:"department"`
	Description       string     `json:"description"`
	Location          *string    `json:"location"`
	JobType           *string    `json:"jobType"`
	SalaryRange       *string    `json:"salaryRange"`
	Status            string     `json:"status"`
	ApplicationsCount *int64     `json:"applicationsCount,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// NewJobView maps a posting.
func NewJobView(job domain.JobPosting) JobView {
	return JobView{
		ID:          job.ID,
		CompanyID:   job.CompanyID,
		JobTitle:    job.JobTitle,
		Department:  job.Department,
		Description: job.Description,
		Location:    job.Location,
		JobType:     job.JobType,
		SalaryRange: job.SalaryRange,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

// NewJobViews maps a slice of postings.
func NewJobViews(jobs []domain.JobPosting) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, NewJobView(job))
	}
	return views
}

// NewCompanyJobViews maps postings with application counts.
func NewCompanyJobViews(jobs []repository.JobWithApplications) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		view := NewJobView(job.JobPosting)
		count := job.ApplicationsCount
		view.ApplicationsCount = &count
		views = append(views, view)
	}
	return views
}

// StudentView is the wire shape for students.
type StudentView struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone"`
	ResumeURL *string `json:"resumeUrl"`
	Year      int     `json:"year"`
	Branch    string  `json:"branch"`
}

// NewStudentViews maps a slice of students.
func NewStudentViews(students []domain.Student) []StudentView {
	views := make([]StudentView, 0, len(students))
	for _, student := range students {
		views = append(views, StudentView{
			ID:        student.ID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			Phone:     student.Phone,
			ResumeURL: student.ResumeURL,
			Year:      student.Year,
			Branch:    student.Branch,
		})
	}
	return views
}

// ApplicationView is the wire shape for applications.
type ApplicationView struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	StudentID int64     `json:"studentId"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

// NewApplicationViews maps a slice of applications.
func NewApplicationViews(apps []domain.Application) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, ApplicationView{
			ID:        app.ID,
			JobID:     app.JobID,
			StudentID: app.StudentID,
			Status:    string(app.Status),
			AppliedAt: app.AppliedAt,
		})
	}
	return views
}

// ApplicationDetailView joins application, job, and student fields.
type ApplicationDetailView struct {
	ApplicationView
	JobTitle     string  `json:"jobTitle"`
	Department   string  `json:"department"`
	StudentName  string  `json:"studentName"`
	StudentEmail string  `json:"studentEmail"`
	StudentPhone *string `json:"studentPhone"`
	ResumeURL    *string `json:"resumeUrl"`
}

// NewApplicationDetailViews maps company review rows.
func NewApplicationDetailViews(details []repository.ApplicationDetail) []ApplicationDetailView {
	views := make([]ApplicationDetailView, 0, len(details))
	for _, detail := range details {
		views = append(views, ApplicationDetailView{
			ApplicationView: ApplicationView{
				ID:        detail.ID,
				JobID:     detail.JobID,
				StudentID: detail.StudentID,
				Status:    string(detail.Status),
				AppliedAt: detail.AppliedAt,
			},
			JobTitle:     detail.JobTitle,
			Department:   detail.Department,
			StudentName:  detail.FirstName + " " + detail.LastName,
			StudentEmail: detail.StudentEmail,
			StudentPhone: detail.StudentPhone,
			ResumeURL:    detail.ResumeURL,
		})
	}
	return views
}

// NotificationView is the wire shape for notifications.
type NotificationView struct {
	ID         int64     `json:"id"`
	JobID      *int64    `json:"jobId"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	NotifiedAt time.Time `json:"notifiedAt"`
}

// NewNotificationViews maps a slice of notifications.
func NewNotificationViews(notifications []domain.Notification) []NotificationView {
	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, NotificationView{
			ID:         n.ID,
			JobID:      n.JobID,
			Message:    n.Message,
			Read:       n.Read,
			NotifiedAt: n.NotifiedAt,
		})
	}
	return views
}

// CompanyView is the wire shape for company accounts.
type CompanyView struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	CompanyName   string     `json:"companyName"`
	ContactPerson string     `json:"contactPerson"`
	Industry      *string    `json:"industry"`
	Website       *string    `json:"website"`
	Location      *string    `json:"location"`
	CompanySize   *string    `json:"companySize"`
	Description   *string    `json:"description"`
	ContactEmail  *string    `json:"contactEmail"`
	ContactPhone  *string    `json:"contactPhone"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewCompanyView maps a company account.
func NewCompanyView(company domain.Company) CompanyView {
	return CompanyView{
		ID:            company.ID,
		Email:         company.Email,
		CompanyName:   company.CompanyName,
		ContactPerson: company.ContactPerson,
		Industry:      company.Industry,
		Website:       company.Website,
		Location:      company.Location,
		CompanySize:   company.CompanySize,
		Description:   company.Description,
		ContactEmail:  company.ContactEmail,
		ContactPhone:  company.ContactPhone,
		Status:        string(company.Status),
		CreatedAt:     company.CreatedAt,
		UpdatedAt:     company.UpdatedAt,
	}
}

// NewCompanyViews maps a slice of company accounts.
func NewCompanyViews(companies []domain.Company) []CompanyView {
	views := make([]CompanyView, 0, len(companies))
	for _, company := range companies {
		views = append(views, NewCompanyView(company))
	}
	return views
}
