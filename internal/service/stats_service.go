package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 30 * time.Second
)

// StatsOverview is the placement-cell dashboard snapshot.
type StatsOverview struct {
	TotalStudents    int64 `json:"totalStudents"`
	ActiveCompanies  int64 `json:"activeCompanies"`
	PendingApprovals int64 `json:"pendingApprovals"`
}

// CompanyDashboard summarizes one company's activity.
type CompanyDashboard struct {
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalHired        int64 `json:"totalHired"`
}

// StatsService computes portal counts. The overview is cached in Redis
// for a short window; account data is never cached here.
type StatsService struct {
	students     repository.StudentRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	cache        *redis.Client
	logger       *zap.Logger
}

// NewStatsService builds the service. cache may be nil.
func NewStatsService(
	students repository.StudentRepository,
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	cache *redis.Client,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		students:     students,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		logger:       logger,
	}
}

// Overview returns portal-wide counts, served from the snapshot cache
// when fresh.
func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var overview StatsOverview
			if err := json.Unmarshal(cached, &overview); err == nil {
				return &overview, nil
			}
		}
	}

	totalStudents, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeCompanies, err := s.companies.CountByStatus(ctx, domain.CompanyStatusApproved)
	if err != nil {
		return nil, err
	}
	pendingApprovals, err := s.jobs.CountByStatus(ctx, domain.JobStatusPending)
	if err != nil {
		return nil, err
	}

	overview := &StatsOverview{
		TotalStudents:    totalStudents,
		ActiveCompanies:  activeCompanies,
		PendingApprovals: pendingApprovals,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(overview); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, encoded, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return overview, nil
}

// CompanyOverview returns the caller's dashboard counts.
func (s *StatsService) CompanyOverview(ctx context.Context, companyID int64) (*CompanyDashboard, error) {
	totalJobs, err := s.jobs.CountByCompany(ctx, companyID, domain.JobStatusApproved)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applications.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	totalHired, err := s.applications.CountByCompanyAndStatus(ctx, companyID, domain.ApplicationStatusHired)
	if err != nil {
		return nil, err
	}

	return &CompanyDashboard{
		TotalJobs:         totalJobs,
		TotalApplications: totalApplications,
		TotalHired:        totalHired,
	}, nil
}
