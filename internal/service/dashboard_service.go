package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

const dashboardCacheKey = "dashboard:admin"

// DashboardService aggregates the counters shown on the admin panel.
type DashboardService interface {
	GetDashboard(ctx context.Context) (dto.AdminDashboardResponse, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	courses  repository.CourseRepository
	users    repository.UserRepository
	requests repository.RequestRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator. The cache client may
// be nil, in which case every read goes to the store.
func NewDashboardService(courses repository.CourseRepository, users repository.UserRepository, requests repository.RequestRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		courses:  courses,
		users:    users,
		requests: requests,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.AdminDashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var response dto.AdminDashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	response, err := s.buildResponse(ctx)
	if err != nil {
		return dto.AdminDashboardResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

// Invalidate drops the cached snapshot after a mutation so admins see fresh
// counters on the next read.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}

func (s *dashboardService) buildResponse(ctx context.Context) (dto.AdminDashboardResponse, error) {
	var response dto.AdminDashboardResponse
	var err error

	if response.Courses, err = s.courses.Count(ctx); err != nil {
		return dto.AdminDashboardResponse{}, err
	}
	if response.Students, err = s.users.CountByRole(ctx, models.RoleStudent); err != nil {
		return dto.AdminDashboardResponse{}, err
	}
	if response.ApprovedProfessors, err = s.users.CountProfessorsByStatus(ctx, models.ProfessorApproved); err != nil {
		return dto.AdminDashboardResponse{}, err
	}
	if response.WaitingProfessors, err = s.users.CountProfessorsByStatus(ctx, models.ProfessorWaiting); err != nil {
		return dto.AdminDashboardResponse{}, err
	}
	if response.PendingRequests, err = s.requests.CountByStatus(ctx, models.RequestPending); err != nil {
		return dto.AdminDashboardResponse{}, err
	}

	return response, nil
}
