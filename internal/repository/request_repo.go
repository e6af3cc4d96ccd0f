package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// RequestRepository persists professor course requests. Rows are keyed by
// the (professor_name, course_name) pair, mirroring the store's unique key.
type RequestRepository interface {
	WithTx(tx *gorm.DB) RequestRepository

	UpsertPending(ctx context.Context, professorName, courseName string) error
	ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.CourseRequest, error)
	ListByProfessor(ctx context.Context, professorName string) ([]models.CourseRequest, error)
	SetStatus(ctx context.Context, professorName, courseName string, status models.RequestStatus) (int64, error)
	CountByStatus(ctx context.Context, status models.RequestStatus) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository instantiates a GORM-backed repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) WithTx(tx *gorm.DB) RequestRepository {
	return &requestRepository{db: tx}
}

// UpsertPending inserts the pair as pending, or resets a previously resolved
// pair back to pending. Only the status is touched on conflict; requested_at
// keeps the time of the first request.
func (r *requestRepository) UpsertPending(ctx context.Context, professorName, courseName string) error {
	request := models.CourseRequest{
		ProfessorName: professorName,
		CourseName:    courseName,
		Status:        models.RequestPending,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "professor_name"}, {Name: "course_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.RequestPending}),
		}).
		Create(&request).Error
}

func (r *requestRepository) ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.CourseRequest, error) {
	var requests []models.CourseRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ListByProfessor(ctx context.Context, professorName string) ([]models.CourseRequest, error) {
	var requests []models.CourseRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(professor_name) = ?", strings.ToLower(professorName)).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) SetStatus(ctx context.Context, professorName, courseName string, status models.RequestStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.CourseRequest{}).
		Where("professor_name = ? AND course_name = ?", professorName, courseName).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *requestRepository) CountByStatus(ctx context.Context, status models.RequestStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CourseRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
