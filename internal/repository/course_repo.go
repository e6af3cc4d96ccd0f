package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// CourseRepository provides access to the course catalog.
type CourseRepository interface {
	WithTx(tx *gorm.DB) CourseRepository

	Create(ctx context.Context, course *models.Course) error
	GetByName(ctx context.Context, name string) (models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	DeleteCascade(ctx context.Context, course models.Course) error
	Count(ctx context.Context) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository constructs a course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) WithTx(tx *gorm.DB) CourseRepository {
	return &courseRepository{db: tx}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// GetByName looks a course up by normalized name, case-insensitively.
func (r *courseRepository) GetByName(ctx context.Context, name string) (models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Where("LOWER(course_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&course).Error
	return course, err
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Find(&courses).Error
	return courses, err
}

// DeleteCascade removes a course together with every assignment, enrollment,
// grade and request row referencing it, in one transaction. Requests
// reference the course by name, so a store-level foreign key could not cover
// them and the cascade is spelled out here.
func (r *courseRepository) DeleteCascade(ctx context.Context, course models.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.CourseID).Delete(&models.CourseProfessor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.CourseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.CourseID).Delete(&models.Grade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("LOWER(course_name) = ?", strings.ToLower(course.CourseName)).Delete(&models.CourseRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, course.CourseID).Error
	})
}

func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error
	return count, err
}
