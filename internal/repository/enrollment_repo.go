package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// EnrollmentRepository persists course/student enrollments.
type EnrollmentRepository interface {
	WithTx(tx *gorm.DB) EnrollmentRepository

	Upsert(ctx context.Context, courseID, studentID uint) error
	GetStatus(ctx context.Context, courseID, studentID uint) (models.EnrollmentStatus, error)
	SetStatus(ctx context.Context, courseID, studentID uint, status models.EnrollmentStatus) (int64, error)
	ListActiveCourses(ctx context.Context, studentID uint) ([]string, error)
	ListActiveStudents(ctx context.Context, courseID uint) ([]string, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) WithTx(tx *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: tx}
}

// Upsert writes the pair as enrolled; re-enrolling an existing pair resets
// its status to enrolled regardless of a previous completed/dropped state.
func (r *enrollmentRepository) Upsert(ctx context.Context, courseID, studentID uint) error {
	enrollment := models.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
		Status:    models.EnrollmentEnrolled,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.EnrollmentEnrolled}),
		}).
		Create(&enrollment).Error
}

func (r *enrollmentRepository) GetStatus(ctx context.Context, courseID, studentID uint) (models.EnrollmentStatus, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		First(&enrollment).Error
	if err != nil {
		return "", err
	}
	return enrollment.Status, nil
}

func (r *enrollmentRepository) SetStatus(ctx context.Context, courseID, studentID uint, status models.EnrollmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *enrollmentRepository) ListActiveCourses(ctx context.Context, studentID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Select("course.course_name").
		Joins("JOIN course ON course.course_id = enrollment.course_id").
		Where("enrollment.student_id = ? AND enrollment.status = ?", studentID, models.EnrollmentEnrolled).
		Scan(&names).Error
	return names, err
}

func (r *enrollmentRepository) ListActiveStudents(ctx context.Context, courseID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Select("users.user_name").
		Joins("JOIN users ON users.user_id = enrollment.student_id").
		Where("enrollment.course_id = ? AND enrollment.status = ?", courseID, models.EnrollmentEnrolled).
		Scan(&names).Error
	return names, err
}
