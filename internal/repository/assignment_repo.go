package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// AssignmentRepository persists course/professor assignments.
type AssignmentRepository interface {
	WithTx(tx *gorm.DB) AssignmentRepository

	Upsert(ctx context.Context, courseID, professorID uint) error
	ListActiveCourses(ctx context.Context, professorID uint) ([]string, error)
	Get(ctx context.Context, courseID, professorID uint) (models.CourseProfessor, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) WithTx(tx *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: tx}
}

// Upsert writes the pair as active; a conflicting pair is forced back to
// active rather than rejected, so re-assignment is idempotent.
func (r *assignmentRepository) Upsert(ctx context.Context, courseID, professorID uint) error {
	assignment := models.CourseProfessor{
		CourseID:    courseID,
		ProfessorID: professorID,
		Status:      models.AssignmentActive,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "professor_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.AssignmentActive}),
		}).
		Create(&assignment).Error
}

func (r *assignmentRepository) ListActiveCourses(ctx context.Context, professorID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.CourseProfessor{}).
		Select("course.course_name").
		Joins("JOIN course ON course.course_id = course_professor.course_id").
		Where("course_professor.professor_id = ? AND course_professor.status = ?", professorID, models.AssignmentActive).
		Scan(&names).Error
	return names, err
}

func (r *assignmentRepository) Get(ctx context.Context, courseID, professorID uint) (models.CourseProfessor, error) {
	var assignment models.CourseProfessor
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND professor_id = ?", courseID, professorID).
		First(&assignment).Error
	return assignment, err
}
