package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// GradeRepository persists the single grade value per course/student pair.
type GradeRepository interface {
	WithTx(tx *gorm.DB) GradeRepository

	Upsert(ctx context.Context, courseID, studentID uint, grade string) error
	Get(ctx context.Context, courseID, studentID uint) (models.Grade, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates a GORM-backed repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) WithTx(tx *gorm.DB) GradeRepository {
	return &gradeRepository{db: tx}
}

// Upsert writes the grade, replacing any existing value for the pair.
func (r *gradeRepository) Upsert(ctx context.Context, courseID, studentID uint, grade string) error {
	row := models.Grade{CourseID: courseID, StudentID: studentID, Grade: grade}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"grade": grade}),
		}).
		Create(&row).Error
}

func (r *gradeRepository) Get(ctx context.Context, courseID, studentID uint) (models.Grade, error) {
	var row models.Grade
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		First(&row).Error
	return row, err
}
