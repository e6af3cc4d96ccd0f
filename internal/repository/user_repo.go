package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// ProfessorAccount is a professor user joined with its approval status, as
// shown in the admin approval queue.
type ProfessorAccount struct {
	UserID   uint                   `json:"user_id"`
	UserName string                 `json:"user_name"`
	Email    string                 `json:"email"`
	Status   models.ProfessorStatus `json:"status"`
}

// UserRepository provides access to accounts and their role profile rows.
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository

	CreateWithProfile(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	GetByNameAndRole(ctx context.Context, name string, role models.Role) (models.User, error)
	ListByRole(ctx context.Context, role models.Role, onlyApprovedProfessors bool) ([]models.User, error)
	ListProfessorsByStatus(ctx context.Context, status models.ProfessorStatus) ([]ProfessorAccount, error)
	GetProfessorStatus(ctx context.Context, id uint) (models.ProfessorStatus, error)
	SetProfessorStatus(ctx context.Context, id uint, status models.ProfessorStatus) (int64, error)
	EnsureProfessorProfile(ctx context.Context, userID uint) error
	EnsureStudentProfile(ctx context.Context, userID uint) error
	EnsureProfessorByName(ctx context.Context, name string) (uint, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	CountProfessorsByStatus(ctx context.Context, status models.ProfessorStatus) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

// CreateWithProfile inserts the user row and its role profile row together.
// Professors start in the waiting state until an admin decides.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch user.Role {
		case models.RoleAdmin:
			return tx.Create(&models.Admin{AdminID: user.UserID}).Error
		case models.RoleProfessor:
			return tx.Create(&models.Professor{ProfessorID: user.UserID, Status: models.ProfessorWaiting}).Error
		case models.RoleStudent:
			return tx.Create(&models.Student{StudentID: user.UserID}).Error
		}
		return nil
	})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	return user, err
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

func (r *userRepository) GetByNameAndRole(ctx context.Context, name string, role models.Role) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(user_name) = ? AND role = ?", strings.ToLower(name), role).
		First(&user).Error
	return user, err
}

func (r *userRepository) ListByRole(ctx context.Context, role models.Role, onlyApprovedProfessors bool) ([]models.User, error) {
	var users []models.User
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("users.role = ?", role)
	if role == models.RoleProfessor && onlyApprovedProfessors {
		query = query.
			Joins("JOIN professor ON professor.professor_id = users.user_id").
			Where("professor.status = ?", models.ProfessorApproved)
	}
	err := query.Order("users.user_name").Find(&users).Error
	return users, err
}

func (r *userRepository) ListProfessorsByStatus(ctx context.Context, status models.ProfessorStatus) ([]ProfessorAccount, error) {
	var accounts []ProfessorAccount
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.user_id, users.user_name, users.email, professor.status").
		Joins("JOIN professor ON professor.professor_id = users.user_id").
		Where("professor.status = ?", status).
		Order("users.user_name").
		Scan(&accounts).Error
	return accounts, err
}

func (r *userRepository) GetProfessorStatus(ctx context.Context, id uint) (models.ProfessorStatus, error) {
	var profile models.Professor
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return "", err
	}
	return profile.Status, nil
}

func (r *userRepository) SetProfessorStatus(ctx context.Context, id uint, status models.ProfessorStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Professor{}).
		Where("professor_id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// EnsureProfessorProfile inserts the professor profile row when absent. This
// is a defensive upsert, not a validation gate: assignment must not fail just
// because the profile row was never materialised.
func (r *userRepository) EnsureProfessorProfile(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Professor{ProfessorID: userID, Status: models.ProfessorWaiting}).Error
}

func (r *userRepository) EnsureStudentProfile(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Student{StudentID: userID}).Error
}

// EnsureProfessorByName resolves a professor user id from a display name,
// creating a placeholder account and profile when none exists. Request
// resolution is keyed by name, so this is its lookup path.
func (r *userRepository) EnsureProfessorByName(ctx context.Context, name string) (uint, error) {
	user, err := r.GetByNameAndRole(ctx, name, models.RoleProfessor)
	if err == nil {
		if err := r.EnsureProfessorProfile(ctx, user.UserID); err != nil {
			return 0, err
		}
		return user.UserID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	placeholder := models.User{
		UserName: name,
		Password: "pass",
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@demo.com",
		Role:     models.RoleProfessor,
		MobileNo: "NA",
	}
	if err := r.CreateWithProfile(ctx, &placeholder); err != nil {
		return 0, err
	}
	return placeholder.UserID, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) CountProfessorsByStatus(ctx context.Context, status models.ProfessorStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Professor{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
