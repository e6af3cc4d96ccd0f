package dto

import "github.com/campusdesk/campusdesk-api/internal/models"

// RegisterRequest carries the fields collected by the registration form.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,max=255"`
	Role     string `json:"role" validate:"required"`
	Mobile   string `json:"mobile" validate:"omitempty,max=20"`
}

// LoginRequest carries login credentials scoped to a role panel.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UserSummary is the typed row returned for account reads.
type UserSummary struct {
	UserID uint        `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Mobile string      `json:"mobile,omitempty"`
}

// NewUserSummary maps a user row onto its response shape.
func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		UserID: user.UserID,
		Name:   user.UserName,
		Email:  user.Email,
		Role:   user.Role,
		Mobile: user.MobileNo,
	}
}

// LoginResponse bundles the issued bearer token with the account summary.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ProfessorStatusRequest is the admin approve/reject decision payload.
type ProfessorStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
