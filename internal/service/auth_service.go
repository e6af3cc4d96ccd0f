package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

var (
	// ErrUserNotFound indicates no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the normalized email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrRoleMismatch indicates the account exists under a different role.
	ErrRoleMismatch = errors.New("account registered under a different role")
	// ErrWrongCredential indicates the password comparison failed.
	ErrWrongCredential = errors.New("wrong password")
	// ErrInvalidRole indicates an unknown role value.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidName indicates a person name with characters outside letters and spaces.
	ErrInvalidName = errors.New("name may contain letters and spaces only")
	// ErrInvalidMobile indicates a mobile number that is not exactly 10 digits.
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")
	// ErrInvalidStatus indicates an unknown professor approval status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrProfessorNotFound indicates no professor profile exists for the id.
	ErrProfessorNotFound = errors.New("professor not found")
)

// NotApprovedError rejects professor logins whose profile has not been
// approved yet; it carries the current status so the caller can display it.
type NotApprovedError struct {
	Status models.ProfessorStatus
}

func (e *NotApprovedError) Error() string {
	return fmt.Sprintf("professor account not approved (status: %s)", e.Status)
}

// AuthService implements registration, login and professor approval.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserSummary, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	SetProfessorStatus(ctx context.Context, professorID uint, status string) error
	ListByRole(ctx context.Context, role string, onlyApprovedProfessors bool) ([]dto.UserSummary, error)
	ListProfessorAccounts(ctx context.Context, status string) ([]repository.ProfessorAccount, error)
}

type authService struct {
	users     repository.UserRepository
	validator *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs the auth service.
func NewAuthService(users repository.UserRepository, validator *validator.Validate, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validator,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.UserSummary{}, err
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return dto.UserSummary{}, ErrInvalidRole
	}
	if !validPersonName(req.Name) {
		return dto.UserSummary{}, ErrInvalidName
	}
	if req.Mobile != "" && !validMobile(req.Mobile) {
		return dto.UserSummary{}, ErrInvalidMobile
	}

	email := normalizeEmail(req.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return dto.UserSummary{}, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserSummary{}, err
	}

	user := models.User{
		UserName: normalizeName(req.Name),
		Password: req.Password, // stored verbatim; placeholder credential scheme, no hashing
		Email:    email,
		Role:     role,
		MobileNo: req.Mobile,
	}
	if err := s.users.CreateWithProfile(ctx, &user); err != nil {
		return dto.UserSummary{}, err
	}

	s.logger.Info().Uint("user_id", user.UserID).Str("role", string(role)).Msg("user registered")
	return dto.NewUserSummary(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LoginResponse{}, err
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return dto.LoginResponse{}, ErrInvalidRole
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrUserNotFound
		}
		return dto.LoginResponse{}, err
	}
	if user.Role != role {
		return dto.LoginResponse{}, ErrRoleMismatch
	}
	// Exact-match comparison against the stored raw credential. The schema
	// keeps passwords in plain text; swap this comparison site for a salted
	// hash check if that ever changes.
	if user.Password != req.Password {
		return dto.LoginResponse{}, ErrWrongCredential
	}

	if role == models.RoleProfessor {
		status, err := s.users.GetProfessorStatus(ctx, user.UserID)
		if err != nil {
			return dto.LoginResponse{}, err
		}
		if status != models.ProfessorApproved {
			return dto.LoginResponse{}, &NotApprovedError{Status: status}
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.UserID).Str("role", string(role)).Msg("user logged in")
	return dto.LoginResponse{Token: token, User: dto.NewUserSummary(user)}, nil
}

func (s *authService) issueToken(user models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  user.UserID,
		"role": string(user.Role),
		"name": user.UserName,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}

func (s *authService) SetProfessorStatus(ctx context.Context, professorID uint, status string) error {
	target := models.ProfessorStatus(status)
	if !target.Valid() {
		return ErrInvalidStatus
	}

	affected, err := s.users.SetProfessorStatus(ctx, professorID, target)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfessorNotFound
	}

	s.logger.Info().Uint("professor_id", professorID).Str("status", status).Msg("professor status updated")
	return nil
}

func (s *authService) ListByRole(ctx context.Context, role string, onlyApprovedProfessors bool) ([]dto.UserSummary, error) {
	r := models.Role(role)
	if !r.Valid() {
		return nil, ErrInvalidRole
	}

	users, err := s.users.ListByRole(ctx, r, onlyApprovedProfessors)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, dto.NewUserSummary(user))
	}
	return summaries, nil
}

func (s *authService) ListProfessorAccounts(ctx context.Context, status string) ([]repository.ProfessorAccount, error) {
	target := models.ProfessorStatus(status)
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.users.ListProfessorsByStatus(ctx, target)
}
