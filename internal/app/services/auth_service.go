// Package services implements the operation handlers: each method runs the
// validate, resolve, authorize, mutate, persist sequence for one API
// operation.
package services

import (
	"strconv"

	"github.com/rs/zerolog"

	appauth "github.com/krupanka/studentms/internal/app/auth"
	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/store"
	pkgauth "github.com/krupanka/studentms/internal/pkg/auth"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// AuthService handles the four role logins.
type AuthService struct {
	store  *store.Store
	authz  *appauth.AuthorizationService
	tokens *pkgauth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, authz *appauth.AuthorizationService, tokens *pkgauth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{store: st, authz: authz, tokens: tokens, logger: logger}
}

// AdminLogin verifies the shared admin secret and mints a session token.
func (s *AuthService) AdminLogin(password string) (string, error) {
	if err := s.authz.VerifyAdmin(password); err != nil {
		return "", err
	}
	return s.token(appauth.RoleAdmin, appauth.RoleAdmin)
}

// PrincipalLogin verifies the shared principal secret and mints a session token.
func (s *AuthService) PrincipalLogin(password string) (string, error) {
	if err := s.authz.VerifyPrincipal(password); err != nil {
		return "", err
	}
	return s.token(appauth.RolePrincipal, appauth.RolePrincipal)
}

// TeacherLogin authenticates a teacher by email and password, gated on the
// approval state.
func (s *AuthService) TeacherLogin(email, password string) (models.Teacher, string, error) {
	teacher, err := s.authz.TeacherLogin(email, password)
	if err != nil {
		return models.Teacher{}, "", err
	}

	token, err := s.token(appauth.RoleTeacher, teacher.Email)
	if err != nil {
		return models.Teacher{}, "", err
	}

	s.logger.Info().Int("teacherId", teacher.TeacherID).Str("name", teacher.Name).Msg("Teacher login")
	return teacher, token, nil
}

// StudentLogin authenticates a student by numeric ID and password.
func (s *AuthService) StudentLogin(studentID int, password string) (models.Student, string, error) {
	student, ok := s.store.StudentByID(studentID)
	if !ok || student.Password != password {
		return models.Student{}, "", apperrors.ErrInvalidStudentLogin
	}

	token, err := s.token(appauth.RoleStudent, strconv.Itoa(student.StudentID))
	if err != nil {
		return models.Student{}, "", err
	}

	s.logger.Info().Int("studentId", student.StudentID).Msg("Student login")
	return student, token, nil
}

// token mints a session token; a minting failure is logged but never fails
// the login, since authorization stays credential-based.
func (s *AuthService) token(role, subject string) (string, error) {
	token, err := s.tokens.GenerateToken(role, subject)
	if err != nil {
		s.logger.Error().Err(err).Str("role", role).Msg("Failed to mint session token")
		return "", nil
	}
	return token, nil
}
