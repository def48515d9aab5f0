// Package auth implements the role authorization rules: shared secrets for
// admin and principal, per-account credentials plus approval state and
// department matching for teachers.
package auth

import (
	"fmt"

	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/store"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// Roles accepted by the API.
const (
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// Credentials carries the loose credential fields a request may present.
// Which ones matter depends on the claimed role.
type Credentials struct {
	Password          string // teacher password on teacher-role requests
	Email             string // teacher email on teacher-role requests
	PrincipalPassword string
}

// Secrets holds the role-wide shared passwords, injected from config.
type Secrets struct {
	AdminPassword     string
	PrincipalPassword string
}

// AuthorizationService decides ALLOW or DENY for each operation. It is
// stateless apart from the injected secrets and the record store used to
// resolve teacher credentials.
type AuthorizationService struct {
	secrets Secrets
	store   *store.Store
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(secrets Secrets, st *store.Store) *AuthorizationService {
	return &AuthorizationService{secrets: secrets, store: st}
}

// VerifyAdmin checks the shared admin secret.
func (s *AuthorizationService) VerifyAdmin(password string) error {
	if password != s.secrets.AdminPassword {
		return apperrors.ErrInvalidAdminPassword
	}
	return nil
}

// VerifyPrincipal checks the shared principal secret.
func (s *AuthorizationService) VerifyPrincipal(password string) error {
	if password != s.secrets.PrincipalPassword {
		return apperrors.ErrInvalidPrincipalPassword
	}
	return nil
}

// TeacherLogin resolves a teacher by email and verifies password and
// approval state. Unknown email and wrong password are indistinguishable
// in the response, matching the login contract.
func (s *AuthorizationService) TeacherLogin(email, password string) (models.Teacher, error) {
	teacher, ok := s.store.TeacherByEmail(email)
	if !ok || teacher.Password != password {
		return models.Teacher{}, apperrors.ErrInvalidTeacherLogin
	}

	switch teacher.Approved {
	case models.ApprovalPending:
		return models.Teacher{}, apperrors.ErrTeacherNotApproved
	case models.ApprovalRejected:
		return models.Teacher{}, apperrors.ErrTeacherRejected
	}

	return teacher, nil
}

// AuthorizeStudentMutation decides whether the claimed role may mutate the
// target student. Rules in priority order: admin secret, principal secret,
// teacher credentials gated on approval and department match; anything
// else is an invalid role.
func (s *AuthorizationService) AuthorizeStudentMutation(role string, creds Credentials, target models.Student) error {
	switch role {
	case RoleAdmin:
		return s.VerifyAdmin(creds.Password)

	case RolePrincipal:
		return s.VerifyPrincipal(creds.PrincipalPassword)

	case RoleTeacher:
		teacher, ok := s.store.TeacherByEmail(creds.Email)
		if !ok {
			return apperrors.Wrap(apperrors.ErrUnknownTeacherEmail,
				fmt.Sprintf("teacher not found with email: %s", creds.Email))
		}
		if !teacher.IsApproved() {
			return apperrors.ErrTeacherNotApproved
		}
		if teacher.Password != creds.Password {
			return apperrors.ErrInvalidTeacherPassword
		}
		if teacher.Department != target.Department {
			return apperrors.Wrap(apperrors.ErrDepartmentMismatch,
				fmt.Sprintf("department mismatch: teacher=%s, student=%s", teacher.Department, target.Department))
		}
		return nil

	default:
		return apperrors.Wrap(apperrors.ErrInvalidRole, fmt.Sprintf("invalid role: %s", role))
	}
}

// StudentListFilter returns the per-record visibility predicate for the
// student listing. Listing is a read-time filter rather than a gate:
// principals see everything, teachers see their own department, students
// see only themselves, and unrecognized roles see an empty list.
func (s *AuthorizationService) StudentListFilter(role, department, teacherEmail, principalPassword string, studentID int) (func(models.Student) bool, error) {
	if role == "" {
		return nil, apperrors.ErrRoleRequired
	}

	switch role {
	case RolePrincipal:
		// The shared secret is verified only when presented.
		if principalPassword != "" && principalPassword != s.secrets.PrincipalPassword {
			return nil, apperrors.ErrInvalidPrincipalPassword
		}
		return func(models.Student) bool { return true }, nil

	case RoleTeacher:
		teacher, ok := s.store.TeacherByEmail(teacherEmail)
		if !ok || !teacher.IsApproved() {
			return nil, apperrors.ErrTeacherNotApproved
		}
		dept := department
		if dept == "" {
			dept = teacher.Department
		}
		return func(st models.Student) bool { return st.Department == dept }, nil

	case RoleStudent:
		return func(st models.Student) bool { return st.StudentID == studentID }, nil

	default:
		return func(models.Student) bool { return false }, nil
	}
}

// TeacherListFilter returns the visibility predicate for the teacher
// listing: approved teachers only, optionally narrowed to one department.
// A presented principal password is verified; an absent one leaves the
// listing open.
func (s *AuthorizationService) TeacherListFilter(department, principalPassword string) (func(models.Teacher) bool, error) {
	if principalPassword != "" && principalPassword != s.secrets.PrincipalPassword {
		return nil, apperrors.ErrInvalidPrincipalPassword
	}

	return func(t models.Teacher) bool {
		if !t.IsApproved() {
			return false
		}
		return department == "" || t.Department == department
	}, nil
}
