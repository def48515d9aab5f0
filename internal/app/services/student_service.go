package services

import (
	"github.com/rs/zerolog"

	appauth "github.com/krupanka/studentms/internal/app/auth"
	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/store"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// StudentService handles student registration, listing, and the authorized
// academic mutations.
type StudentService struct {
	store  *store.Store
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(st *store.Store, authz *appauth.AuthorizationService, logger zerolog.Logger) *StudentService {
	return &StudentService{store: st, authz: authz, logger: logger}
}

// Register creates a new student record with registration defaults.
func (s *StudentService) Register(name, password, email, department string, year int) (models.Student, error) {
	if name == "" {
		return models.Student{}, apperrors.NewValidationError("name is required")
	}
	if len(password) < 4 {
		return models.Student{}, apperrors.NewValidationError("password must be at least 4 characters")
	}
	if year < 1 || year > 6 {
		return models.Student{}, apperrors.NewValidationError("year must be between 1 and 6")
	}

	student := s.store.CreateStudent(name, password, email, department, year)
	s.persist()

	s.logger.Info().Int("studentId", student.StudentID).Msg("Student registered")
	return student, nil
}

// Get returns a single student including subjects.
func (s *StudentService) Get(studentID int) (models.Student, error) {
	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// List returns the students visible to the caller's role.
func (s *StudentService) List(role, department, teacherEmail, principalPassword string, studentID int) ([]models.Student, error) {
	include, err := s.authz.StudentListFilter(role, department, teacherEmail, principalPassword, studentID)
	if err != nil {
		return nil, err
	}

	all := s.store.Students()
	visible := make([]models.Student, 0, len(all))
	for _, student := range all {
		if include(student) {
			visible = append(visible, student)
		}
	}
	return visible, nil
}

// UpdateAcademics overwrites a student's CGPA and attendance after range
// validation and authorization.
func (s *StudentService) UpdateAcademics(studentID int, role string, creds appauth.Credentials, cgpa, attendance float64) (models.Student, error) {
	if cgpa < 0 || cgpa > 10 || attendance < 0 || attendance > 100 {
		return models.Student{}, apperrors.NewValidationError("CGPA must be 0-10 and attendance 0-100")
	}

	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}

	if err := s.authz.AuthorizeStudentMutation(role, creds, student); err != nil {
		s.logger.Warn().Err(err).Int("studentId", studentID).Str("role", role).Msg("Academics update denied")
		return models.Student{}, err
	}

	updated, err := s.store.UpdateAcademics(studentID, cgpa, attendance)
	if err != nil {
		return models.Student{}, err
	}
	s.persist()

	s.logger.Info().Int("studentId", studentID).Str("role", role).Msg("Academics updated")
	return updated, nil
}

// AssignSubject adds a new subject to a student after validation and
// authorization. Duplicate and capacity checks happen atomically in the
// store.
func (s *StudentService) AssignSubject(studentID int, role string, creds appauth.Credentials, subject models.Subject) (models.Subject, error) {
	if subject.SubjectID == "" || subject.Name == "" {
		return models.Subject{}, apperrors.NewValidationError("subjectId and name are required")
	}
	if err := validateSubjectMarks(subject.Mid1, subject.Mid2, subject.Final, subject.AttendancePercent); err != nil {
		return models.Subject{}, err
	}

	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return models.Subject{}, apperrors.ErrStudentNotFound
	}

	if err := s.authz.AuthorizeStudentMutation(role, creds, student); err != nil {
		s.logger.Warn().Err(err).Int("studentId", studentID).Str("role", role).Msg("Subject assignment denied")
		return models.Subject{}, err
	}

	assigned, err := s.store.AssignSubject(studentID, subject)
	if err != nil {
		return models.Subject{}, err
	}
	s.persist()

	s.logger.Info().Int("studentId", studentID).Str("subjectId", subject.SubjectID).Msg("Subject assigned")
	return assigned, nil
}

// UpdateSubject overwrites marks and attendance of an existing subject
// after validation and authorization.
func (s *StudentService) UpdateSubject(studentID int, role string, creds appauth.Credentials, subjectID string, mid1, mid2, final int, attendancePercent float64, remarks string) (models.Subject, error) {
	if err := validateSubjectMarks(mid1, mid2, final, attendancePercent); err != nil {
		return models.Subject{}, err
	}

	student, ok := s.store.StudentByID(studentID)
	if !ok {
		return models.Subject{}, apperrors.ErrStudentNotFound
	}

	if err := s.authz.AuthorizeStudentMutation(role, creds, student); err != nil {
		s.logger.Warn().Err(err).Int("studentId", studentID).Str("role", role).Msg("Subject update denied")
		return models.Subject{}, err
	}

	updated, err := s.store.UpdateSubject(studentID, subjectID, mid1, mid2, final, attendancePercent, remarks)
	if err != nil {
		return models.Subject{}, err
	}
	s.persist()

	s.logger.Info().Int("studentId", studentID).Str("subjectId", subjectID).Msg("Subject updated")
	return updated, nil
}

func validateSubjectMarks(mid1, mid2, final int, attendancePercent float64) error {
	if mid1 < 0 || mid2 < 0 || final < 0 || attendancePercent < 0 || attendancePercent > 100 {
		return apperrors.NewValidationError("marks must be non-negative and attendance 0-100")
	}
	return nil
}

// persist flushes the snapshot synchronously. A failed write is surfaced
// as a warning while the in-memory mutation stands and the response
// contract is unchanged.
func (s *StudentService) persist() {
	if err := s.store.Save(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist record snapshot; in-memory state retained")
	}
}
