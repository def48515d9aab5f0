package services

import (
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/krupanka/studentms/internal/app/auth"
	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/store"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// approvalDateLayout matches the timestamp format used in the persisted
// snapshot and the web client.
const approvalDateLayout = "2006-01-02 15:04:05"

// TeacherService handles teacher registration, listing, and the principal
// approval workflow.
type TeacherService struct {
	store  *store.Store
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
	now    func() time.Time
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(st *store.Store, authz *appauth.AuthorizationService, logger zerolog.Logger) *TeacherService {
	return &TeacherService{store: st, authz: authz, logger: logger, now: time.Now}
}

// Register creates a new teacher in the pending state. Email uniqueness is
// enforced globally.
func (s *TeacherService) Register(name, password, email, department string) (models.Teacher, error) {
	if name == "" {
		return models.Teacher{}, apperrors.NewValidationError("name is required")
	}
	if len(password) < 4 {
		return models.Teacher{}, apperrors.NewValidationError("password must be at least 4 characters")
	}
	if email == "" {
		return models.Teacher{}, apperrors.NewValidationError("email is required")
	}

	teacher, err := s.store.CreateTeacher(name, password, email, department)
	if err != nil {
		return models.Teacher{}, err
	}
	s.persist()

	s.logger.Info().Int("teacherId", teacher.TeacherID).Str("name", teacher.Name).Msg("Teacher registered, pending approval")
	return teacher, nil
}

// Get returns a single teacher.
func (s *TeacherService) Get(teacherID int) (models.Teacher, error) {
	teacher, ok := s.store.TeacherByID(teacherID)
	if !ok {
		return models.Teacher{}, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

// List returns approved teachers, optionally narrowed to one department.
func (s *TeacherService) List(department, principalPassword string) ([]models.Teacher, error) {
	include, err := s.authz.TeacherListFilter(department, principalPassword)
	if err != nil {
		return nil, err
	}

	all := s.store.Teachers()
	visible := make([]models.Teacher, 0, len(all))
	for _, teacher := range all {
		if include(teacher) {
			visible = append(visible, teacher)
		}
	}
	return visible, nil
}

// Pending returns all teachers awaiting the principal's decision.
func (s *TeacherService) Pending() []models.Teacher {
	all := s.store.Teachers()
	pending := make([]models.Teacher, 0, len(all))
	for _, teacher := range all {
		if teacher.Approved == models.ApprovalPending {
			pending = append(pending, teacher)
		}
	}
	return pending
}

// Decide applies the principal's approval decision: action 1 approves and
// stamps the approval date, any other action rejects. Both outcomes are
// terminal; there is no transition back out of either state.
func (s *TeacherService) Decide(teacherID, action int, principalPassword string) (bool, error) {
	if err := s.authz.VerifyPrincipal(principalPassword); err != nil {
		return false, err
	}

	approved := action == 1
	state := models.ApprovalRejected
	date := ""
	if approved {
		state = models.ApprovalApproved
		date = s.now().Format(approvalDateLayout)
	}

	if _, err := s.store.SetTeacherApproval(teacherID, state, date); err != nil {
		return false, err
	}
	s.persist()

	s.logger.Info().Int("teacherId", teacherID).Bool("approved", approved).Msg("Teacher approval decided")
	return approved, nil
}

func (s *TeacherService) persist() {
	if err := s.store.Save(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist record snapshot; in-memory state retained")
	}
}
