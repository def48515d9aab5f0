// Package store owns the authoritative in-memory record collections and
// the durable snapshot they are persisted to. All access goes through a
// single Store guarded by one RWMutex; check-then-act sequences (duplicate
// email, subject capacity) are atomic with their writes.
package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// ID counters start at fixed bases and only ever grow, surviving restarts
// through the persisted snapshot.
const (
	studentIDBase   = 1001
	teacherIDBase   = 2001
	principalIDBase = 3001
)

// Store holds the full record aggregate. Reads hand out copies; callers
// never hold pointers into the maps.
type Store struct {
	mu sync.RWMutex

	// saveMu serializes snapshot writes so a save capturing older state can
	// never rename over one capturing newer state.
	saveMu sync.Mutex

	students   map[int]*models.Student
	teachers   map[int]*models.Teacher
	principals map[int]*models.Principal

	// Insertion order of IDs, used for listings and the snapshot.
	studentOrder []int
	teacherOrder []int

	nextStudentID   int
	nextTeacherID   int
	nextPrincipalID int

	path                   string
	defaultStudentPassword string
	logger                 zerolog.Logger
}

// New creates an empty Store persisting to path. The default student
// password is used when bootstrapping a fresh database file.
func New(path, defaultStudentPassword string, logger zerolog.Logger) *Store {
	return &Store{
		students:               make(map[int]*models.Student),
		teachers:               make(map[int]*models.Teacher),
		principals:             make(map[int]*models.Principal),
		nextStudentID:          studentIDBase,
		nextTeacherID:          teacherIDBase,
		nextPrincipalID:        principalIDBase,
		path:                   path,
		defaultStudentPassword: defaultStudentPassword,
		logger:                 logger,
	}
}

// CreateStudent allocates the next student ID and inserts a new record with
// registration defaults: semester 1, zero CGPA and attendance, no subjects.
func (s *Store) CreateStudent(name, password, email, department string, year int) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := &models.Student{
		StudentID:  s.nextStudentID,
		Name:       name,
		Password:   password,
		Email:      email,
		Department: department,
		Year:       year,
		Semester:   1,
		Subjects:   []models.Subject{},
	}
	s.nextStudentID++

	s.students[student.StudentID] = student
	s.studentOrder = append(s.studentOrder, student.StudentID)

	return copyStudent(student)
}

// CreateTeacher allocates the next teacher ID and inserts a new record in
// the pending state. The duplicate-email check is atomic with the insert.
func (s *Store) CreateTeacher(name, password, email, department string) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.teacherByEmailLocked(email) != nil {
		return models.Teacher{}, apperrors.ErrEmailAlreadyRegistered
	}

	teacher := &models.Teacher{
		TeacherID:  s.nextTeacherID,
		Name:       name,
		Password:   password,
		Email:      email,
		Department: department,
		Approved:   models.ApprovalPending,
	}
	s.nextTeacherID++

	s.teachers[teacher.TeacherID] = teacher
	s.teacherOrder = append(s.teacherOrder, teacher.TeacherID)

	return *teacher, nil
}

// StudentByID returns a copy of the student with the given ID.
func (s *Store) StudentByID(id int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return models.Student{}, false
	}
	return copyStudent(student), true
}

// TeacherByID returns a copy of the teacher with the given ID.
func (s *Store) TeacherByID(id int) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher, ok := s.teachers[id]
	if !ok {
		return models.Teacher{}, false
	}
	return *teacher, true
}

// TeacherByEmail returns a copy of the teacher with the given email.
func (s *Store) TeacherByEmail(email string) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher := s.teacherByEmailLocked(email)
	if teacher == nil {
		return models.Teacher{}, false
	}
	return *teacher, true
}

// Students returns copies of all students in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, copyStudent(s.students[id]))
	}
	return out
}

// Teachers returns copies of all teachers in insertion order.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Teacher, 0, len(s.teacherOrder))
	for _, id := range s.teacherOrder {
		out = append(out, *s.teachers[id])
	}
	return out
}

// UpdateAcademics overwrites the student's CGPA and attendance. Range
// validation happens in the handler layer before this call.
func (s *Store) UpdateAcademics(id int, cgpa, attendance float64) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}

	student.CGPA = cgpa
	student.Attendance = attendance
	return copyStudent(student), nil
}

// AssignSubject appends a new subject to the student. Fails when the
// subject ID is already assigned or the student holds MaxSubjects.
func (s *Store) AssignSubject(id int, subject models.Subject) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return models.Subject{}, apperrors.ErrStudentNotFound
	}

	if _, exists := student.Subject(subject.SubjectID); exists {
		return models.Subject{}, apperrors.ErrSubjectAlreadyAssigned
	}

	if len(student.Subjects) >= models.MaxSubjects {
		return models.Subject{}, apperrors.ErrSubjectCapacityReached
	}

	student.Subjects = append(student.Subjects, subject)
	return subject, nil
}

// UpdateSubject overwrites the marks and attendance of an existing subject.
// Remarks are only replaced when non-empty, so an update that omits them
// keeps the previous text.
func (s *Store) UpdateSubject(id int, subjectID string, mid1, mid2, final int, attendancePercent float64, remarks string) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return models.Subject{}, apperrors.ErrStudentNotFound
	}

	for i := range student.Subjects {
		if student.Subjects[i].SubjectID != subjectID {
			continue
		}
		subj := &student.Subjects[i]
		subj.Mid1 = mid1
		subj.Mid2 = mid2
		subj.Final = final
		subj.AttendancePercent = attendancePercent
		if remarks != "" {
			subj.Remarks = remarks
		}
		return *subj, nil
	}

	return models.Subject{}, apperrors.ErrSubjectNotFound
}

// SetTeacherApproval records the principal's decision. Approvals stamp the
// date; rejections clear it. Repeated decisions overwrite the previous
// state; neither outcome is terminal.
func (s *Store) SetTeacherApproval(id int, state models.ApprovalState, date string) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher, ok := s.teachers[id]
	if !ok {
		return models.Teacher{}, apperrors.ErrTeacherNotFound
	}

	teacher.Approved = state
	if state == models.ApprovalApproved {
		teacher.ApprovalDate = date
	} else {
		teacher.ApprovalDate = ""
	}
	return *teacher, nil
}

func (s *Store) teacherByEmailLocked(email string) *models.Teacher {
	for _, id := range s.teacherOrder {
		t := s.teachers[id]
		if t.Email == email {
			return t
		}
	}
	return nil
}

func copyStudent(s *models.Student) models.Student {
	out := *s
	out.Subjects = make([]models.Subject, len(s.Subjects))
	copy(out.Subjects, s.Subjects)
	return out
}
