package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krupanka/studentms/internal/app/models"
)

// snapshot is the on-disk schema: the three ID counters plus the two
// persisted collections, rewritten in full on every mutation. Loading a
// freshly saved snapshot must reproduce the aggregate exactly.
type snapshot struct {
	NextStudentID   int              `json:"nextStudentId"`
	NextTeacherID   int              `json:"nextTeacherId"`
	NextPrincipalID int              `json:"nextPrincipalId"`
	Students        []models.Student `json:"students"`
	Teachers        []models.Teacher `json:"teachers"`
}

// Save writes the current aggregate to the configured path. The document
// is written to a temp file and renamed so readers never observe a partial
// write. The whole capture-to-rename sequence holds saveMu: every save
// that wins the rename captured its state after the previous one, so a
// mutation reported as persisted is never overwritten by an older
// snapshot.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	snap := snapshot{
		NextStudentID:   s.nextStudentID,
		NextTeacherID:   s.nextTeacherID,
		NextPrincipalID: s.nextPrincipalID,
		Students:        make([]models.Student, 0, len(s.studentOrder)),
		Teachers:        make([]models.Teacher, 0, len(s.teacherOrder)),
	}
	for _, id := range s.studentOrder {
		snap.Students = append(snap.Students, copyStudent(s.students[id]))
	}
	for _, id := range s.teacherOrder {
		snap.Teachers = append(snap.Teachers, *s.teachers[id])
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// Load reads the persisted snapshot into the aggregate. When no snapshot
// exists yet, it seeds a single default student and persists immediately,
// so the system is never empty after startup.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.bootstrap()
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", filepath.Base(s.path), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = make(map[int]*models.Student, len(snap.Students))
	s.teachers = make(map[int]*models.Teacher, len(snap.Teachers))
	s.studentOrder = s.studentOrder[:0]
	s.teacherOrder = s.teacherOrder[:0]

	for i := range snap.Students {
		student := snap.Students[i]
		if student.Subjects == nil {
			student.Subjects = []models.Subject{}
		}
		s.students[student.StudentID] = &student
		s.studentOrder = append(s.studentOrder, student.StudentID)
	}
	for i := range snap.Teachers {
		teacher := snap.Teachers[i]
		s.teachers[teacher.TeacherID] = &teacher
		s.teacherOrder = append(s.teacherOrder, teacher.TeacherID)
	}

	// Counters only ever move forward, even against a hand-edited file.
	s.nextStudentID = maxInt(snap.NextStudentID, studentIDBase)
	s.nextTeacherID = maxInt(snap.NextTeacherID, teacherIDBase)
	s.nextPrincipalID = maxInt(snap.NextPrincipalID, principalIDBase)

	s.logger.Info().
		Int("students", len(s.students)).
		Int("teachers", len(s.teachers)).
		Str("path", s.path).
		Msg("Record snapshot loaded")

	return nil
}

// bootstrap seeds the default student on first start.
func (s *Store) bootstrap() error {
	s.logger.Info().Str("path", s.path).Msg("No existing database found, creating new system")

	student := s.CreateStudent(
		"Default Student",
		s.defaultStudentPassword,
		"student@example.edu",
		"CSE",
		1,
	)

	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to persist bootstrap snapshot: %w", err)
	}

	s.logger.Info().Int("studentId", student.StudentID).Msg("Default student created")
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
