package store

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir()+"/database.json", "student123", zerolog.Nop())
}

func TestCreateStudentDefaults(t *testing.T) {
	s := newTestStore(t)

	student := s.CreateStudent("John Doe", "pass1234", "john@example.edu", "CSE", 2)

	assert.Equal(t, 1001, student.StudentID)
	assert.Equal(t, 1, student.Semester)
	assert.Equal(t, 0.0, student.CGPA)
	assert.Equal(t, 0.0, student.Attendance)
	assert.Empty(t, student.Subjects)
}

func TestStudentIDsMonotonic(t *testing.T) {
	s := newTestStore(t)

	prev := 0
	for i := 0; i < 5; i++ {
		student := s.CreateStudent(fmt.Sprintf("Student %d", i), "pass1234", "", "CSE", 1)
		assert.Greater(t, student.StudentID, prev)
		prev = student.StudentID
	}
}

func TestCreateTeacherStartsPending(t *testing.T) {
	s := newTestStore(t)

	teacher, err := s.CreateTeacher("Jane", "pass1234", "jane@example.edu", "ECE")
	require.NoError(t, err)

	assert.Equal(t, 2001, teacher.TeacherID)
	assert.Equal(t, models.ApprovalPending, teacher.Approved)
	assert.Empty(t, teacher.ApprovalDate)
}

func TestCreateTeacherDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateTeacher("Jane", "pass1234", "jane@example.edu", "ECE")
	require.NoError(t, err)

	_, err = s.CreateTeacher("Other Jane", "pass5678", "jane@example.edu", "CSE")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)

	// The failed registration must not mutate the store.
	assert.Len(t, s.Teachers(), 1)
}

func TestLookupsReturnNotFound(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.StudentByID(9999)
	assert.False(t, ok)

	_, ok = s.TeacherByID(9999)
	assert.False(t, ok)

	_, ok = s.TeacherByEmail("nobody@example.edu")
	assert.False(t, ok)
}

func TestAssignSubjectDuplicate(t *testing.T) {
	s := newTestStore(t)
	student := s.CreateStudent("John", "pass1234", "", "CSE", 1)

	_, err := s.AssignSubject(student.StudentID, models.Subject{SubjectID: "CS101", Name: "Data Structures"})
	require.NoError(t, err)

	_, err = s.AssignSubject(student.StudentID, models.Subject{SubjectID: "CS101", Name: "Another"})
	assert.ErrorIs(t, err, apperrors.ErrSubjectAlreadyAssigned)

	got, ok := s.StudentByID(student.StudentID)
	require.True(t, ok)
	assert.Len(t, got.Subjects, 1)
	assert.Equal(t, "Data Structures", got.Subjects[0].Name)
}

func TestAssignSubjectCapacity(t *testing.T) {
	s := newTestStore(t)
	student := s.CreateStudent("John", "pass1234", "", "CSE", 1)

	for i := 0; i < models.MaxSubjects; i++ {
		_, err := s.AssignSubject(student.StudentID, models.Subject{
			SubjectID: fmt.Sprintf("CS%d", 100+i),
			Name:      fmt.Sprintf("Subject %d", i),
		})
		require.NoError(t, err)
	}

	_, err := s.AssignSubject(student.StudentID, models.Subject{SubjectID: "CS999", Name: "Overflow"})
	assert.ErrorIs(t, err, apperrors.ErrSubjectCapacityReached)

	got, _ := s.StudentByID(student.StudentID)
	assert.Len(t, got.Subjects, models.MaxSubjects)
}

func TestUpdateSubjectKeepsRemarksWhenEmpty(t *testing.T) {
	s := newTestStore(t)
	student := s.CreateStudent("John", "pass1234", "", "CSE", 1)

	_, err := s.AssignSubject(student.StudentID, models.Subject{SubjectID: "CS101", Name: "Data Structures"})
	require.NoError(t, err)

	_, err = s.UpdateSubject(student.StudentID, "CS101", 20, 22, 50, 90, "Strong midterms")
	require.NoError(t, err)

	updated, err := s.UpdateSubject(student.StudentID, "CS101", 21, 22, 50, 90, "")
	require.NoError(t, err)

	assert.Equal(t, 21, updated.Mid1)
	assert.Equal(t, "Strong midterms", updated.Remarks)
	assert.Equal(t, 93, updated.Total())
}

func TestUpdateSubjectNotFound(t *testing.T) {
	s := newTestStore(t)
	student := s.CreateStudent("John", "pass1234", "", "CSE", 1)

	_, err := s.UpdateSubject(student.StudentID, "CS404", 10, 10, 10, 80, "")
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestSetTeacherApproval(t *testing.T) {
	s := newTestStore(t)
	teacher, err := s.CreateTeacher("Jane", "pass1234", "jane@example.edu", "CSE")
	require.NoError(t, err)

	approved, err := s.SetTeacherApproval(teacher.TeacherID, models.ApprovalApproved, "2025-04-23 12:01:05")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, approved.Approved)
	assert.Equal(t, "2025-04-23 12:01:05", approved.ApprovalDate)

	rejected, err := s.SetTeacherApproval(teacher.TeacherID, models.ApprovalRejected, "")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, rejected.Approved)
	assert.Empty(t, rejected.ApprovalDate)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	student := s.CreateStudent("John", "pass1234", "", "CSE", 1)

	_, err := s.AssignSubject(student.StudentID, models.Subject{SubjectID: "CS101", Name: "Data Structures"})
	require.NoError(t, err)

	got, _ := s.StudentByID(student.StudentID)
	got.Subjects[0].Name = "Tampered"
	got.Name = "Tampered"

	fresh, _ := s.StudentByID(student.StudentID)
	assert.Equal(t, "John", fresh.Name)
	assert.Equal(t, "Data Structures", fresh.Subjects[0].Name)
}

func TestListingsPreserveInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		s.CreateStudent(fmt.Sprintf("Student %d", i), "pass1234", "", "CSE", 1)
	}

	students := s.Students()
	require.Len(t, students, 3)
	for i := 1; i < len(students); i++ {
		assert.Greater(t, students[i].StudentID, students[i-1].StudentID)
	}
}
