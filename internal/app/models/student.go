package models

// MaxSubjects is the hard cap on subjects a single student can carry.
const MaxSubjects = 10

// Subject defines a per-student academic unit with marks and attendance.
// Subjects are embedded in their owning Student and never shared.
type Subject struct {
	SubjectID         string  `json:"subjectId" example:"CS101"` // Unique within the owning student
	Name              string  `json:"name" example:"Data Structures"`
	Mid1              int     `json:"mid1" example:"25"`
	Mid2              int     `json:"mid2" example:"28"`
	Final             int     `json:"final" example:"55"`
	AttendancePercent float64 `json:"attendance_percent" example:"92.5"`
	Remarks           string  `json:"remarks,omitempty" example:"Good progress"`
}

// Total returns the aggregate mark. It is derived and never stored.
func (s Subject) Total() int {
	return s.Mid1 + s.Mid2 + s.Final
}

// Student defines the student record. IDs are allocated sequentially from 1001.
type Student struct {
	StudentID  int       `json:"studentId" example:"1001"`
	Name       string    `json:"name" example:"John Doe"`
	Password   string    `json:"password"` // Stored and compared as plaintext
	Email      string    `json:"email" example:"john@example.edu"`
	Department string    `json:"department" example:"CSE"`
	Year       int       `json:"year" example:"2"` // 1-6
	Semester   int       `json:"semester" example:"1"`
	CGPA       float64   `json:"cgpa" example:"8.4"`        // 0-10
	Attendance float64   `json:"attendance" example:"87.5"` // 0-100
	Subjects   []Subject `json:"subjects"`                  // Insertion order, capped at MaxSubjects
}

// Subject returns the student's subject with the given ID, if present.
func (s *Student) Subject(subjectID string) (Subject, bool) {
	for _, subj := range s.Subjects {
		if subj.SubjectID == subjectID {
			return subj, true
		}
	}
	return Subject{}, false
}
