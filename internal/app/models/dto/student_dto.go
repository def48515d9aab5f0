package dto

import "github.com/krupanka/studentms/internal/app/models"

// StudentRegisterResponse confirms a new registration.
type StudentRegisterResponse struct {
	StudentID int    `json:"studentId" example:"1001"`
	Name      string `json:"name" example:"John Doe"`
	Message   string `json:"message" example:"Registration successful"`
}

// StudentSummary is the listing projection; it omits the password and the
// subject list.
type StudentSummary struct {
	StudentID  int     `json:"studentId" example:"1001"`
	Name       string  `json:"name" example:"John Doe"`
	Email      string  `json:"email" example:"john@example.edu"`
	Department string  `json:"department" example:"CSE"`
	Year       int     `json:"year" example:"2"`
	CGPA       float64 `json:"cgpa" example:"8.4"`
	Attendance float64 `json:"attendance" example:"87.5"`
}

// SubjectData is the wire shape of a subject, with the derived total.
type SubjectData struct {
	SubjectID         string  `json:"subjectId" example:"CS101"`
	Name              string  `json:"name" example:"Data Structures"`
	Mid1              int     `json:"mid1" example:"25"`
	Mid2              int     `json:"mid2" example:"28"`
	Final             int     `json:"final" example:"55"`
	Total             int     `json:"total" example:"108"`
	AttendancePercent float64 `json:"attendance_percent" example:"92.5"`
	Remarks           string  `json:"remarks" example:"Good progress"`
}

// StudentDetail is the single-student projection including subjects.
// The id and attendance_percent aliases are kept for client compatibility.
type StudentDetail struct {
	ID                int           `json:"id" example:"1001"`
	StudentID         int           `json:"studentId" example:"1001"`
	Name              string        `json:"name" example:"John Doe"`
	Email             string        `json:"email" example:"john@example.edu"`
	Department        string        `json:"department" example:"CSE"`
	Year              int           `json:"year" example:"2"`
	Semester          int           `json:"semester" example:"1"`
	CGPA              float64       `json:"cgpa" example:"8.4"`
	Attendance        float64       `json:"attendance" example:"87.5"`
	AttendancePercent float64       `json:"attendance_percent" example:"87.5"`
	Subjects          []SubjectData `json:"subjects"`
}

// MarksData groups the three mark components with their derived total.
type MarksData struct {
	Mid1  int `json:"mid1" example:"25"`
	Mid2  int `json:"mid2" example:"28"`
	Final int `json:"final" example:"55"`
	Total int `json:"total" example:"108"`
}

// SubjectMutationResponse confirms a subject assignment or update.
type SubjectMutationResponse struct {
	Message           string    `json:"message" example:"Subject assigned"`
	SubjectID         string    `json:"subjectId" example:"CS101"`
	Name              string    `json:"name,omitempty" example:"Data Structures"`
	Marks             MarksData `json:"marks"`
	AttendancePercent float64   `json:"attendance_percent" example:"92.5"`
}

// AcademicsResponse confirms a CGPA/attendance update.
type AcademicsResponse struct {
	Message           string  `json:"message" example:"Academics updated"`
	CGPA              float64 `json:"cgpa" example:"8.4"`
	AttendancePercent float64 `json:"attendance_percent" example:"87.5"`
}

// NewStudentSummary projects a student for listings.
func NewStudentSummary(s models.Student) StudentSummary {
	return StudentSummary{
		StudentID:  s.StudentID,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		Year:       s.Year,
		CGPA:       s.CGPA,
		Attendance: s.Attendance,
	}
}

// NewSubjectData projects a subject with its computed total.
func NewSubjectData(subj models.Subject) SubjectData {
	return SubjectData{
		SubjectID:         subj.SubjectID,
		Name:              subj.Name,
		Mid1:              subj.Mid1,
		Mid2:              subj.Mid2,
		Final:             subj.Final,
		Total:             subj.Total(),
		AttendancePercent: subj.AttendancePercent,
		Remarks:           subj.Remarks,
	}
}

// NewStudentDetail projects a student with its full subject list.
func NewStudentDetail(s models.Student) StudentDetail {
	subjects := make([]SubjectData, 0, len(s.Subjects))
	for _, subj := range s.Subjects {
		subjects = append(subjects, NewSubjectData(subj))
	}

	return StudentDetail{
		ID:                s.StudentID,
		StudentID:         s.StudentID,
		Name:              s.Name,
		Email:             s.Email,
		Department:        s.Department,
		Year:              s.Year,
		Semester:          s.Semester,
		CGPA:              s.CGPA,
		Attendance:        s.Attendance,
		AttendancePercent: s.Attendance,
		Subjects:          subjects,
	}
}
