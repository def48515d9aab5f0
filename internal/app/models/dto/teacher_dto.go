package dto

import "github.com/krupanka/studentms/internal/app/models"

// TeacherRegisterResponse confirms a pending registration.
type TeacherRegisterResponse struct {
	TeacherID int    `json:"teacherId" example:"2001"`
	Message   string `json:"message" example:"Registration submitted. Pending principal approval"`
}

// TeacherSummary is the listing projection used for approved and pending
// teacher lists.
type TeacherSummary struct {
	TeacherID  int    `json:"teacherId" example:"2001"`
	Name       string `json:"name" example:"Jane Smith"`
	Email      string `json:"email" example:"jane@example.edu"`
	Department string `json:"department" example:"CSE"`
}

// TeacherDetail is the single-teacher projection including approval state.
type TeacherDetail struct {
	TeacherID  int    `json:"teacherId" example:"2001"`
	Name       string `json:"name" example:"Jane Smith"`
	Email      string `json:"email" example:"jane@example.edu"`
	Department string `json:"department" example:"CSE"`
	Approved   int    `json:"approved" example:"1"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Teacher approved"`
}

// NewTeacherSummary projects a teacher for listings.
func NewTeacherSummary(t models.Teacher) TeacherSummary {
	return TeacherSummary{
		TeacherID:  t.TeacherID,
		Name:       t.Name,
		Email:      t.Email,
		Department: t.Department,
	}
}

// NewTeacherDetail projects a teacher with its approval state.
func NewTeacherDetail(t models.Teacher) TeacherDetail {
	return TeacherDetail{
		TeacherID:  t.TeacherID,
		Name:       t.Name,
		Email:      t.Email,
		Department: t.Department,
		Approved:   int(t.Approved),
	}
}
