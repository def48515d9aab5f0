package models

// ApprovalState is the tri-state teacher flag gating login and all
// teacher-performed mutations.
type ApprovalState int

const (
	ApprovalPending  ApprovalState = 0
	ApprovalApproved ApprovalState = 1
	ApprovalRejected ApprovalState = -1
)

// Teacher defines the teacher record. IDs are allocated sequentially from 2001.
// Teachers start pending and are approved or rejected by the principal.
type Teacher struct {
	TeacherID    int           `json:"teacherId" example:"2001"`
	Name         string        `json:"name" example:"Jane Smith"`
	Password     string        `json:"password"`                         // Stored and compared as plaintext
	Email        string        `json:"email" example:"jane@example.edu"` // Unique across all teachers
	Department   string        `json:"department" example:"CSE"`
	Approved     ApprovalState `json:"approved" example:"1"`
	ApprovalDate string        `json:"approvalDate,omitempty" example:"2025-04-23 12:01:05"` // Set only on approval
}

// IsApproved reports whether the teacher may log in and mutate records.
func (t *Teacher) IsApproved() bool {
	return t.Approved == ApprovalApproved
}
