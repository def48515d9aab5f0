package models

// PrincipalID is the nominal identifier reported on principal login.
// Principals act through a single shared secret; no per-account records
// are created in the current flows.
const PrincipalID = 3001

// Principal defines the principal record. IDs are allocated sequentially
// from 3001. Kept for the persisted counter and future per-account flows.
type Principal struct {
	PrincipalID int    `json:"principalId" example:"3001"`
	Name        string `json:"name" example:"Dr. Allen"`
	Password    string `json:"password"`
	Email       string `json:"email" example:"principal@example.edu"`
}
