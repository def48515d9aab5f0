package dto

// AdminLoginResponse is returned on a successful admin login.
type AdminLoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Role    string `json:"role" example:"admin"`
	Message string `json:"message" example:"Admin login successful"`
	Token   string `json:"token,omitempty"`
}

// PrincipalLoginResponse is returned on a successful principal login.
type PrincipalLoginResponse struct {
	Success     bool   `json:"success" example:"true"`
	Role        string `json:"role" example:"principal"`
	PrincipalID int    `json:"principalId" example:"3001"`
	Message     string `json:"message" example:"Principal login successful"`
	Token       string `json:"token,omitempty"`
}

// TeacherLoginResponse echoes the teacher profile on a successful login.
// The password is echoed back because the web client replays it as the
// credential on later mutations.
type TeacherLoginResponse struct {
	Success    bool   `json:"success" example:"true"`
	Role       string `json:"role" example:"teacher"`
	TeacherID  int    `json:"teacherId" example:"2001"`
	Name       string `json:"name" example:"Jane Smith"`
	Email      string `json:"email" example:"jane@example.edu"`
	Department string `json:"department" example:"CSE"`
	Approved   int    `json:"approved" example:"1"`
	Password   string `json:"password"`
	Token      string `json:"token,omitempty"`
}

// StudentLoginResponse echoes the student profile on a successful login.
type StudentLoginResponse struct {
	Success    bool    `json:"success" example:"true"`
	Role       string  `json:"role" example:"student"`
	StudentID  int     `json:"studentId" example:"1001"`
	Name       string  `json:"name" example:"John Doe"`
	Email      string  `json:"email" example:"john@example.edu"`
	Department string  `json:"department" example:"CSE"`
	Year       int     `json:"year" example:"2"`
	CGPA       float64 `json:"cgpa" example:"8.4"`
	Attendance float64 `json:"attendance" example:"87.5"`
	Token      string  `json:"token,omitempty"`
}
