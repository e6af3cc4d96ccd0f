package models

import "time"

// Role identifies which panel a user belongs to.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProfessor, RoleStudent:
		return true
	}
	return false
}

// ProfessorStatus is the admin-controlled account approval state.
type ProfessorStatus string

const (
	ProfessorWaiting  ProfessorStatus = "waiting"
	ProfessorApproved ProfessorStatus = "approved"
	ProfessorRejected ProfessorStatus = "rejected"
)

// Valid reports whether the status is a known approval state.
func (s ProfessorStatus) Valid() bool {
	switch s {
	case ProfessorWaiting, ProfessorApproved, ProfessorRejected:
		return true
	}
	return false
}

// User is a registered account. The password column holds the raw credential
// by exact-match comparison; hashing is a deliberate non-feature of this
// schema and the auth service marks the comparison site accordingly.
type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	Email     string    `gorm:"column:email;size:150;uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"column:role;size:20;not null" json:"role"`
	MobileNo  string    `gorm:"column:mobile_no;size:20" json:"mobile_no"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Admin is the role profile row for an admin user.
type Admin struct {
	AdminID uint `gorm:"column:admin_id;primaryKey" json:"admin_id"`
}

func (Admin) TableName() string { return "admin" }

// Professor is the role profile row for a professor user, carrying the
// approval status gate checked at login.
type Professor struct {
	ProfessorID uint            `gorm:"column:professor_id;primaryKey" json:"professor_id"`
	Status      ProfessorStatus `gorm:"column:status;size:20;default:waiting" json:"status"`
}

func (Professor) TableName() string { return "professor" }

// Student is the role profile row for a student user.
type Student struct {
	StudentID uint `gorm:"column:student_id;primaryKey" json:"student_id"`
}

func (Student) TableName() string { return "student" }
