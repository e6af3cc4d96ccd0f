package models

// Course is a catalog entry. Fees and duration exist in the schema but no
// workflow reads them; new courses get zero fee and an "NA" duration.
type Course struct {
	CourseID       uint    `gorm:"column:course_id;primaryKey" json:"course_id"`
	CourseName     string  `gorm:"column:course_name;size:150;not null" json:"course_name"`
	CourseFees     float64 `gorm:"column:course_fees" json:"course_fees"`
	CourseDuration string  `gorm:"column:course_duration;size:50" json:"course_duration"`
}

func (Course) TableName() string { return "course" }

// AssignmentStatus tracks whether a professor currently teaches a course.
type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentInactive AssignmentStatus = "inactive"
)

// CourseProfessor maps a professor onto a course. Re-assigning an existing
// pair forces the status back to active instead of erroring.
type CourseProfessor struct {
	CourseID    uint             `gorm:"column:course_id;primaryKey" json:"course_id"`
	ProfessorID uint             `gorm:"column:professor_id;primaryKey" json:"professor_id"`
	Status      AssignmentStatus `gorm:"column:status;size:20;default:active" json:"status"`
}

func (CourseProfessor) TableName() string { return "course_professor" }

// EnrollmentStatus is the lifecycle state of a student on a course.
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Enrollment maps a student onto a course.
type Enrollment struct {
	CourseID  uint             `gorm:"column:course_id;primaryKey" json:"course_id"`
	StudentID uint             `gorm:"column:student_id;primaryKey" json:"student_id"`
	Status    EnrollmentStatus `gorm:"column:status;size:20;default:enrolled" json:"status"`
}

func (Enrollment) TableName() string { return "enrollment" }

// Grade stores the single grade value a course/student pair carries. Writing
// again overwrites the value in place.
type Grade struct {
	CourseID  uint   `gorm:"column:course_id;primaryKey" json:"course_id"`
	StudentID uint   `gorm:"column:student_id;primaryKey" json:"student_id"`
	Grade     string `gorm:"column:grade;size:20;not null" json:"grade"`
}

func (Grade) TableName() string { return "grades" }
