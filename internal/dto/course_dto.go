package dto

import "github.com/campusdesk/campusdesk-api/internal/models"

// CourseCreateRequest is the add-course form payload.
type CourseCreateRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

// CourseResponse is the typed row returned for catalog reads.
type CourseResponse struct {
	CourseID uint    `json:"course_id"`
	Name     string  `json:"name"`
	Fees     float64 `json:"fees"`
	Duration string  `json:"duration"`
}

// NewCourseResponse maps a course row onto its response shape.
func NewCourseResponse(course models.Course) CourseResponse {
	return CourseResponse{
		CourseID: course.CourseID,
		Name:     course.CourseName,
		Fees:     course.CourseFees,
		Duration: course.CourseDuration,
	}
}

// AssignRequest assigns a professor (picked by id) to a course by name.
type AssignRequest struct {
	CourseName  string `json:"course_name" validate:"required"`
	ProfessorID uint   `json:"professor_id" validate:"required"`
}

// EnrollRequest enrolls a student (picked by id) into a course by name.
type EnrollRequest struct {
	CourseName string `json:"course_name" validate:"required"`
	StudentID  uint   `json:"student_id" validate:"required"`
}
