package dto

// GradeUploadRequest is the grade form payload submitted by a professor.
type GradeUploadRequest struct {
	CourseName string `json:"course_name" validate:"required"`
	StudentID  uint   `json:"student_id" validate:"required"`
	Grade      string `json:"grade" validate:"required,max=20"`
}

// GradeResponse is the typed grade row returned to students.
type GradeResponse struct {
	CourseName string `json:"course_name"`
	Grade      string `json:"grade"`
}
