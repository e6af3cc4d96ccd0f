package dto

import (
	"time"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// CourseRequestCreate is a professor asking to teach a course.
type CourseRequestCreate struct {
	CourseName string `json:"course_name" validate:"required"`
}

// CourseRequestResolve is the admin decision on a pending request.
type CourseRequestResolve struct {
	ProfessorName string `json:"professor_name" validate:"required"`
	CourseName    string `json:"course_name" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

// CourseRequestResponse is the typed request row.
type CourseRequestResponse struct {
	ProfessorName string               `json:"professor_name"`
	CourseName    string               `json:"course_name"`
	Status        models.RequestStatus `json:"status"`
	RequestedAt   time.Time            `json:"requested_at"`
}

// NewCourseRequestResponse maps a request row onto its response shape.
func NewCourseRequestResponse(request models.CourseRequest) CourseRequestResponse {
	return CourseRequestResponse{
		ProfessorName: request.ProfessorName,
		CourseName:    request.CourseName,
		Status:        request.Status,
		RequestedAt:   request.RequestedAt,
	}
}
