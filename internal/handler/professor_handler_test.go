package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/handler"
	"github.com/campusdesk/campusdesk-api/internal/service"
)

type mockGradeService struct {
	uploadErr error
	uploaded  dto.GradeUploadRequest
	viewResp  dto.GradeResponse
	viewErr   error
}

func (m *mockGradeService) Upload(_ context.Context, req dto.GradeUploadRequest) error {
	m.uploaded = req
	return m.uploadErr
}

func (m *mockGradeService) View(_ context.Context, _ uint, _ string) (dto.GradeResponse, error) {
	return m.viewResp, m.viewErr
}

type capturingRequestService struct {
	mockRequestService
	submittedBy     string
	submittedCourse string
	submitErr       error
}

func (m *capturingRequestService) Submit(_ context.Context, professorName, courseName string) error {
	m.submittedBy = professorName
	m.submittedCourse = courseName
	return m.submitErr
}

func newProfessorApp(assignments *mockAssignmentService, grades *mockGradeService, requests *capturingRequestService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(5))
		c.Locals("user_role", "professor")
		c.Locals("user_name", "Carol Danes")
		return c.Next()
	})
	h := handler.NewProfessorHandler(assignments, &mockEnrollmentService{students: []string{"Alice Ray"}}, grades, requests, validator.New(validator.WithRequiredStructEnabled()), testLogger())
	h.Register(app.Group("/api/v1/professor"))
	return app
}

func TestProfessorHandlerMyCourses(t *testing.T) {
	app := newProfessorApp(&mockAssignmentService{courses: []string{"Databases"}}, &mockGradeService{}, &capturingRequestService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/professor/courses", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []string `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, []string{"Databases"}, body.Data)
}

func TestProfessorHandlerCourseStudents(t *testing.T) {
	app := newProfessorApp(&mockAssignmentService{}, &mockGradeService{}, &capturingRequestService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/professor/courses/Data%20Structures/students", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []string `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, []string{"Alice Ray"}, body.Data)
}

func TestProfessorHandlerUploadGrade(t *testing.T) {
	grades := &mockGradeService{}
	app := newProfessorApp(&mockAssignmentService{}, grades, &capturingRequestService{})

	req := jsonRequest(t, http.MethodPost, "/api/v1/professor/grades", dto.GradeUploadRequest{
		CourseName: "Databases", StudentID: 2, Grade: "A",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "A", grades.uploaded.Grade)
}

func TestProfessorHandlerUploadGradeNotEnrolled(t *testing.T) {
	app := newProfessorApp(&mockAssignmentService{}, &mockGradeService{uploadErr: service.ErrNotEnrolled}, &capturingRequestService{})

	req := jsonRequest(t, http.MethodPost, "/api/v1/professor/grades", dto.GradeUploadRequest{
		CourseName: "Databases", StudentID: 2, Grade: "A",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

// The request is always filed under the token's display name.
func TestProfessorHandlerSubmitRequestUsesTokenName(t *testing.T) {
	requests := &capturingRequestService{}
	app := newProfessorApp(&mockAssignmentService{}, &mockGradeService{}, requests)

	req := jsonRequest(t, http.MethodPost, "/api/v1/professor/requests", dto.CourseRequestCreate{CourseName: "Databases"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, "Carol Danes", requests.submittedBy)
	require.Equal(t, "Databases", requests.submittedCourse)
}

func TestProfessorHandlerSubmitRequestUnknownCourse(t *testing.T) {
	requests := &capturingRequestService{submitErr: service.ErrCourseNotFound}
	app := newProfessorApp(&mockAssignmentService{}, &mockGradeService{}, requests)

	req := jsonRequest(t, http.MethodPost, "/api/v1/professor/requests", dto.CourseRequestCreate{CourseName: "Ghost"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
