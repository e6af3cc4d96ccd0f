package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/handler"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/service"
)

type mockRequestService struct {
	pending      []dto.CourseRequestResponse
	resolveErr   error
	lastDecision string
}

func (m *mockRequestService) Submit(_ context.Context, _, _ string) error { return nil }

func (m *mockRequestService) ListPending(_ context.Context) ([]dto.CourseRequestResponse, error) {
	return m.pending, nil
}

func (m *mockRequestService) Resolve(_ context.Context, _, _, status string) error {
	m.lastDecision = status
	return m.resolveErr
}

func (m *mockRequestService) ListForProfessor(_ context.Context, _ string) ([]dto.CourseRequestResponse, error) {
	return nil, nil
}

type mockDashboardService struct {
	invalidated int
}

func (m *mockDashboardService) GetDashboard(_ context.Context) (dto.AdminDashboardResponse, error) {
	return dto.AdminDashboardResponse{}, nil
}

func (m *mockDashboardService) Invalidate(_ context.Context) { m.invalidated++ }

func newAdminRequestApp(requests *mockRequestService, dashboard *mockDashboardService) *fiber.App {
	app := fiber.New()
	h := handler.NewAdminRequestHandler(requests, dashboard, validator.New(validator.WithRequiredStructEnabled()), testLogger())
	h.Register(app.Group("/api/v1/admin"))
	return app
}

func TestAdminRequestHandlerListPending(t *testing.T) {
	requests := &mockRequestService{pending: []dto.CourseRequestResponse{
		{ProfessorName: "Carol Danes", CourseName: "Databases", Status: models.RequestPending, RequestedAt: time.Now()},
	}}
	app := newAdminRequestApp(requests, &mockDashboardService{})

	req := jsonRequest(t, http.MethodGet, "/api/v1/admin/requests/pending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                        `json:"success"`
		Data    []dto.CourseRequestResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Len(t, body.Data, 1)
	require.Equal(t, "Databases", body.Data[0].CourseName)
}

func TestAdminRequestHandlerResolve(t *testing.T) {
	requests := &mockRequestService{}
	dashboard := &mockDashboardService{}
	app := newAdminRequestApp(requests, dashboard)

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/requests/resolve", dto.CourseRequestResolve{
		ProfessorName: "Carol Danes", CourseName: "Databases", Status: "accepted",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "accepted", requests.lastDecision)
	require.Equal(t, 1, dashboard.invalidated)
}

func TestAdminRequestHandlerResolveErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid decision", service.ErrInvalidDecision, fiber.StatusBadRequest},
		{"unknown request", service.ErrRequestNotFound, fiber.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dashboard := &mockDashboardService{}
			app := newAdminRequestApp(&mockRequestService{resolveErr: tc.err}, dashboard)

			req := jsonRequest(t, http.MethodPost, "/api/v1/admin/requests/resolve", dto.CourseRequestResolve{
				ProfessorName: "Carol Danes", CourseName: "Databases", Status: "whatever",
			})
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			require.Zero(t, dashboard.invalidated)
		})
	}
}

func TestAdminRequestHandlerResolveMissingFields(t *testing.T) {
	app := newAdminRequestApp(&mockRequestService{}, &mockDashboardService{})

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/requests/resolve", dto.CourseRequestResolve{CourseName: "Databases"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
