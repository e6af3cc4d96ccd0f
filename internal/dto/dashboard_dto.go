package dto

// AdminDashboardResponse is the aggregate snapshot shown on the admin panel.
type AdminDashboardResponse struct {
	Courses            int64 `json:"courses"`
	Students           int64 `json:"students"`
	ApprovedProfessors int64 `json:"approved_professors"`
	WaitingProfessors  int64 `json:"waiting_professors"`
	PendingRequests    int64 `json:"pending_requests"`
}
