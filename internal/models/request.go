package models

import "time"

// RequestStatus is the state of a professor course request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// TerminalOutcome reports whether the status is a valid admin decision.
func (s RequestStatus) TerminalOutcome() bool {
	return s == RequestAccepted || s == RequestRejected
}

// CourseRequest is a professor-initiated request to teach a course. The pair
// is keyed by display names rather than ids, matching the store's unique key;
// resubmitting a resolved pair reopens it as pending.
type CourseRequest struct {
	ID            uint          `gorm:"column:id;primaryKey" json:"id"`
	ProfessorName string        `gorm:"column:professor_name;size:100;not null;uniqueIndex:unique_request" json:"professor_name"`
	CourseName    string        `gorm:"column:course_name;size:150;not null;uniqueIndex:unique_request" json:"course_name"`
	Status        RequestStatus `gorm:"column:status;size:20;default:pending" json:"status"`
	RequestedAt   time.Time     `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
}

func (CourseRequest) TableName() string { return "professor_course_requests" }
