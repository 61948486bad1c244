package training

import "time"

// Section identifiers after path-segment dispatch.
const (
	SectionSessions   = "sessions"
	SectionTutorials  = "tutorials"
	SectionAttendance = "attendance"
)

// SessionRow is the fixed row shape the session editor renders.
type SessionRow struct {
	SessionID    string `json:"sessionId"`
	LessonPlan   string `json:"lessonPlan"`
	Staff        string `json:"staff"`
	StudentCount int    `json:"studentCount"`
}

// AddSessionRequest is the "Add Session" modal payload.
type AddSessionRequest struct {
	Title    string    `json:"title"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	Staff    string    `json:"staff"`
}

// AttendanceRow is the fixed row shape the attendance editor renders.
type AttendanceRow struct {
	ID              string `json:"id"`
	SessionID       string `json:"sessionId"`
	ParticipantName string `json:"participantName"`
	Email           string `json:"email"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// AddAttendeeRequest is the single-attendee modal payload.
type AddAttendeeRequest struct {
	SessionID       string `json:"sessionId"`
	ParticipantName string `json:"participantName"`
	Email           string `json:"email"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// AvailableAttendee is one entry of the static pick list used by the
// multi-select variant of the modal.
type AvailableAttendee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MarkAttendanceRequest is the "Mark Attendance" modal payload: ticked
// participants plus a free-text level and one behaviour note category.
type MarkAttendanceRequest struct {
	ParticipantIDs []string `json:"participantIds"`
	Level          string   `json:"level"`
	BehaviourNote  string   `json:"behaviourNote"`
}

// Video is one tutorial gallery entry.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Instructor  string `json:"instructor"`
	VideoURL    string `json:"videoUrl"`
	EmbedURL    string `json:"embedUrl"`
}

// Ack acknowledges a modal submission. The editors only log intended
// changes; no write API is called.
type Ack struct {
	ID     string `json:"id"`
	Logged bool   `json:"logged"`
}
