package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/streetleague/skillbuilder/internal/upstream"
)

var ErrSectionNotFound = errors.New("training section not found")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TrainingService backs the training-curriculum sub-flow: the session and
// attendance editors (rows fetched from the configured upstreams) and the
// tutorial video gallery.
type TrainingService struct {
	client        *upstream.Client
	sessionsURL   string
	attendanceURL string
}

// NewTrainingService constructs the service around the shared upstream
// client and the per-editor source URLs.
func NewTrainingService(client *upstream.Client, sessionsURL, attendanceURL string) *TrainingService {
	return &TrainingService{
		client:        client,
		sessionsURL:   sessionsURL,
		attendanceURL: attendanceURL,
	}
}

// ResolveSection canonicalizes a path segment into a section id. Both
// spellings of the tutorial and attendance segments are accepted.
func (s *TrainingService) ResolveSection(segment string) (string, error) {
	switch segment {
	case "sessions":
		return SectionSessions, nil
	case "online-tutorials", "tutorials":
		return SectionTutorials, nil
	case "attendance", "attendees":
		return SectionAttendance, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrSectionNotFound, segment)
	}
}

// ListSessions fetches the upstream rows and maps each through the total
// session mapping.
func (s *TrainingService) ListSessions(ctx context.Context) ([]SessionRow, error) {
	raws, err := s.fetchRows(ctx, s.sessionsURL)
	if err != nil {
		return nil, err
	}

	rows := make([]SessionRow, 0, len(raws))
	for _, raw := range raws {
		row, err := MapSessionRow(raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ListAttendance fetches the upstream rows and maps each through the total
// attendance mapping.
func (s *TrainingService) ListAttendance(ctx context.Context) ([]AttendanceRow, error) {
	raws, err := s.fetchRows(ctx, s.attendanceURL)
	if err != nil {
		return nil, err
	}

	rows := make([]AttendanceRow, 0, len(raws))
	for _, raw := range raws {
		row, err := MapAttendanceRow(raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// AddSession validates the modal payload and logs it. No write API exists
// yet, so the payload goes nowhere else.
func (s *TrainingService) AddSession(req *AddSessionRequest) (*Ack, error) {
	if err := validateAddSession(req); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	slog.Info("Session submitted",
		slog.String("id", id),
		slog.String("title", req.Title),
		slog.Time("date_from", req.DateFrom),
		slog.Time("date_to", req.DateTo),
		slog.String("time", req.Time),
		slog.String("location", req.Location),
		slog.String("staff", req.Staff))

	return &Ack{ID: id, Logged: true}, nil
}

// AddAttendee validates the single-attendee modal payload and logs it.
func (s *TrainingService) AddAttendee(req *AddAttendeeRequest) (*Ack, error) {
	if err := validateAddAttendee(req); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	slog.Info("Attendee submitted",
		slog.String("id", id),
		slog.String("session_id", req.SessionID),
		slog.String("participant", req.ParticipantName),
		slog.String("status", req.Status))

	return &Ack{ID: id, Logged: true}, nil
}

// AvailableAttendees returns the static pick list for the multi-select
// modal variant.
func (s *TrainingService) AvailableAttendees() []AvailableAttendee {
	return availableAttendees
}

// MarkAttendance validates the behaviour note category and logs the marks.
func (s *TrainingService) MarkAttendance(req *MarkAttendanceRequest) (*Ack, error) {
	if len(req.ParticipantIDs) == 0 {
		return nil, errors.New("at least one participant is required")
	}
	if !slices.Contains(BehaviourNoteCategories, req.BehaviourNote) {
		return nil, fmt.Errorf("unknown behaviour note category: %q", req.BehaviourNote)
	}

	id := uuid.New().String()
	slog.Info("Attendance marked",
		slog.String("id", id),
		slog.Int("participants", len(req.ParticipantIDs)),
		slog.String("level", req.Level),
		slog.String("behaviour_note", req.BehaviourNote))

	return &Ack{ID: id, Logged: true}, nil
}

// Videos returns the tutorial catalog with derived embed URLs.
func (s *TrainingService) Videos() []Video {
	out := make([]Video, len(videos))
	copy(out, videos)
	for i := range out {
		out[i].EmbedURL = EmbedURL(out[i].VideoURL)
	}

	return out
}

func (s *TrainingService) fetchRows(ctx context.Context, url string) ([]map[string]any, error) {
	status, body, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !upstream.IsSuccess(status) {
		return nil, fmt.Errorf("upstream returned status %d", status)
	}

	var raws []map[string]any
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode upstream rows: %w", err)
	}

	return raws, nil
}

func validateAddSession(req *AddSessionRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return errors.New("title is required")
	case req.DateFrom.IsZero():
		return errors.New("start date is required")
	case req.DateTo.IsZero():
		return errors.New("end date is required")
	case req.DateTo.Before(req.DateFrom):
		return errors.New("end date must not be before start date")
	case strings.TrimSpace(req.Time) == "":
		return errors.New("time is required")
	case strings.TrimSpace(req.Location) == "":
		return errors.New("location is required")
	case strings.TrimSpace(req.Staff) == "":
		return errors.New("staff name is required")
	}

	return nil
}

func validateAddAttendee(req *AddAttendeeRequest) error {
	switch {
	case strings.TrimSpace(req.SessionID) == "":
		return errors.New("session ID is required")
	case strings.TrimSpace(req.ParticipantName) == "":
		return errors.New("participant name is required")
	case !emailPattern.MatchString(req.Email):
		return errors.New("invalid email address")
	case strings.TrimSpace(req.StartTime) == "":
		return errors.New("start time is required")
	}

	switch req.Status {
	case "Present", "Late", "Absent":
	default:
		return errors.New("status must be Present, Late, or Absent")
	}

	return nil
}
