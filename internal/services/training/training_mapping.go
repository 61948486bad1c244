package training

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// defaultStudentCount fills the student count when the upstream row carries
// none. The original editor substituted a random filler here; a fixed,
// documented default keeps the mapping total and testable.
const defaultStudentCount = 18

// defaultAttendanceStatus fills unrecognized or missing status values.
const defaultAttendanceStatus = "Present"

// sessionSource is the upstream field set the session mapping reads.
type sessionSource struct {
	SessionID    string `mapstructure:"session_id"`
	SessionType  string `mapstructure:"session_type"`
	DataSource   string `mapstructure:"data_source"`
	StudentCount *int   `mapstructure:"student_count"`
}

// MapSessionRow converts one arbitrary upstream object into a SessionRow.
// Defaults per missing field: every string field maps to the empty string,
// student_count maps to defaultStudentCount.
func MapSessionRow(raw map[string]any) (SessionRow, error) {
	var src sessionSource
	if err := weakDecode(raw, &src); err != nil {
		return SessionRow{}, fmt.Errorf("failed to map session row: %w", err)
	}

	row := SessionRow{
		SessionID:    src.SessionID,
		LessonPlan:   src.SessionType,
		Staff:        src.DataSource,
		StudentCount: defaultStudentCount,
	}
	if src.StudentCount != nil {
		row.StudentCount = *src.StudentCount
	}

	return row, nil
}

// attendanceSource is the upstream field set the attendance mapping reads.
type attendanceSource struct {
	ID              string `mapstructure:"id"`
	SessionID       string `mapstructure:"session_id"`
	ParticipantName string `mapstructure:"participant_name"`
	Email           string `mapstructure:"email"`
	StartTime       string `mapstructure:"start_time"`
	Status          string `mapstructure:"status"`
}

// MapAttendanceRow converts one arbitrary upstream object into an
// AttendanceRow. Defaults per missing field: string fields map to the empty
// string, status falls back to defaultAttendanceStatus unless it is one of
// Present, Late, Absent.
func MapAttendanceRow(raw map[string]any) (AttendanceRow, error) {
	var src attendanceSource
	if err := weakDecode(raw, &src); err != nil {
		return AttendanceRow{}, fmt.Errorf("failed to map attendance row: %w", err)
	}

	status := src.Status
	switch status {
	case "Present", "Late", "Absent":
	default:
		status = defaultAttendanceStatus
	}

	return AttendanceRow{
		ID:              src.ID,
		SessionID:       src.SessionID,
		ParticipantName: src.ParticipantName,
		Email:           src.Email,
		StartTime:       src.StartTime,
		Status:          status,
	}, nil
}

// weakDecode decodes with weak typing so numeric ids arriving as JSON
// numbers still land in string fields.
func weakDecode(raw map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}
