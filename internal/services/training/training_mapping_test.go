package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSessionRowFullRow(t *testing.T) {
	row, err := MapSessionRow(map[string]any{
		"session_id":    "S-100",
		"session_type":  "Workshop",
		"data_source":   "Jane Coach",
		"student_count": 12,
	})
	require.NoError(t, err)

	assert.Equal(t, "S-100", row.SessionID)
	assert.Equal(t, "Workshop", row.LessonPlan)
	assert.Equal(t, "Jane Coach", row.Staff)
	assert.Equal(t, 12, row.StudentCount)
}

func TestMapSessionRowDefaults(t *testing.T) {
	row, err := MapSessionRow(map[string]any{})
	require.NoError(t, err)

	assert.Empty(t, row.SessionID)
	assert.Empty(t, row.LessonPlan)
	assert.Empty(t, row.Staff)
	assert.Equal(t, defaultStudentCount, row.StudentCount)
}

func TestMapSessionRowWeakTyping(t *testing.T) {
	// Numeric ids from JSON land as float64 and still map into strings.
	row, err := MapSessionRow(map[string]any{
		"session_id":    float64(42),
		"student_count": float64(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "42", row.SessionID)
	assert.Equal(t, 7, row.StudentCount)
}

func TestMapSessionRowZeroCountIsNotMissing(t *testing.T) {
	row, err := MapSessionRow(map[string]any{"student_count": 0})
	require.NoError(t, err)
	assert.Equal(t, 0, row.StudentCount)
}

func TestMapAttendanceRowDefaults(t *testing.T) {
	row, err := MapAttendanceRow(map[string]any{})
	require.NoError(t, err)

	assert.Empty(t, row.ID)
	assert.Empty(t, row.SessionID)
	assert.Empty(t, row.ParticipantName)
	assert.Empty(t, row.Email)
	assert.Empty(t, row.StartTime)
	assert.Equal(t, defaultAttendanceStatus, row.Status)
}

func TestMapAttendanceRowStatusEnum(t *testing.T) {
	for _, status := range []string{"Present", "Late", "Absent"} {
		row, err := MapAttendanceRow(map[string]any{"status": status})
		require.NoError(t, err)
		assert.Equal(t, status, row.Status)
	}

	row, err := MapAttendanceRow(map[string]any{"status": "Vanished"})
	require.NoError(t, err)
	assert.Equal(t, defaultAttendanceStatus, row.Status)
}

func TestMapAttendanceRowIgnoresUnknownFields(t *testing.T) {
	row, err := MapAttendanceRow(map[string]any{
		"participant_name": "John Smith",
		"unrelated":        map[string]any{"nested": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", row.ParticipantName)
}
