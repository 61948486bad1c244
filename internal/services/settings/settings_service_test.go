package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	got := NewSettingsService().Get()

	assert.Equal(t, "Street League", got.Organisation.Name)
	assert.Equal(t, "admin@streetleague.co.uk", got.Organisation.ContactEmail)

	assert.True(t, got.Notifications.NewParticipants)
	assert.True(t, got.Notifications.WeeklyReports)
	assert.False(t, got.Notifications.CompletionAlerts)

	require.Len(t, got.Integrations, 3)
	assert.Equal(t, "CRM System", got.Integrations[0].Name)
}

func TestUpdateNotifications(t *testing.T) {
	svc := NewSettingsService()

	updated := svc.UpdateNotifications(Notifications{CompletionAlerts: true})
	assert.False(t, updated.NewParticipants)
	assert.True(t, updated.CompletionAlerts)

	// The update sticks for subsequent reads.
	assert.Equal(t, updated, svc.Get().Notifications)

	// But state is per instance, never persisted.
	assert.True(t, NewSettingsService().Get().Notifications.NewParticipants)
}
