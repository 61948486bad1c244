package settings

import "sync"

var integrations = []Integration{
	{Name: "CRM System", Status: "Connected", Icon: "Handshake"},
	{Name: "Data Integration Hub", Status: "Connected", Icon: "RefreshCw"},
	{Name: "External Job Board", Status: "Not configured", Icon: "Plug"},
}

// SettingsService holds the notification toggles in process memory only;
// they reset on restart, matching the demo behaviour of the settings panel.
type SettingsService struct {
	mu            sync.RWMutex
	notifications Notifications
}

// NewSettingsService constructs the service with the default toggles.
func NewSettingsService() *SettingsService {
	return &SettingsService{
		notifications: Notifications{
			NewParticipants:  true,
			WeeklyReports:    true,
			CompletionAlerts: false,
		},
	}
}

// Get returns the full settings payload.
func (s *SettingsService) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Settings{
		Organisation: Organisation{
			Name:         "Street League",
			ContactEmail: "admin@streetleague.co.uk",
		},
		Notifications: s.notifications,
		Integrations:  integrations,
	}
}

// UpdateNotifications replaces the notification toggles and returns the new
// value.
func (s *SettingsService) UpdateNotifications(n Notifications) Notifications {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = n
	return s.notifications
}
