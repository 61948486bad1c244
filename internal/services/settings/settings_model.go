package settings

// Notifications holds the three notification preference toggles.
type Notifications struct {
	NewParticipants  bool `json:"newParticipants"`
	WeeklyReports    bool `json:"weeklyReports"`
	CompletionAlerts bool `json:"completionAlerts"`
}

// Integration is one external system with its connection status string.
type Integration struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Icon   string `json:"icon"`
}

// Organisation holds the static organisation details shown on the settings
// panel.
type Organisation struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
}

// Settings is the full settings panel payload.
type Settings struct {
	Organisation  Organisation  `json:"organisation"`
	Notifications Notifications `json:"notifications"`
	Integrations  []Integration `json:"integrations"`
}
