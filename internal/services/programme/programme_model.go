package programme

// Programme is one demo programme card. Completion is a percentage.
type Programme struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Participants int    `json:"participants"`
	Completion   int    `json:"completion"`
	Status       string `json:"status"`
}
