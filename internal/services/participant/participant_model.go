package participant

// Participant is one demo roster row. Progress is a 0-100 percentage.
type Participant struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Programme string `json:"programme"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
}
