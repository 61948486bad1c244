package participant

// ParticipantRepo serves the static demo roster. There is no real backing
// store; rows reset on restart.
type ParticipantRepo struct {
	rows []Participant
}

// NewParticipantRepo creates a repo seeded with the demo rows.
func NewParticipantRepo() *ParticipantRepo {
	return &ParticipantRepo{
		rows: []Participant{
			{ID: 1, Name: "Alex Johnson", Programme: "Academy", Status: "Active", Progress: 75},
			{ID: 2, Name: "Sarah Williams", Programme: "Female Academy", Status: "Active", Progress: 60},
			{ID: 3, Name: "Marcus Chen", Programme: "Job Club", Status: "Completed", Progress: 100},
			{ID: 4, Name: "Emma Thompson", Programme: "Street Sports", Status: "Active", Progress: 45},
			{ID: 5, Name: "Jordan Davis", Programme: "Academy", Status: "Active", Progress: 82},
			{ID: 6, Name: "Priya Patel", Programme: "Functional Skills", Status: "Active", Progress: 55},
		},
	}
}

// List returns every row in seed order.
func (r *ParticipantRepo) List() []Participant {
	return r.rows
}
