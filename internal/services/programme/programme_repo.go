package programme

// ProgrammeRepo serves the static programme cards.
type ProgrammeRepo struct {
	rows []Programme
}

// NewProgrammeRepo creates a repo seeded with the demo rows.
func NewProgrammeRepo() *ProgrammeRepo {
	return &ProgrammeRepo{
		rows: []Programme{
			{ID: 1, Name: "Academy", Participants: 342, Completion: 78, Status: "Active"},
			{ID: 2, Name: "Female Academy", Participants: 156, Completion: 82, Status: "Active"},
			{ID: 3, Name: "Functional Skills Academy", Participants: 234, Completion: 71, Status: "Active"},
			{ID: 4, Name: "Job Club", Participants: 189, Completion: 85, Status: "Active"},
			{ID: 5, Name: "Street Sports", Participants: 326, Completion: 69, Status: "Active"},
		},
	}
}

// List returns every row in seed order.
func (r *ProgrammeRepo) List() []Programme {
	return r.rows
}
