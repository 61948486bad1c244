package user

// UserRepo serves the static account rows.
type UserRepo struct {
	rows []User
}

// NewUserRepo creates a repo seeded with the demo rows.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		rows: []User{
			{ID: "1", Name: "Alex Johnson", Email: "alex.johnson@example.com", Role: "Admin", Status: "Active"},
			{ID: "2", Name: "Sarah Williams", Email: "sarah.williams@example.com", Role: "Manager", Status: "Active"},
			{ID: "3", Name: "Marcus Chen", Email: "marcus.chen@example.com", Role: "Staff", Status: "Invited"},
			{ID: "4", Name: "Emma Thompson", Email: "emma.thompson@example.com", Role: "User", Status: "Active"},
			{ID: "5", Name: "Jordan Davis", Email: "jordan.davis@example.com", Role: "Staff", Status: "Active"},
			{ID: "6", Name: "Priya Patel", Email: "priya.patel@example.com", Role: "Manager", Status: "Suspended"},
			{ID: "7", Name: "James Wilson", Email: "james.wilson@example.com", Role: "User", Status: "Active"},
			{ID: "8", Name: "Olivia Martinez", Email: "olivia.martinez@example.com", Role: "Admin", Status: "Active"},
		},
	}
}

// List returns every row in seed order.
func (r *UserRepo) List() []User {
	return r.rows
}
