package catalog

// NavItem is one sidebar entry.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Module is one dashboard tile.
type Module struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Stats       map[string]any `json:"stats"`
	Color       string         `json:"color"`
	Category    string         `json:"category"`
}

// Stat is one precomputed stat card.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Up     bool   `json:"up"`
}

// PageConfig is the title/subtitle pair rendered by the header for a
// sidebar section.
type PageConfig struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
