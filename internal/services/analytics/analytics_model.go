package analytics

// Stat is one KPI card.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Up     bool   `json:"up"`
}

// Bar is one rendered chart bar. HeightPx is the bar's pixel height after
// linear normalization against the tallest value.
type Bar struct {
	Label    string  `json:"label"`
	Value    int     `json:"value"`
	HeightPx float64 `json:"heightPx"`
}

// Chart is the monthly outcome chart payload.
type Chart struct {
	Title string `json:"title"`
	Bars  []Bar  `json:"bars"`
}
