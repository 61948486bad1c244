package analytics

// maxBarHeightPx is the pixel height the tallest bar renders at; every other
// bar scales linearly relative to it.
const maxBarHeightPx = 200

var analyticsStats = []Stat{
	{Label: "Total Placements", Value: "847", Change: "+23%", Up: true},
	{Label: "Avg. Time to Employment", Value: "12 wks", Change: "-8%", Up: true},
	{Label: "Retention Rate (6mo)", Value: "89%", Change: "+5%", Up: true},
}

var chartData = []int{65, 78, 52, 89, 95, 72, 88, 94, 76, 82, 91, 97}

var chartLabels = []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}

// AnalyticsService serves the KPI cards and the employment outcome chart.
type AnalyticsService struct{}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// Stats returns the three KPI cards.
func (s *AnalyticsService) Stats() []Stat {
	return analyticsStats
}

// Chart returns the monthly chart with bar heights normalized against the
// dataset maximum. No axis scaling happens beyond this linear normalization.
func (s *AnalyticsService) Chart() Chart {
	return Chart{
		Title: "Employment Outcomes by Month",
		Bars:  NormalizeBars(chartData, chartLabels),
	}
}

// NormalizeBars computes pixel heights as value/max of the input dataset,
// scaled to the configured maximum height. An empty or all-zero dataset
// yields no bars higher than zero.
func NormalizeBars(data []int, labels []string) []Bar {
	max := 0
	for _, v := range data {
		if v > max {
			max = v
		}
	}

	bars := make([]Bar, len(data))
	for i, v := range data {
		bar := Bar{Value: v}
		if i < len(labels) {
			bar.Label = labels[i]
		}
		if max > 0 {
			bar.HeightPx = float64(v) / float64(max) * maxBarHeightPx
		}
		bars[i] = bar
	}

	return bars
}
