package response_models

type ItinerarySource string

const (
	SourceAI       ItinerarySource = "ai"
	SourceCache    ItinerarySource = "cache"
	SourceFallback ItinerarySource = "fallback"
)

// Day is one itinerary block. Header always starts with "Day ".
type Day struct {
	Header string   `json:"header"`
	Items  []string `json:"items"`
}

// Lines returns the header followed by the items, the shape the PDF renderer walks.
func (d Day) Lines() []string {
	lines := make([]string, 0, len(d.Items)+1)
	lines = append(lines, d.Header)
	return append(lines, d.Items...)
}

type Itinerary struct {
	Days   []Day           `json:"days"`
	Source ItinerarySource `json:"source"`
}

func (i Itinerary) IsFallback() bool {
	return i.Source == SourceFallback
}

type BudgetEstimate struct {
	Tier      string `json:"tier"`
	DailyRate int    `json:"daily_rate"`
	TotalDays int    `json:"total_days"`
	Total     int    `json:"total"`
	Currency  string `json:"currency"`
}

// TripPlan is everything one planner request produces; it is never stored.
type TripPlan struct {
	Destination          string         `json:"destination"`
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	TotalDays            int            `json:"total_days"`
	Interests            string         `json:"interests"`
	InterestsDescription string         `json:"interests_description"`
	Budget               BudgetEstimate `json:"budget"`
	Itinerary            Itinerary      `json:"itinerary"`
}
