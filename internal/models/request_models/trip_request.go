package request_models

// TripRequest is bound from the planner form or from the JSON API.
type TripRequest struct {
	Destination string `form:"destination" json:"destination"`
	StartDate   string `form:"start_date" json:"start_date"`
	EndDate     string `form:"end_date" json:"end_date"`
	Interests   string `form:"interests" json:"interests"`
	Budget      string `form:"budget" json:"budget"`

	// Download is set when the form carried a "download" field, whatever its value.
	Download bool `form:"-" json:"-"`
}
