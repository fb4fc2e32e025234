package services

import (
	"fmt"
	"strings"

	"ait/pkg/utils"
)

const (
	allInterests     = "history, culture, temples, museums, nature, adventure, lakes, nightlife, food, shopping, hidden gems"
	defaultInterests = "popular attractions"

	plannerSystemPrompt = "You are a professional Indian travel planner. You answer with the itinerary only, in exactly the format you are given."
)

// TripPrompt holds the already validated inputs of one itinerary prompt.
type TripPrompt struct {
	Destination string
	Dates       DateRange
	Interests   string
	Budget      string
}

// DescribeInterests expands "all" into the fixed category list and defaults empty input.
func DescribeInterests(interests string) string {
	interests = strings.TrimSpace(interests)
	switch {
	case strings.EqualFold(interests, "all"):
		return allInterests
	case interests == "":
		return defaultInterests
	default:
		return interests
	}
}

// BuildItineraryPrompt renders the trip into an instruction whose output layout ParseItinerary relies on:
// "Day N - <Weekday>, <dd Month yyyy>" headers followed by one place, food stop or activity per line.
func BuildItineraryPrompt(p TripPrompt) string {
	start := utils.FormatLongDate(p.Dates.Start)
	end := utils.FormatLongDate(p.Dates.End)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a REAL, day-wise itinerary for %s.\n\n", p.Destination)

	b.WriteString("DETAILS:\n")
	fmt.Fprintf(&b, "- City: %s\n", p.Destination)
	fmt.Fprintf(&b, "- Start Date: %s\n", start)
	fmt.Fprintf(&b, "- End Date: %s\n", end)
	fmt.Fprintf(&b, "- Total Days: %d\n", p.Dates.TotalDays)
	fmt.Fprintf(&b, "- Traveller Interests: %s\n", p.Interests)
	fmt.Fprintf(&b, "- Budget Type: %s (budget / middle / rich)\n\n", p.Budget)

	b.WriteString("STRICT OUTPUT FORMAT (NO bullets, NO extra explanation, NO intro, NO outro):\n\n")
	for i := 0; i < min(p.Dates.TotalDays, 2); i++ {
		fmt.Fprintf(&b, "%s\n", utils.FormatDayHeader(i+1, p.Dates.Day(i)))
		b.WriteString("Attraction 1 (short description)\n")
		b.WriteString("Attraction 2 (short description)\n")
		b.WriteString("Food: Real restaurant / cafe / hotel with local food\n")
		b.WriteString("Attraction 3 (short description)\n")
		b.WriteString("Optional: Shopping place or lake / park\n\n")
	}

	b.WriteString("RULES:\n")
	fmt.Fprintf(&b, "- Write exactly %d day blocks, one per date between %s and %s.\n", p.Dates.TotalDays, start, end)
	b.WriteString("- Start every day block with a line of the form \"Day <number> - <Weekday>, <dd Month yyyy>\".\n")
	b.WriteString("- At least 4 REAL places per day (famous or good local spots), one per line.\n")
	b.WriteString("- Include at least one REAL food place (restaurant / cafe / hotel) per day, on a line starting with \"Food:\".\n")
	b.WriteString("- Include museums, lakes, shopping streets, etc. when suitable.\n")
	b.WriteString("- Do NOT add any headings like \"Itinerary\" or \"Summary\".\n")
	b.WriteString("- Do NOT include any Markdown, bullets, or numbering except the \"Day X - ...\" line.\n")
	return b.String()
}
