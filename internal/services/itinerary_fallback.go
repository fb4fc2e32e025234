package services

import (
	"fmt"
	"strings"

	"ait/internal/models/response_models"
	"ait/pkg/utils"
)

// FallbackItinerary returns exactly dates.TotalDays generic days. It is used whenever the
// generative backend is unavailable or its answer could not be parsed.
func FallbackItinerary(destination string, dates DateRange) []response_models.Day {
	place := strings.TrimSpace(destination)
	if place == "" {
		place = "the city"
	}

	days := make([]response_models.Day, 0, dates.TotalDays)
	for i := 0; i < dates.TotalDays; i++ {
		days = append(days, response_models.Day{
			Header: utils.FormatDayHeader(i+1, dates.Day(i)),
			Items: []string{
				fmt.Sprintf("Visit popular attractions in %s.", place),
				fmt.Sprintf("Try a famous local food place in %s.", place),
			},
		})
	}
	return days
}
