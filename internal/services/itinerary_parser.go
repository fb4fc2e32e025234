package services

import (
	"strings"
	"unicode"

	"ait/internal/models/response_models"
)

const dayMarker = "Day "

type parserState int

const (
	awaitingDayHeader parserState = iota
	inDayBody
)

// Leading decorations models add despite being told not to.
var lineDecorations = []string{"#", "**", "* ", "- ", "• "}

// ParseItinerary turns raw model output into ordered Day entries.
//
// Lines before the first header are dropped, and so is a header that is not followed by at
// least one body line. Empty or unusable text yields an empty slice, which callers treat as
// the signal to fall back.
func ParseItinerary(raw string) []response_models.Day {
	var (
		days    []response_models.Day
		current response_models.Day
		state   = awaitingDayHeader
	)

	flush := func() {
		if state == inDayBody && len(current.Items) > 0 {
			days = append(days, current)
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = cleanLine(line)
		if line == "" {
			continue
		}

		if isDayHeader(line) {
			flush()
			current = response_models.Day{Header: line}
			state = inDayBody
			continue
		}

		switch state {
		case awaitingDayHeader:
			// preamble such as "Here is your itinerary:"
		case inDayBody:
			current.Items = append(current.Items, line)
		}
	}
	flush()

	return days
}

// isDayHeader accepts "Day " followed by a day number, so body lines such as
// "Day trip to Old Goa" are not mistaken for a new block.
func isDayHeader(line string) bool {
	if !strings.HasPrefix(line, dayMarker) {
		return false
	}
	rest := strings.TrimLeft(line[len(dayMarker):], " ")
	return rest != "" && unicode.IsDigit(rune(rest[0]))
}

func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	for {
		trimmed := s
		for _, d := range lineDecorations {
			trimmed = strings.TrimPrefix(trimmed, d)
		}
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == s {
			break
		}
		s = trimmed
	}
	return strings.TrimSpace(strings.TrimSuffix(s, "**"))
}
