package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ait/internal/models/response_models"
)

func itineraryOf(days, itemsPerDay int) response_models.Itinerary {
	it := response_models.Itinerary{Source: response_models.SourceAI}
	for d := 1; d <= days; d++ {
		day := response_models.Day{Header: fmt.Sprintf("Day %d - Thursday, 01 January 2026", d)}
		for i := 1; i <= itemsPerDay; i++ {
			day.Items = append(day.Items, fmt.Sprintf("Food: stop %d", i))
		}
		it.Days = append(it.Days, day)
	}
	return it
}

func TestPDFService_RenderItinerary(t *testing.T) {
	svc := NewPDFService()

	out, err := svc.RenderItinerary(ItineraryDocument{
		Destination: "Goa",
		Itinerary:   itineraryOf(3, 2),
		Budget:      EstimateBudget("middle", 3),
	})

	require.NoError(t, err)
	assert.Equal(t, PDFFilename, out.Filename)
	assert.Equal(t, 1, out.Pages)
	assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF-")))
}

func TestPDFService_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		items     int
		wantPages int
	}{
		{name: "ten lines", days: 2, items: 4, wantPages: 1},
		{name: "36 lines and the budget fit one page", days: 2, items: 17, wantPages: 1},
		{name: "budget line spills over", days: 2, items: 18, wantPages: 2},
		{name: "line 39 opens page two", days: 3, items: 12, wantPages: 2},
		{name: "hundred lines", days: 10, items: 9, wantPages: 3},
	}

	svc := NewPDFService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.RenderItinerary(ItineraryDocument{
				Destination: "Goa",
				Itinerary:   itineraryOf(tt.days, tt.items),
				Budget:      EstimateBudget("budget", tt.days),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, out.Pages)
		})
	}
}

func TestPDFService_NonLatinTextDoesNotFail(t *testing.T) {
	it := response_models.Itinerary{Days: []response_models.Day{{
		Header: "Day 1 - Thursday, 01 January 2026",
		Items:  []string{"Café Mondegar", "चारमीनार", "🍛 Biryani"},
	}}}

	out, err := NewPDFService().RenderItinerary(ItineraryDocument{Itinerary: it, Budget: EstimateBudget("", 1)})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Pages)
}

func TestBudgetLine(t *testing.T) {
	assert.Equal(t, "Estimated Budget: INR 30000 (INR 10000/day x 3 days)", budgetLine(EstimateBudget("middle", 3)))
	assert.Equal(t, "Trip Itinerary: Your Trip", tripTitle(" "))
}
