package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"ait/internal/models/response_models"
	"ait/pkg/utils"
)

const (
	PDFFilename    = "trip_plan.pdf"
	PDFContentType = "application/pdf"

	// Layout in points, measured from the top edge of an A4 page.
	pdfMarginX     = 40.0
	pdfTitleY      = 40.0
	pdfBodyStartY  = 80.0
	pdfPageStartY  = 60.0
	pdfBottomLimit = 80.0
	pdfLineHeight  = 18.0
	pdfBudgetGap   = 20.0
	pdfIconWidth   = 16.0
)

type PDFServiceInterface interface {
	RenderItinerary(doc ItineraryDocument) (*RenderedPDF, error)
}

// ItineraryDocument is the input of one PDF rendering.
type ItineraryDocument struct {
	Destination string
	Itinerary   response_models.Itinerary
	Budget      response_models.BudgetEstimate
}

type RenderedPDF struct {
	Filename string
	Pages    int
	Content  []byte
}

type PDFService struct{}

func NewPDFService() PDFServiceInterface {
	return &PDFService{}
}

// RenderItinerary lays the itinerary out line by line and starts a new page whenever the
// cursor crosses the bottom margin. Any library failure, including a panic, comes back
// as utils.ErrRenderingFailure.
func (s *PDFService) RenderItinerary(doc ItineraryDocument) (out *RenderedPDF, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", utils.ErrRenderingFailure, r)
		}
	}()

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(tripTitle(doc.Destination), true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - pdfBottomLimit

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pdfMarginX, pdfTitleY, tr(tripTitle(doc.Destination)))

	y := pdfBodyStartY
	newPageIfFull := func() {
		if y > limit {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 11)
			y = pdfPageStartY
		}
	}

	for _, day := range doc.Itinerary.Days {
		for i, line := range day.Lines() {
			newPageIfFull()
			if i == 0 {
				drawLine(pdf, tr, IconCalendar, line, "B", 14, y)
			} else {
				drawLine(pdf, tr, IconFor(line), line, "", 11, y)
			}
			y += pdfLineHeight
		}
	}

	y += pdfBudgetGap
	newPageIfFull()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfMarginX, y, tr(budgetLine(doc.Budget)))

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", utils.ErrRenderingFailure, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRenderingFailure, err)
	}

	return &RenderedPDF{
		Filename: PDFFilename,
		Pages:    pdf.PageCount(),
		Content:  buf.Bytes(),
	}, nil
}

func drawLine(pdf *gofpdf.Fpdf, tr func(string) string, icon Icon, text, style string, size, y float64) {
	pdf.SetFont("ZapfDingbats", "", size-2)
	pdf.Text(pdfMarginX, y, icon.Glyph)
	pdf.SetFont("Helvetica", style, size)
	pdf.Text(pdfMarginX+pdfIconWidth, y, tr(text))
}

func tripTitle(destination string) string {
	if strings.TrimSpace(destination) == "" {
		destination = "Your Trip"
	}
	return "Trip Itinerary: " + destination
}

func budgetLine(b response_models.BudgetEstimate) string {
	return fmt.Sprintf("Estimated Budget: %s %d (%s %d/day x %d days)",
		b.Currency, b.Total, b.Currency, b.DailyRate, b.TotalDays)
}
