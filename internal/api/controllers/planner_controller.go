package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ait/internal/models/request_models"
	"ait/internal/models/response_models"
	"ait/internal/services"
	"ait/pkg/utils"
)

const msgPDFFailed = "We could not build your PDF right now. Please try again."

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	pdfService     services.PDFServiceInterface
	logger         *zap.Logger
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	pdfService services.PDFServiceInterface,
	logger *zap.Logger,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		pdfService:     pdfService,
		logger:         logger.Named("planner_controller"),
	}
}

func (p *PlannerController) ShowForm(c *gin.Context) {
	p.renderPlanner(c, http.StatusOK, request_models.TripRequest{}, nil, "")
}

// PlanHandler serves the form POST: an HTML plan, or trip_plan.pdf when the form carried "download".
func (p *PlannerController) PlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBind(&req); err != nil {
		p.renderPlanner(c, http.StatusBadRequest, req, nil, "Please check the trip details and try again.")
		return
	}
	_, req.Download = c.GetPostForm("download")

	plan, err := p.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			p.renderPlanner(c, http.StatusBadRequest, req, nil, utils.UserMessage(err))
			return
		}
		p.logger.Error("planning failed", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		renderError(c, http.StatusInternalServerError, "We could not plan your trip right now.", "/planner/")
		return
	}

	if req.Download {
		p.sendPDF(c, plan)
		return
	}
	p.renderPlanner(c, http.StatusOK, req, plan, "")
}

// CreateItineraryHandler is the JSON flavour of the planner.
func (p *PlannerController) CreateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary created successfully")
}

func (p *PlannerController) sendPDF(c *gin.Context, plan *response_models.TripPlan) {
	out, err := p.pdfService.RenderItinerary(services.ItineraryDocument{
		Destination: plan.Destination,
		Itinerary:   plan.Itinerary,
		Budget:      plan.Budget,
	})
	if err != nil {
		p.logger.Error("pdf rendering failed", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		renderError(c, http.StatusInternalServerError, msgPDFFailed, "/planner/")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, services.PDFContentType, out.Content)
}

func (p *PlannerController) renderPlanner(c *gin.Context, code int, form request_models.TripRequest, plan *response_models.TripPlan, errMsg string) {
	c.HTML(code, "planner.html", page("Trip Planner", "planner", gin.H{
		"Form":  form,
		"Plan":  plan,
		"Error": errMsg,
	}))
}
