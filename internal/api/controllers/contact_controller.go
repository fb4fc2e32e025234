package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ait/internal/models/request_models"
	"ait/internal/services"
	"ait/pkg/utils"
)

const (
	msgContactInvalid = "Please enter your name, a valid email address and a message."
	msgContactFailed  = "Your message could not be sent. Please try again later."
)

type ContactController struct {
	contactService services.ContactServiceInterface
	logger         *zap.Logger
}

func NewContactController(contactService services.ContactServiceInterface, logger *zap.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger.Named("contact_controller"),
	}
}

func (ct *ContactController) ShowForm(c *gin.Context) {
	ct.renderContact(c, http.StatusOK, request_models.ContactRequest{}, c.Query("sent") == "1", "")
}

// SubmitHandler relays the form and redirects so a browser refresh does not send it twice.
func (ct *ContactController) SubmitHandler(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		ct.renderContact(c, http.StatusBadRequest, req, false, msgContactInvalid)
		return
	}

	if err := ct.contactService.Submit(c.Request.Context(), req); err != nil {
		if errors.Is(err, utils.ErrValidation) {
			ct.renderContact(c, http.StatusBadRequest, req, false, msgContactInvalid)
			return
		}
		ct.logger.Error("contact relay failed", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		ct.renderContact(c, http.StatusBadGateway, req, false, msgContactFailed)
		return
	}

	c.Redirect(http.StatusSeeOther, "/contact/?sent=1")
}

func (ct *ContactController) renderContact(c *gin.Context, code int, form request_models.ContactRequest, sent bool, errMsg string) {
	c.HTML(code, "contact.html", page("Contact", "contact", gin.H{
		"Form":  form,
		"Sent":  sent,
		"Error": errMsg,
	}))
}
