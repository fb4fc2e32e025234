package controllers

import (
	"github.com/gin-gonic/gin"

	"ait/internal/models/response_models"
	"ait/internal/services"
	"ait/pkg/utils"
)

type SystemController struct {
	planner *utils.Backend
	chat    *utils.Backend
	mail    services.IMailService
}

func NewSystemController(planner, chat *utils.Backend, mail services.IMailService) *SystemController {
	return &SystemController{
		planner: planner,
		chat:    chat,
		mail:    mail,
	}
}

// HealthHandler reports liveness. An unconfigured backend is a degraded feature, not an outage.
func (s *SystemController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status: "ok",
		Backends: map[string]string{
			s.planner.Name(): s.planner.Provider() + ":" + s.planner.State().String(),
			s.chat.Name():    s.chat.Provider() + ":" + s.chat.State().String(),
		},
		Mail: s.mail.Backend(),
	}, "")
}
