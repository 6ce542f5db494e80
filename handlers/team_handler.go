package handlers

import (
	"researchflow/helper"
	"researchflow/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService services.TeamService
	Helper      *helper.HTTPHelper
}

func NewTeamHandler(teamService services.TeamService, httpHelper *helper.HTTPHelper) *TeamHandler {
	return &TeamHandler{teamService: teamService, Helper: httpHelper}
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", h.teamService.Overview())
}
