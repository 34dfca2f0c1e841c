package team

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *TeamService
}

func NewTeamHandler(teamService *TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := sharedContext.RequireSubject(c)
	if !ok {
		return
	}

	var request CreateTeamRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.teamService.CreateTeam(c.Request.Context(), actor, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *TeamHandler) List(c *gin.Context) {
	response, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
