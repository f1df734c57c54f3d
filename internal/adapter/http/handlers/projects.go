package handlers

import (
	"net/http"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProjects, apierrors.MsgFailListProjects)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

// EnvironmentHandler tells the web view whether it runs against a
// development or production deployment.
type EnvironmentHandler struct {
	environment string
}

func NewEnvironmentHandler(environment string) *EnvironmentHandler {
	return &EnvironmentHandler{environment: environment}
}

func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	c.JSON(http.StatusOK, dto.EnvironmentItem{Environment: h.environment})
}
