package handlers

import (
	"net/http"
	"strconv"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StepHandler struct {
	stepService ports.StepService
}

func NewStepHandler(stepService ports.StepService) *StepHandler {
	return &StepHandler{stepService: stepService}
}

// ListSteps returns every completed step, newest first. An optional
// task_id query parameter narrows the list to one task.
func (h *StepHandler) ListSteps(c *gin.Context) {
	var filter domain.StepFilter
	if raw, ok := c.GetQuery("task_id"); ok {
		taskID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || taskID == 0 {
			respondBadRequest(c, apierrors.MsgInvalidTaskID)
			return
		}
		filter.TaskID = &taskID
	}

	steps, err := h.stepService.ListSteps(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidStepPayload, apierrors.MsgFailListSteps)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStepItems(steps))
}

func (h *StepHandler) AddStep(c *gin.Context) {
	var req dto.CreateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidStepPayload)
		return
	}

	step, err := h.stepService.AddStep(c.Request.Context(), req.TaskID, req.Description)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidStepPayload, apierrors.MsgFailCreateStep, zap.Uint64("task_id", req.TaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToStepItem(step))
}
