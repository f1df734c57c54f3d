package handlers

import (
	"encoding/json"
	"net/http"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), validation.BuildCreateTaskInput(req))
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// UpdateTask applies a partial update. The body is kept raw so that an
// absent key leaves the column alone while null clears it.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	taskID, patch, err := validation.BuildTaskPatch(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailUpdateTask)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, patch)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailUpdateTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// CompleteStep marks the task's current step as done: the step is recorded
// and next_step cleared together.
func (h *TaskHandler) CompleteStep(c *gin.Context) {
	var req dto.CreateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidStepPayload)
		return
	}

	task, step, err := h.taskService.CompleteStep(c.Request.Context(), req.TaskID, req.Description)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidStepPayload, apierrors.MsgFailCompleteStep, zap.Uint64("task_id", req.TaskID))
		return
	}

	c.JSON(http.StatusCreated, dto.CompleteStepResponse{
		Task: mapper.ToTaskItem(task),
		Step: mapper.ToStepItem(step),
	})
}
