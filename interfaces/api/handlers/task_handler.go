package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/services"
	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logger.WarnContext(ctx, "Validation failed", "errors", utils.GetValidationErrors(err))
		return utils.BadRequestResponse(c, "All fields are required.")
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetUserTasks(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTasksByTimeframe(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetTasksByTimeframe(ctx, user.ID, c.Params("timeframe"))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationErrorMessage(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateCompletedUnits(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateCompletedUnitsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Please provide a valid value for completedUnits.")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, "Please provide a valid value for completedUnits.")
	}

	task, err := h.taskService.UpdateCompletedUnits(ctx, user.ID, taskID, *req.CompletedUnits)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdatePriority(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Priority must be a valid number and cannot be negative.")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, "Priority must be a valid number and cannot be negative.")
	}

	task, err := h.taskService.UpdatePriority(ctx, user.ID, taskID, *req.Priority)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateWindow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	var req dto.UpdateWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Both startTime and endTime are required.")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, "Both startTime and endTime are required.")
	}

	task, err := h.taskService.UpdateWindow(ctx, user.ID, taskID, req.StartTime, req.EndTime)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) MoveTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	var req dto.MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationErrorMessage(err))
	}

	task, err := h.taskService.MoveTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, taskID, ok := h.callerAndTaskID(c)
	if !ok {
		return nil
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Task deleted successfully"})
}

// callerAndTaskID resolves the caller identity and the :taskId param. When
// it reports false the error response has already been written.
func (h *TaskHandler) callerAndTaskID(c *fiber.Ctx) (*utils.UserContext, uuid.UUID, bool) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		_ = utils.UnauthorizedResponse(c, "")
		return nil, uuid.Nil, false
	}

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		_ = utils.BadRequestResponse(c, "Invalid task ID")
		return nil, uuid.Nil, false
	}

	return user, taskID, true
}
