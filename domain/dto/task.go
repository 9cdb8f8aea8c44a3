package dto

import (
	"time"

	"github.com/google/uuid"

	"taskdeck/domain/models"
)

type CreateTaskRequest struct {
	TaskName       string  `json:"taskName" validate:"required,min=1,max=200"`
	NumberOfUnits  int     `json:"numberOfUnits" validate:"required,min=1"`
	CompletedUnits int     `json:"completedUnits" validate:"gte=0"`
	Timeframe      string  `json:"timeframe" validate:"required,oneof=day week month none"`
	Duration       float64 `json:"duration" validate:"required,gt=0"`
	Priority       int     `json:"priority" validate:"omitempty,gte=0"`
	Color          string  `json:"color" validate:"omitempty,max=20"`
}

type UpdateTaskRequest struct {
	TaskName       *string `json:"taskName" validate:"omitempty,min=1,max=200"`
	NumberOfUnits  *int    `json:"numberOfUnits" validate:"omitempty,min=1"`
	CompletedUnits *int    `json:"completedUnits" validate:"omitempty,gte=0"`
	Timeframe      *string `json:"timeframe" validate:"omitempty,oneof=day week month none"`
	Color          *string `json:"color" validate:"omitempty,max=20"`
}

type UpdateCompletedUnitsRequest struct {
	// No upper bound: progress may exceed the unit target.
	CompletedUnits *int `json:"completedUnits" validate:"required,gte=0"`
}

type UpdatePriorityRequest struct {
	Priority *int `json:"priority" validate:"required,gte=0"`
}

type UpdateWindowRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
}

type MoveTaskRequest struct {
	Status    *string `json:"status" validate:"omitempty,max=50"`
	Timeframe *string `json:"timeframe" validate:"omitempty,oneof=day week month none"`
}

type TaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	TaskName       string     `json:"taskName"`
	NumberOfUnits  int        `json:"numberOfUnits"`
	CompletedUnits int        `json:"completedUnits"`
	Timeframe      string     `json:"timeframe"`
	Duration       float64    `json:"duration"`
	Priority       int        `json:"priority"`
	Color          string     `json:"color"`
	Status         string     `json:"status,omitempty"`
	CategoryID     *uuid.UUID `json:"categoryId,omitempty"`
	UserID         uuid.UUID  `json:"userId"`
	CreatedAt      time.Time  `json:"createdAt"`
	EndDate        time.Time  `json:"endDate"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TaskSummary is the reduced shape embedded in category responses.
type TaskSummary struct {
	ID             uuid.UUID `json:"id"`
	TaskName       string    `json:"taskName"`
	NumberOfUnits  int       `json:"numberOfUnits"`
	CompletedUnits int       `json:"completedUnits"`
	CreatedAt      time.Time `json:"createdAt"`
	EndDate        time.Time `json:"endDate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:             task.ID,
		TaskName:       task.TaskName,
		NumberOfUnits:  task.NumberOfUnits,
		CompletedUnits: task.CompletedUnits,
		Timeframe:      task.Timeframe,
		Duration:       task.Duration,
		Priority:       task.Priority,
		Color:          task.Color,
		Status:         task.Status,
		CategoryID:     task.CategoryID,
		UserID:         task.UserID,
		CreatedAt:      task.CreatedAt,
		EndDate:        task.EndDate,
		UpdatedAt:      task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func TaskToTaskSummary(task *models.Task) TaskSummary {
	return TaskSummary{
		ID:             task.ID,
		TaskName:       task.TaskName,
		NumberOfUnits:  task.NumberOfUnits,
		CompletedUnits: task.CompletedUnits,
		CreatedAt:      task.CreatedAt,
		EndDate:        task.EndDate,
		UpdatedAt:      task.UpdatedAt,
	}
}
