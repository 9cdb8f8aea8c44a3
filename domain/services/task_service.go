package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	// GetTasksByTimeframe filters by bucket; "none" means no filter.
	GetTasksByTimeframe(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateCompletedUnits(ctx context.Context, userID, taskID uuid.UUID, completedUnits int) (*models.Task, error)
	UpdatePriority(ctx context.Context, userID, taskID uuid.UUID, priority int) (*models.Task, error)
	UpdateWindow(ctx context.Context, userID, taskID uuid.UUID, start, end time.Time) (*models.Task, error)
	MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
