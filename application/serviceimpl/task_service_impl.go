package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
	"taskdeck/domain/services"
	"taskdeck/pkg/apperrors"
	"taskdeck/pkg/logger"
)

// TaskCache is the optional read cache for per-user task listings. A nil
// cache disables caching.
type TaskCache interface {
	GetTasks(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, bool)
	SetTasks(ctx context.Context, userID uuid.UUID, timeframe string, tasks []*models.Task)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    TaskCache
}

func NewTaskService(taskRepo repositories.TaskRepository, cache TaskCache) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	existing, _ := s.taskRepo.GetByUserAndName(ctx, userID, req.TaskName)
	if existing != nil {
		logger.WarnContext(ctx, "Task name collision", "user_id", userID, "task_name", req.TaskName)
		return nil, apperrors.Conflictf("A task with this name already exists: %s. Please choose a different name.", req.TaskName)
	}

	task := &models.Task{
		ID:             uuid.New(),
		TaskName:       req.TaskName,
		NumberOfUnits:  req.NumberOfUnits,
		CompletedUnits: req.CompletedUnits,
		Timeframe:      req.Timeframe,
		Priority:       req.Priority,
		Color:          req.Color,
		UserID:         userID,
	}
	if task.Color == "" {
		task.Color = "#FFFFFF"
	}

	now := time.Now()
	task.InitWindow(now, req.Duration)
	task.UpdatedAt = now

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflictf("A task with this name already exists: %s. Please choose a different name.", req.TaskName)
		}
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidate(ctx, userID)

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	return s.ownedTask(ctx, userID, taskID)
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.GetTasksByTimeframe(ctx, userID, models.TimeframeNone)
}

func (s *TaskServiceImpl) GetTasksByTimeframe(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, error) {
	if !models.ValidTimeframe(timeframe) {
		return nil, apperrors.Validationf("Invalid timeframe. Must be one of: day, week, month, none.")
	}

	if s.cache != nil {
		if tasks, ok := s.cache.GetTasks(ctx, userID, timeframe); ok {
			return tasks, nil
		}
	}

	var tasks []*models.Task
	var err error
	if timeframe == models.TimeframeNone {
		// "none" means no filter, not "tasks tagged none"
		tasks, err = s.taskRepo.GetByUserID(ctx, userID)
	} else {
		tasks, err = s.taskRepo.GetByUserAndTimeframe(ctx, userID, timeframe)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch tasks", "user_id", userID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetTasks(ctx, userID, timeframe, tasks)
	}

	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.TaskName != nil && *req.TaskName != task.TaskName {
		existing, _ := s.taskRepo.GetByUserAndName(ctx, userID, *req.TaskName)
		if existing != nil {
			return nil, apperrors.Conflictf("A task with the name %q already exists. Please choose a different name.", *req.TaskName)
		}
		task.TaskName = *req.TaskName
	}
	if req.NumberOfUnits != nil {
		task.NumberOfUnits = *req.NumberOfUnits
	}
	if req.CompletedUnits != nil {
		task.CompletedUnits = *req.CompletedUnits
	}
	if req.Timeframe != nil {
		task.Timeframe = *req.Timeframe
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	task.UpdatedAt = time.Now()

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) UpdateCompletedUnits(ctx context.Context, userID, taskID uuid.UUID, completedUnits int) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	// No bound against NumberOfUnits: progress may exceed the target.
	task.CompletedUnits = completedUnits
	task.UpdatedAt = time.Now()

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) UpdatePriority(ctx context.Context, userID, taskID uuid.UUID, priority int) (*models.Task, error) {
	if priority < 0 {
		return nil, apperrors.Validationf("Priority must be a valid number and cannot be negative.")
	}

	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Priority = priority
	task.UpdatedAt = time.Now()

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) UpdateWindow(ctx context.Context, userID, taskID uuid.UUID, start, end time.Time) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.SetWindow(start, end); err != nil {
		return nil, apperrors.Validationf("startTime must be earlier than endTime.")
	}
	task.UpdatedAt = time.Now()

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task window updated", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Timeframe != nil {
		task.Timeframe = *req.Timeframe
	}
	task.UpdatedAt = time.Now()

	if err := s.saveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask hard-deletes the task. Categories referencing it as parent or
// child are NOT cascaded; they keep a dangling reference. Known limitation
// carried over from the original data model.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	s.invalidate(ctx, userID)

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)

	return nil
}

func (s *TaskServiceImpl) ownedTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, apperrors.NotFoundf("Task not found.")
	}
	if task.UserID != userID {
		return nil, apperrors.Forbiddenf("Not authorized to access this task")
	}
	return task, nil
}

func (s *TaskServiceImpl) saveTask(ctx context.Context, task *models.Task) error {
	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("A task with the name %q already exists. Please choose a different name.", task.TaskName)
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", task.ID, "error", err)
		return err
	}
	s.invalidate(ctx, task.UserID)
	return nil
}

func (s *TaskServiceImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}
