package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByUserAndTimeframe(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ? AND timeframe = ?", userID, timeframe).Order("created_at").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByUserAndName(ctx context.Context, userID uuid.UUID, taskName string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("user_id = ? AND task_name = ?", userID, taskName).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
