package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	// Children tasks already exist; only the join rows should be written.
	return r.db.WithContext(ctx).Omit("Children.*", "ParentTask").Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("ParentTask").Preload("Children").Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Preload("ParentTask").Preload("Children").Where("user_id = ?", userID).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) GetByParentTaskID(ctx context.Context, parentTaskID uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("parent_task_id = ?", parentTaskID).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Omit("Children", "ParentTask").Save(category).Error; err != nil {
		return err
	}
	return tx.Model(category).Association("Children").Replace(category.Children)
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Children").Where("id = ?", id).Delete(&models.Category{ID: id}).Error
}
