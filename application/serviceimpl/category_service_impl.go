package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
	"taskdeck/domain/services"
	"taskdeck/pkg/apperrors"
	"taskdeck/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	taskRepo     repositories.TaskRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, taskRepo repositories.TaskRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
	}
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	parent, err := s.taskRepo.GetByID(ctx, req.ParentTaskID)
	if err != nil || parent.UserID != userID {
		logger.WarnContext(ctx, "Parent task not found or foreign", "user_id", userID, "parent_task", req.ParentTaskID)
		return nil, apperrors.NotFoundf("Parent task not found or does not belong to the user.")
	}

	children, err := s.resolveChildren(ctx, userID, req.Children)
	if err != nil {
		return nil, err
	}

	// A task anchors at most one category.
	if existing, _ := s.categoryRepo.GetByParentTaskID(ctx, req.ParentTaskID); existing != nil {
		return nil, apperrors.Conflictf("Parent task already belongs to another category.")
	}

	category := &models.Category{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		ParentTaskID: req.ParentTaskID,
		Color:        req.Color,
		UserID:       userID,
		ParentTask:   *parent,
		Children:     children,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflictf("Parent task already belongs to another category.")
		}
		logger.ErrorContext(ctx, "Failed to create category", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "user_id", userID)

	return category, nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch categories", "user_id", userID, "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, apperrors.NotFoundf("Category not found.")
	}
	if category.UserID != userID {
		return nil, apperrors.Forbiddenf("Not authorized to access this category")
	}

	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Children != nil {
		children, err := s.resolveChildren(ctx, userID, *req.Children)
		if err != nil {
			return nil, err
		}
		category.Children = children
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", categoryID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", categoryID, "user_id", userID)

	return category, nil
}

// DeleteCategory hard-deletes the category; member tasks are untouched.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return apperrors.NotFoundf("Category not found.")
	}
	if category.UserID != userID {
		return apperrors.Forbiddenf("Not authorized to access this category")
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", categoryID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", categoryID, "user_id", userID)

	return nil
}

// resolveChildren loads the requested child tasks and requires every id to
// exist and belong to the caller (set equality, duplicates collapsed).
func (s *CategoryServiceImpl) resolveChildren(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tasks, err := s.taskRepo.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if len(tasks) != len(unique) {
		return nil, apperrors.NotFoundf("Some or all children tasks not found or do not belong to the user.")
	}

	children := make([]models.Task, len(tasks))
	for i, t := range tasks {
		children[i] = *t
	}
	return children, nil
}
