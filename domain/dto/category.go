package dto

import (
	"github.com/google/uuid"

	"taskdeck/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name         string      `json:"name" validate:"required,min=1,max=100"`
	Description  string      `json:"description" validate:"omitempty,max=500"`
	ParentTaskID uuid.UUID   `json:"parentTask" validate:"required"`
	Children     []uuid.UUID `json:"children"`
	Color        string      `json:"color" validate:"required,max=20"`
}

type UpdateCategoryRequest struct {
	Color    *string      `json:"color" validate:"omitempty,max=20"`
	Children *[]uuid.UUID `json:"children"`
}

// === Responses ===

type CategoryResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color"`
	UserID      uuid.UUID     `json:"userId"`
	ParentTask  TaskSummary   `json:"parentTask"`
	Children    []TaskSummary `json:"children"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	children := make([]TaskSummary, len(category.Children))
	for i := range category.Children {
		children[i] = TaskToTaskSummary(&category.Children[i])
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		UserID:      category.UserID,
		ParentTask:  TaskToTaskSummary(&category.ParentTask),
		Children:    children,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
