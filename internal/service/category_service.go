package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic. Every operation is scoped
// to the requesting user; touching another user's category is ErrNotFound,
// not ErrForbidden, so ids cannot be probed.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category for the user and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, category Category) (uuid.UUID, error) {
	return s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:      category.UserID,
		Name:        category.Name,
		Type:        category.Type,
		Description: category.Description,
	})
}

// ListCategories returns the user's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:          row.ID,
			UserID:      row.UserID,
			Name:        row.Name,
			Type:        row.Type,
			Description: row.Description,
		}
	}
	return categories, nil
}

// UpdateCategory changes a category's name and description.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, id uuid.UUID, update CategoryUpdate) error {
	if err := s.requireOwnership(ctx, userID, id); err != nil {
		return err
	}
	return s.storage.Categories.Update(ctx, id, &sqlconfig.CategoryUpdate{
		Name:        update.Name,
		Description: update.Description,
	})
}

// DeleteCategory removes a category owned by the user.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.requireOwnership(ctx, userID, id); err != nil {
		return err
	}
	return s.storage.Categories.Delete(ctx, id)
}

func (s *CategoryService) requireOwnership(ctx context.Context, userID, id uuid.UUID) error {
	category, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil || category.UserID != userID {
		return ErrNotFound
	}
	return nil
}
