package category

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockCategoryUpdater is a mock for categoryUpdater.
type mockCategoryUpdater struct {
	mock.Mock
}

func (m *mockCategoryUpdater) UpdateCategory(ctx context.Context, userID, id uuid.UUID, update service.CategoryUpdate) error {
	args := m.Called(ctx, userID, id, update)
	return args.Error(0)
}

func TestUpdateCategoryHandler_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryUpdater)
	mockSvc.On("UpdateCategory", mock.Anything, userID, categoryID, service.CategoryUpdate{
		Name:        "Dining",
		Description: "Restaurants only",
	}).Return(nil)

	handler := NewUpdateCategoryHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &UpdateCategoryInput{
		ID:   categoryID.String(),
		Body: UpdateCategoryBody{Name: "Dining", Description: "Restaurants only"},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)
	mockSvc.AssertExpectations(t)
}

func TestUpdateCategoryHandler_MissingIsNotFound(t *testing.T) {
	mockSvc := new(mockCategoryUpdater)
	mockSvc.On("UpdateCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.ErrNotFound)

	handler := NewUpdateCategoryHandler(mockSvc)
	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &UpdateCategoryInput{
		ID:   uuid.Must(uuid.NewV4()).String(),
		Body: UpdateCategoryBody{Name: "Dining"},
	})

	assertStatus(t, err, http.StatusNotFound)
}

func TestUpdateCategoryHandler_InvalidID(t *testing.T) {
	handler := NewUpdateCategoryHandler(new(mockCategoryUpdater))

	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &UpdateCategoryInput{
		ID:   "not-a-uuid",
		Body: UpdateCategoryBody{Name: "Dining"},
	})

	assertStatus(t, err, http.StatusBadRequest)
}
