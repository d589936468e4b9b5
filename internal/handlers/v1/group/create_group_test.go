package group

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) (uuid.UUID, error) {
	args := m.Called(ctx, action)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// authedContext returns a context carrying the given user identity.
func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

// assertStatus asserts err is a Huma error with the given HTTP status.
func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	if assert.Error(t, err) {
		statusErr, ok := err.(huma.StatusError)
		if assert.True(t, ok, "expected a huma.StatusError, got %T", err) {
			assert.Equal(t, status, statusErr.GetStatus())
		}
	}
}

func TestCreateGroupHandler_Unauthenticated(t *testing.T) {
	handler := NewCreateGroupHandler(new(mockProcessor))

	_, err := handler.handle(context.Background(), &CreateGroupInput{
		Body: CreateGroupBody{Name: "Trip"},
	})

	assertStatus(t, err, http.StatusUnauthorized)
}

func TestCreateGroupHandler_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateGroup)
		return ok &&
			create.Name == "Trip" &&
			create.Description == "Summer trip expenses" &&
			create.OwnerID == userID
	})).Return(groupID, nil)

	handler := NewCreateGroupHandler(mockOp)
	output, err := handler.handle(authedContext(userID), &CreateGroupInput{
		Body: CreateGroupBody{Name: "Trip", Description: "Summer trip expenses"},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, output.Status)
	assert.Equal(t, groupID.String(), output.Body.ID)
	mockOp.AssertExpectations(t)
}

func TestCreateGroupHandler_ProcessorError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(uuid.Nil, assert.AnError)

	handler := NewCreateGroupHandler(mockOp)
	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &CreateGroupInput{
		Body: CreateGroupBody{Name: "Trip"},
	})

	assertStatus(t, err, http.StatusInternalServerError)
}
