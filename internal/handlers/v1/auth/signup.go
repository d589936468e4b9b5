package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	authmw "github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// SignUpBody is the request body for registering a user.
type SignUpBody struct {
	Email     string `json:"email" required:"true" format:"email" doc:"Email address, unique per user"`
	Password  string `json:"password" required:"true" minLength:"8" doc:"Plaintext password"`
	FirstName string `json:"firstName" required:"true" doc:"First name"`
	LastName  string `json:"lastName" required:"true" doc:"Last name"`
}

// SignUpInput is the Huma input for registering a user.
type SignUpInput struct {
	Body SignUpBody
}

// SignUpOutput is the Huma output for registering a user.
type SignUpOutput struct {
	Status int  `json:"status" doc:"HTTP status"`
	Body   User `json:"body"`
}

// userRegistrar is the interface for registering users.
type userRegistrar interface {
	SignUp(ctx context.Context, input service.SignUpInput) (*service.User, error)
}

// SignUpHandler handles POST /v1/auth/signup.
type SignUpHandler struct {
	AuthService userRegistrar
}

// NewSignUpHandler creates a new SignUpHandler.
func NewSignUpHandler(svc userRegistrar) *SignUpHandler {
	return &SignUpHandler{AuthService: svc}
}

// Register registers the signup endpoint with the Huma API.
func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/v1/auth/signup",
		Summary:     "Sign up",
		Description: "Registers a new user account.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{authmw.PublicMetadataKey: true},
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("signUpMs")
	}
	user, err := h.AuthService.SignUp(ctx, service.SignUpInput{
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return nil, huma.NewError(http.StatusConflict, "email already registered")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sign up", err)
	}

	return &SignUpOutput{
		Status: http.StatusCreated,
		Body: User{
			ID:        user.ID.String(),
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
