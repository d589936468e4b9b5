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

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for logging in.
type LoginResponseBody struct {
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// credentialChecker is the interface for exchanging credentials for a token.
type credentialChecker interface {
	SignIn(ctx context.Context, input service.SignInInput) (string, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	AuthService credentialChecker
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc credentialChecker) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Exchanges email and password for a bearer token.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{authmw.PublicMetadataKey: true},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("signInMs")
	}
	token, err := h.AuthService.SignIn(ctx, service.SignInInput{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	return &LoginOutput{Body: LoginResponseBody{Token: token}}, nil
}
