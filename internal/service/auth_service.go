package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// AuthService handles registration, login, and token validation.
type AuthService struct {
	storage     *storage.Storage
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		storage:     store,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

// SignUp registers a new user with a bcrypt-hashed password.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*User, error) {
	existing, err := s.storage.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	return &User{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsActive:  true,
	}, nil
}

// SignIn verifies the credentials and returns a signed JWT. Lookup misses and
// password mismatches collapse into one error so callers cannot probe for
// registered emails.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (string, error) {
	user, err := s.storage.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a JWT and returns the user ID it was issued for.
func (s *AuthService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	return uuid.FromString(claims.Subject)
}
