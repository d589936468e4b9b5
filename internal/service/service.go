package service

import (
	"time"

	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	Category    *CategoryService
	Transaction *TransactionService
	Group       *GroupService
	Analytics   *AnalyticsService
	Export      *ExportService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, jwtSecret string, tokenExpiry time.Duration) *Service {
	return &Service{
		Auth:        NewAuthService(store, jwtSecret, tokenExpiry),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Group:       NewGroupService(store),
		Analytics:   NewAnalyticsService(store),
		Export:      NewExportService(store),
	}
}
