package service

import (
	"github.com/carson-networks/savings-server/internal/operator"
	"github.com/carson-networks/savings-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Savings *SavingsService
}

// NewService creates a new Service over the given storage and write operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Savings: NewSavingsService(store.Savings, op),
	}
}
