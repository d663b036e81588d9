package repository

import (
	"context"

	"parfum/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repositories. Combined with
// StubTransactionManager it lets service tests run transactional flows against
// plain mocks without a database.
type StubRepositoryFactory struct {
	UserRepo    repository.UserRepository
	PerfumeRepo repository.PerfumeRepository
	OrderRepo   repository.OrderRepository
	ReviewRepo  repository.ReviewRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewPerfumeRepository() repository.PerfumeRepository {
	return f.PerfumeRepo
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *StubRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.ReviewRepo
}

// StubTransactionManager runs the callback immediately with the configured
// factory. BeginErr short-circuits Execute, simulating a failed Begin.
type StubTransactionManager struct {
	Factory  *StubRepositoryFactory
	BeginErr error

	// Calls counts how many transactions were started.
	Calls int
}

func (tm *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.Calls++
	if tm.BeginErr != nil {
		return tm.BeginErr
	}

	return fn(tm.Factory)
}
