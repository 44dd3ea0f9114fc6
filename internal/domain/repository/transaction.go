package repository

import "context"

// TransactionManager runs a unit of work against the primary store.
// Registry assignment depends on it: advancing the year's counter and inserting the account
// happen in one transaction, so a failed insert never burns a sequence number.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn's error is returned as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ProfileRepo() ProfileRepository
	RegistrySequenceRepo() RegistrySequenceRepository
}
