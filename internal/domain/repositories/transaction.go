package repositories

import "context"

// TransactionManager runs a unit of work atomically. Services use it where a
// read must stay valid until the following write lands: the uniqueness check
// before an update, and unlinking member resources before a collection is
// deleted. Repository calls made with txCtx join the transaction; calls made
// with any other context do not.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
