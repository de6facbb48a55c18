package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) Commit() error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rollbacks++
	return nil
}

type fakeTxBeginner struct {
	beginErr error
	attempts int
	txs      []*fakeTx
	nextTx   func(attempt int) *fakeTx
}

func (f *fakeTxBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.attempts++
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	tx := &fakeTx{}
	if f.nextTx != nil {
		tx = f.nextTx(f.attempts)
	}
	f.txs = append(f.txs, tx)
	return tx, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: pgSerializationFailure}
}

func TestDoSerializable_CommitsOnce(t *testing.T) {
	db := &fakeTxBeginner{}
	manager := NewTransactionManager(db)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, db.txs, 1)
	assert.Equal(t, 1, db.txs[0].commits)
}

func TestDoSerializable_RetriesSerializationFailureOnCommit(t *testing.T) {
	db := &fakeTxBeginner{
		nextTx: func(int) *fakeTx {
			return &fakeTx{commitErr: serializationErr()}
		},
	}
	manager := NewTransactionManager(db)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxRetries, db.attempts)
	assert.Equal(t, maxRetries, calls)
}

func TestDoSerializable_SucceedsAfterCommitConflict(t *testing.T) {
	db := &fakeTxBeginner{
		nextTx: func(attempt int) *fakeTx {
			if attempt == 1 {
				return &fakeTx{commitErr: serializationErr()}
			}
			return &fakeTx{}
		},
	}
	manager := NewTransactionManager(db)

	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, db.attempts)
}

func TestDoSerializable_RetriesSerializationFailureFromQuery(t *testing.T) {
	db := &fakeTxBeginner{}
	manager := NewTransactionManager(db)

	errStore := errors.New("storage: query failed")
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return fmt.Errorf("%w: check slot: %w", errStore, serializationErr())
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, maxRetries, db.attempts)
	for _, tx := range db.txs {
		assert.Equal(t, 1, tx.rollbacks)
		assert.Zero(t, tx.commits)
	}
}

func TestDoSerializable_NonRetryableErrorReturnedAsIs(t *testing.T) {
	db := &fakeTxBeginner{}
	manager := NewTransactionManager(db)

	errBusiness := errors.New("slot already taken")
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return errBusiness
	})

	assert.ErrorIs(t, err, errBusiness)
	assert.NotErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 1, db.attempts)
	require.Len(t, db.txs, 1)
	assert.Equal(t, 1, db.txs[0].rollbacks)
}

func TestDoSerializable_BeginErrorNotRetried(t *testing.T) {
	db := &fakeTxBeginner{beginErr: errors.New("connection refused")}
	manager := NewTransactionManager(db)

	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 1, db.attempts)
}
