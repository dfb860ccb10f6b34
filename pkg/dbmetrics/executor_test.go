package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	db := &DB{}
	tx := &SqlTxWrapper{}

	assert.Same(t, db, GetExecutor(context.Background(), db))

	ctx := WithTx(context.Background(), tx)
	assert.Same(t, tx, GetExecutor(ctx, db))

	got, ok := TxFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, tx, got)
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM slots"))
	assert.Equal(t, "insert", operation("  INSERT INTO slots (id) VALUES ($1)"))
	assert.Equal(t, "unknown", operation(""))
}
