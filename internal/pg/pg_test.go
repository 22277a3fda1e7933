package pg

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBRoutesToPoolWithoutTransaction(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	db := New(pool)

	pool.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET status = $1")).
		WithArgs("closed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	_, err = db.Exec(context.Background(), "UPDATE jobs SET status = $1", "closed")
	assert.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestDBRoutesToContextTransaction(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()
	txPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer txPool.Close()

	db := New(pool)
	ctx := withTx(context.Background(), txPool)

	txPool.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET status = $1")).
		WithArgs("closed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	txPool.ExpectQuery(regexp.QuoteMeta("SELECT id FROM jobs")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	_, err = db.Exec(ctx, "UPDATE jobs SET status = $1", "closed")
	assert.NoError(t, err)

	rows, err := db.Query(ctx, "SELECT id FROM jobs")
	assert.NoError(t, err)
	rows.Close()

	// nothing may leak onto the pool connection
	assert.NoError(t, pool.ExpectationsWereMet())
	assert.NoError(t, txPool.ExpectationsWereMet())
}
