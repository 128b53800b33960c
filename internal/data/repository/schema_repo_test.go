package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSchemaRepository_Init(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewSchemaRepository(mock, zap.NewNop())

	// Users and products first, orders references both
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS orders`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, repo.Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaRepository_Init_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewSchemaRepository(mock, zap.NewNop())

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnError(assert.AnError)

	require.Error(t, repo.Init(context.Background()))
}
