package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type auditEntry struct {
	ID   uint `gorm:"primarykey"`
	Note string
}

func setupTxDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&auditEntry{}))
	return gdb
}

func countEntries(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&auditEntry{}).Count(&n).Error)
	return n
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	gdb := setupTxDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, gdb).Create(&auditEntry{Note: "first"}).Error; err != nil {
			return err
		}
		return GetTxFromContext(ctx, gdb).Create(&auditEntry{Note: "second"}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), countEntries(t, gdb))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	gdb := setupTxDB(t)
	tm := NewTransactionManager(gdb)

	boom := errors.New("boom")
	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, gdb).Create(&auditEntry{Note: "doomed"}).Error; err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countEntries(t, gdb))
}

func TestGetTxFromContext_FallsBackToDefault(t *testing.T) {
	gdb := setupTxDB(t)

	err := GetTxFromContext(context.Background(), gdb).Create(&auditEntry{Note: "direct"}).Error

	require.NoError(t, err)
	assert.Equal(t, int64(1), countEntries(t, gdb))
}
