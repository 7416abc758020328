package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dealerdesk/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One shared in-memory database per test, named to keep tests isolated.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AuditEvent{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestRecordAssignsID(t *testing.T) {
	repo := NewAuditRepository(newTestDB(t))

	ev := &model.AuditEvent{
		Actor:     "ops@corp.example",
		ActorRole: "admin",
		Action:    model.AuditDealerUpdate,
		Entity:    "dealer",
		EntityID:  "42",
	}
	require.NoError(t, repo.Record(context.Background(), ev))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", ev.ID.String())
}

func TestListRecentOrdersNewestFirst(t *testing.T) {
	repo := NewAuditRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, action := range []string{model.AuditLogin, model.AuditDealerOnboard, model.AuditLoanDelete} {
		require.NoError(t, repo.Record(ctx, &model.AuditEvent{
			Actor:     "ops@corp.example",
			ActorRole: "admin",
			Action:    action,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.AuditLoanDelete, events[0].Action)
	assert.Equal(t, model.AuditDealerOnboard, events[1].Action)
}
