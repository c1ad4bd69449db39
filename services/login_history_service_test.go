package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	for _, v := range []string{"DB_HOST", "DB_USER_NAME", "DB_PASSWORD", "DB_NAME", "DB_PORT"} {
		if os.Getenv(v) == "" {
			t.Skipf("%s not set, skipping database-backed test", v)
		}
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.LoginHistory{}))
	return db
}

func TestStatisticsEmptySetZeroed(t *testing.T) {
	db := openTestDB(t)
	svc := NewLoginHistoryService(db)

	// a user id no attempt was ever recorded for
	stats, err := svc.Statistics(context.Background(), HistoryFilter{UserID: 4294000000})
	require.NoError(t, err)

	assert.Zero(t, stats.TotalLogins)
	assert.Zero(t, stats.SuccessfulLogins)
	assert.Zero(t, stats.FailedLogins)
	assert.Zero(t, stats.UniqueIPCount)
	assert.Nil(t, stats.LastLogin)
}

func TestStatisticsAggregatesOutcomes(t *testing.T) {
	db := openTestDB(t)
	svc := NewLoginHistoryService(db)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	user := model.User{
		Name:     "Stats",
		Email:    "stats" + unique + "@example.com",
		Username: "stats" + unique,
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&model.LoginHistory{})
		db.Unscoped().Delete(&user)
	})

	ctx := context.Background()
	_, err := svc.RecordAttempt(ctx, user.ID, "10.0.0.1", "ua", "", model.Location{}, true, "")
	require.NoError(t, err)
	_, err = svc.RecordAttempt(ctx, user.ID, "10.0.0.1", "ua", "", model.Location{}, true, "")
	require.NoError(t, err)
	_, err = svc.RecordAttempt(ctx, user.ID, "10.0.0.2", "ua", "", model.Location{}, false, model.FailureInvalidCredentials)
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx, HistoryFilter{UserID: user.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalLogins)
	assert.Equal(t, int64(2), stats.SuccessfulLogins)
	assert.Equal(t, int64(1), stats.FailedLogins)
	assert.Equal(t, int64(2), stats.UniqueIPCount)
	require.NotNil(t, stats.LastLogin)
	assert.WithinDuration(t, time.Now(), *stats.LastLogin, time.Minute)
}
