package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LoginHistoryService records and reports login attempts
type LoginHistoryService struct {
	db *gorm.DB
}

// NewLoginHistoryService creates a new login history service
func NewLoginHistoryService(db *gorm.DB) *LoginHistoryService {
	return &LoginHistoryService{
		db: db,
	}
}

// HistoryFilter narrows history queries and statistics
type HistoryFilter struct {
	UserID    uint
	StartDate *time.Time
	EndDate   *time.Time
	Success   *bool
}

// LoginStatistics aggregates login outcomes over a filtered set.
// All fields are zeroed when no rows match.
type LoginStatistics struct {
	TotalLogins      int64      `json:"totalLogins"`
	SuccessfulLogins int64      `json:"successfulLogins"`
	FailedLogins     int64      `json:"failedLogins"`
	UniqueIPCount    int64      `json:"uniqueIPCount"`
	LastLogin        *time.Time `json:"lastLogin"`
}

// RecordAttempt appends a login attempt. failureReason is stored only for
// unsuccessful attempts.
func (s *LoginHistoryService) RecordAttempt(ctx context.Context, userID uint, ip, userAgent, deviceInfo string, location model.Location, success bool, failureReason string) (*model.LoginHistory, error) {
	entry := model.LoginHistory{
		UserID:     userID,
		LoginTime:  time.Now(),
		IPAddress:  ip,
		UserAgent:  userAgent,
		DeviceInfo: deviceInfo,
		Location:   datatypes.NewJSONType(location),
		Success:    success,
	}
	if !success && failureReason != "" {
		entry.FailureReason = &failureReason
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record login attempt: %w", err)
	}
	return &entry, nil
}

func (s *LoginHistoryService) filtered(ctx context.Context, filter HistoryFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.LoginHistory{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("login_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("login_time <= ?", *filter.EndDate)
	}
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}
	return query
}

// Query returns a page of history entries, newest first, with the total
// matching count.
func (s *LoginHistoryService) Query(ctx context.Context, filter HistoryFilter, page, limit int) ([]model.LoginHistory, int64, error) {
	query := s.filtered(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count login history: %w", err)
	}

	var entries []model.LoginHistory
	offset := (page - 1) * limit
	if err := query.Order("login_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch login history: %w", err)
	}

	return entries, total, nil
}

// Statistics aggregates outcome counts, distinct IPs, and the most recent
// login time over the filtered set.
func (s *LoginHistoryService) Statistics(ctx context.Context, filter HistoryFilter) (*LoginStatistics, error) {
	stats := &LoginStatistics{}

	var row struct {
		TotalLogins      int64
		SuccessfulLogins int64
		FailedLogins     int64
		UniqueIPCount    int64
		LastLogin        *time.Time
	}

	err := s.filtered(ctx, filter).
		Select(`COUNT(*) as total_logins,
			COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) as successful_logins,
			COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) as failed_logins,
			COUNT(DISTINCT ip_address) as unique_ip_count,
			MAX(login_time) as last_login`).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate login statistics: %w", err)
	}

	stats.TotalLogins = row.TotalLogins
	stats.SuccessfulLogins = row.SuccessfulLogins
	stats.FailedLogins = row.FailedLogins
	stats.UniqueIPCount = row.UniqueIPCount
	stats.LastLogin = row.LastLogin

	return stats, nil
}
