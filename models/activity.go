package models

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func correlationIdFromContextOrNew(ctx context.Context) string {
	if ctx != nil {
		if v, ok := utils.GetCorrelationIdFromContext(ctx); ok && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// ActivityLog is the append-only audit feed. Entries are never updated or
// deleted by the backend.
type ActivityLog struct {
	ID          int                `gorm:"primary_key" json:"id"`
	EntityType  ActivityEntityType `gorm:"size:20;index;not null" json:"entity_type"`
	Action      ActivityAction     `gorm:"size:10;not null" json:"action"`
	EntityId    int                `gorm:"index" json:"entity_id"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal    `gorm:"type:decimal(20,2);default:0" json:"amount"`
	Status      string             `gorm:"size:50" json:"status"`
	OccurredAt  time.Time          `gorm:"index;not null" json:"occurred_at"`
	Metadata    json.RawMessage    `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

const activityFeedCacheKey = "activityFeed"
const activityFeedCacheSize = 50

// createActivity appends an audit entry inside the caller's transaction and
// invalidates the cached feed. OccurredAt defaults to now; metadata defaults
// to the request correlation id.
func createActivity(tx *gorm.DB, entry ActivityLog) error {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	if entry.Metadata == nil {
		meta, err := json.Marshal(map[string]string{
			"correlation_id": correlationIdFromContextOrNew(tx.Statement.Context),
		})
		if err == nil {
			entry.Metadata = meta
		}
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}
	// Cache invalidation is best-effort; the feed has a short TTL anyway.
	_ = config.RemoveRedisKey(activityFeedCacheKey)
	return nil
}

// ListActivityLogs returns the most recent entries, newest first. Small
// requests are served from the redis-cached feed when possible.
func ListActivityLogs(ctx context.Context, limit int) ([]*ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = config.SearchLimit
	}

	if limit <= activityFeedCacheSize {
		var cached []*ActivityLog
		exists, err := config.GetRedisObject(activityFeedCacheKey, &cached)
		if err == nil && exists && len(cached) >= limit {
			return cached[:limit], nil
		}
	}

	db := config.GetDB()
	var entries []*ActivityLog
	if err := db.WithContext(ctx).
		Order("occurred_at DESC, id DESC").
		Limit(activityFeedCacheSize).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	if err := config.SetRedisObject(activityFeedCacheKey, entries, 30*time.Second); err != nil {
		config.LogError(config.GetLogger(), "activity.go", "ListActivityLogs", "SetRedisObject", nil, err)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
