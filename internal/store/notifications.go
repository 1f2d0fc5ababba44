package store

import (
	"context"

	"garage-desk/internal/models"

	"gorm.io/gorm"
)

// listCap bounds how many notifications the polling UI is handed.
const listCap = 20

type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *NotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(listCap).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips is_read on one notification. Re-marking an already-read
// row is a no-op, not an error.
func (s *NotificationStore) MarkRead(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("Notification not found")
	}
	return nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}
