package store

import (
	"context"

	"garage-desk/internal/models"

	"gorm.io/gorm"
)

type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Create(ctx context.Context, doc *models.Document) error {
	return s.db.WithContext(ctx).Create(doc).Error
}

func (s *DocumentStore) Get(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).First(&doc, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("Document not found")
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentStore) ListForVehicle(ctx context.Context, vehicleID uint) ([]models.Document, error) {
	docs := []models.Document{}
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("uploaded_at DESC, id DESC").
		Find(&docs).Error
	return docs, err
}

func (s *DocumentStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Document{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("Document not found")
	}
	return nil
}
