package store

import (
	"context"

	"garage-desk/internal/models"

	"gorm.io/gorm"
)

type ClientStore struct {
	db *gorm.DB
}

func NewClientStore(db *gorm.DB) *ClientStore {
	return &ClientStore{db: db}
}

type ClientInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone10"`
	Comments string `json:"comments"`
}

func validateClientInput(in ClientInput) error {
	failures := fieldFailures(in)
	if failures == nil {
		return nil
	}
	if failures["Name"] == "required" || failures["Phone"] == "required" {
		return Invalid("Name and phone are required")
	}
	return Invalid("Phone number must be exactly 10 digits")
}

func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.db.WithContext(ctx).Order("name asc").Find(&clients).Error
	return clients, err
}

func (s *ClientStore) Get(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("Client not found")
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Create inserts a client, unless a client with the identical (name, phone)
// pair already exists, in which case the existing row is returned untouched.
// The boolean reports whether a new row was inserted.
func (s *ClientStore) Create(ctx context.Context, in ClientInput) (*models.Client, bool, error) {
	if err := validateClientInput(in); err != nil {
		return nil, false, err
	}

	var existing models.Client
	err := s.db.WithContext(ctx).
		Where("name = ? AND phone = ?", in.Name, in.Phone).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	client := models.Client{
		Name:     in.Name,
		Phone:    in.Phone,
		Comments: in.Comments,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, false, err
	}
	return &client, true, nil
}

func (s *ClientStore) Update(ctx context.Context, id uint, in ClientInput) (*models.Client, error) {
	if err := validateClientInput(in); err != nil {
		return nil, err
	}

	var client models.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("Client not found")
	}
	if err != nil {
		return nil, err
	}

	client.Name = in.Name
	client.Phone = in.Phone
	client.Comments = in.Comments
	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Delete removes a client unless any vehicle still references it. The guard
// and the delete run in one transaction; a vehicle inserted concurrently
// between the two is an accepted narrow race in a single-writer admin tool.
func (s *ClientStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicles int64
		if err := tx.Model(&models.Vehicle{}).
			Where("client_id = ?", id).
			Count(&vehicles).Error; err != nil {
			return err
		}
		if vehicles > 0 {
			return Conflict("Cannot delete client with associated vehicles. Delete vehicles first.")
		}

		res := tx.Delete(&models.Client{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("Client not found")
		}
		return nil
	})
}
