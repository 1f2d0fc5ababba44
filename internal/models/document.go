package models

import "time"

// Document is a file attached to exactly one vehicle. Only metadata lives
// here; the bytes are kept by a storage backend under StorageKey.
type Document struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	VehicleID        uint      `gorm:"index;not null" json:"vehicle_id"`
	StorageKey       string    `gorm:"size:500;not null" json:"storage_key"`
	OriginalFilename string    `gorm:"size:255;not null" json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// resolved by the handler from the active storage backend
	URL string `gorm:"-" json:"url,omitempty"`
}
