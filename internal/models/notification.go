package models

import "time"

// Notification is an append-only event record. VehicleID is a
// back-reference, not ownership: deleting the vehicle leaves the
// notification in place.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	VehicleID *uint     `gorm:"index" json:"vehicle_id"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
