package database

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// migrateWorkTypes rewrites legacy vehicles whose work_type column holds a
// bare string into the canonical JSON-array form, so reads never have to
// branch on the stored shape.
func migrateWorkTypes(db *gorm.DB) error {
	type row struct {
		ID       uint
		WorkType string
	}

	var legacy []row
	err := db.Table("vehicles").
		Select("id, work_type").
		Where("work_type IS NOT NULL AND work_type <> '' AND work_type NOT LIKE '[%'").
		Find(&legacy).Error
	if err != nil {
		return err
	}

	for _, r := range legacy {
		list := []string{strings.TrimSpace(r.WorkType)}
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}
		if err := db.Table("vehicles").
			Where("id = ?", r.ID).
			Update("work_type", string(b)).Error; err != nil {
			return err
		}
	}
	return nil
}
