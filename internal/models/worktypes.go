package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// WorkTypes is the ordered list of service categories selected for a job.
// It is always persisted as a JSON array; Scan still tolerates legacy rows
// that stored a bare string (those are rewritten once at startup, see
// database.Migrate).
type WorkTypes []string

func (w WorkTypes) Value() (driver.Value, error) {
	if w == nil {
		w = WorkTypes{}
	}
	b, err := json.Marshal([]string(w))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *WorkTypes) Scan(value interface{}) error {
	if value == nil {
		*w = WorkTypes{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("work_type: unsupported column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*w = WorkTypes{}
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return fmt.Errorf("work_type: %w", err)
		}
		*w = list
		return nil
	}
	// legacy bare-string row
	*w = WorkTypes{raw}
	return nil
}

// UnmarshalJSON accepts both a list and a bare string, normalizing the
// latter to a single-element list.
func (w *WorkTypes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*w = WorkTypes{}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*w = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*w = WorkTypes{}
		} else {
			*w = WorkTypes{single}
		}
		return nil
	}
	return fmt.Errorf("work_type must be a string or a list of strings")
}

func (w WorkTypes) MarshalJSON() ([]byte, error) {
	if w == nil {
		w = WorkTypes{}
	}
	return json.Marshal([]string(w))
}
