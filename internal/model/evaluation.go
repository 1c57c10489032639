package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/google/uuid"
)

// Evaluation is one stored run of the expression pipeline
type Evaluation struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp   time.Time   `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP;index"`
	Source      string      `json:"source"`
	Success     bool        `json:"success" gorm:"index"`
	Value       string      `json:"value,omitempty"`
	Type        string      `json:"type,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics" gorm:"type:jsonb"`
	RequestID   string      `json:"request_id,omitempty"`
	ClientIP    string      `json:"client_ip,omitempty"`
	UserAgent   string      `json:"user_agent,omitempty"`
	CreatedAt   time.Time   `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluations"
}

// Diagnostics is a diagnostic list stored as JSONB
type Diagnostics []diagnostic.Diagnostic

// Value implements the driver.Valuer interface for Diagnostics
func (d Diagnostics) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface for Diagnostics
func (d *Diagnostics) Scan(value interface{}) error {
	if value == nil {
		*d = Diagnostics{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, d)
}
