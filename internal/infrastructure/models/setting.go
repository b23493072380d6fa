package models

import "time"

type Setting struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text"` // JSON
	UpdatedAt time.Time
}
