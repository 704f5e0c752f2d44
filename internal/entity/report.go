package entity

import (
	"gorm.io/gorm"
)

// Report is one broadcast weather value as stored in the history table
type Report struct {
	gorm.Model
	Weather string `json:"weather" gorm:"size:1024;not null"`
}
