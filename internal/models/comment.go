package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	SecretID uint   `gorm:"not null;index"`
	Content  string `gorm:"not null"`
}
