package models

import "gorm.io/gorm"

type Secret struct {
	gorm.Model

	AuthorID string `gorm:"index"` // session user id at creation time; may be empty
	Content  string `gorm:"not null"`

	// Relationships
	Comments []Comment `gorm:"foreignKey:SecretID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
