package store

import (
	"errors"

	"github.com/dojo-secrets/dojosecrets/internal/models"
	"gorm.io/gorm"
)

// SecretStore persists secrets and the comment sequence each one owns.
// Comments have no lifecycle of their own: they are appended to a live secret
// and removed with it.
type SecretStore struct {
	db *gorm.DB
}

func NewSecretStore(db *gorm.DB) *SecretStore {
	return &SecretStore{db: db}
}

func (s *SecretStore) Create(authorID, content string) (*models.Secret, error) {
	if messages := models.ValidateContent(content); len(messages) > 0 {
		return nil, ValidationErrors(messages)
	}

	secret := models.Secret{
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.db.Create(&secret).Error; err != nil {
		return nil, err
	}

	return &secret, nil
}

// ListAll returns every secret with its comments in insertion order. The
// list order itself is not contracted.
func (s *SecretStore) ListAll() ([]models.Secret, error) {
	var secrets []models.Secret

	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.id ASC")
	}).Find(&secrets).Error

	if err != nil {
		return nil, err
	}

	return secrets, nil
}

func (s *SecretStore) GetByID(id uint) (*models.Secret, error) {
	var secret models.Secret

	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.id ASC")
	}).First(&secret, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &secret, nil
}

// AppendComment atomically appends one comment to the target secret.
// Validation runs before any write, so a rejected comment never mutates the
// sequence.
func (s *SecretStore) AppendComment(secretID uint, content string) (*models.Secret, error) {
	if messages := models.ValidateContent(content); len(messages) > 0 {
		return nil, ValidationErrors(messages)
	}

	var secret models.Secret

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&secret, secretID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		comment := models.Comment{
			SecretID: secretID,
			Content:  content,
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		// Reload inside the transaction so the returned snapshot cannot
		// race a concurrent delete of the secret.
		return tx.Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).First(&secret, secretID).Error
	})

	if err != nil {
		return nil, err
	}

	return &secret, nil
}

// DeleteByID removes the secret and its entire comment sequence in one
// transaction.
func (s *SecretStore) DeleteByID(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var secret models.Secret

		if err := tx.Select("id").First(&secret, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("secret_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&secret).Error
	})
}
