package store

import (
	"errors"

	"github.com/dojo-secrets/dojosecrets/internal/models"
	"gorm.io/gorm"
)

// UserStore persists credential records. Email uniqueness is enforced by the
// database unique index, so concurrent duplicate registrations cannot both
// succeed.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register validates the email and persists one record. The plaintext
// password length check happens in the auth flow before hashing; only the
// digest reaches this store.
func (s *UserStore) Register(email, passwordHash string) (*models.User, error) {
	if messages := models.ValidateEmail(email); len(messages) > 0 {
		return nil, ValidationErrors(messages)
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
