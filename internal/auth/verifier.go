package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"velib_directory/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a username/password pair. Implementations decide
// where accounts live; callers only see pass/fail.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// StaticVerifier accepts exactly one account fixed at construction. This is
// the default backend: the service historically ships with a single
// operator login and no user management.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{username: username, passwordHash: hash}, nil
}

func (v *StaticVerifier) Verify(username, password string) error {
	if username != v.username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GormVerifier looks accounts up in the users table. Drop-in replacement for
// StaticVerifier when real multi-user support is wanted (AUTH_BACKEND=db).
type GormVerifier struct {
	db *gorm.DB
}

func NewGormVerifier(db *gorm.DB) *GormVerifier {
	return &GormVerifier{db: db}
}

func (v *GormVerifier) Verify(username, password string) error {
	var user models.User
	if err := v.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
