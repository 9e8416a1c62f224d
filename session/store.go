package session

import (
	"errors"

	"paydash/models"

	"gorm.io/gorm"
)

// GormStore persists sessions through the shared database connection.
type GormStore struct {
	Db *gorm.DB
}

// Save upserts the session row.
func (g *GormStore) Save(id, token, refreshToken, authUser string) error {
	var existing models.Session
	err := g.Db.Where("session_id = ? AND is_deleted = false", id).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return g.Db.Create(&models.Session{
			SessionID:    id,
			Token:        token,
			RefreshToken: refreshToken,
			AuthUser:     authUser,
		}).Error
	}
	if err != nil {
		return err
	}

	existing.Token = token
	existing.RefreshToken = refreshToken
	existing.AuthUser = authUser
	return g.Db.Save(&existing).Error
}

// Load reads the persisted session row.
func (g *GormStore) Load(id string) (string, string, string, error) {
	var row models.Session
	if err := g.Db.Where("session_id = ? AND is_deleted = false", id).First(&row).Error; err != nil {
		return "", "", "", err
	}
	return row.Token, row.RefreshToken, row.AuthUser, nil
}

// Delete soft-deletes the session row.
func (g *GormStore) Delete(id string) error {
	return g.Db.Model(&models.Session{}).
		Where("session_id = ?", id).
		Update("is_deleted", true).Error
}
