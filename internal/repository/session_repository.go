package repository

import (
	"errors"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// SessionRepository 会话本地持久化接口
type SessionRepository interface {
	Load() (*models.Session, error)
	Save(session *models.Session) error
	Clear() error
}

// GormSessionRepository GORM 实现（单行存储）
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建会话仓库
func NewSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Load 读取当前会话，不存在时返回 nil
func (r *GormSessionRepository) Load() (*models.Session, error) {
	var session models.Session
	if err := r.db.Order("id DESC").First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// Save 覆盖保存会话
func (r *GormSessionRepository) Save(session *models.Session) error {
	if session == nil {
		return r.Clear()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		row := *session
		row.ID = 0
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		session.ID = row.ID
		return nil
	})
}

// Clear 清空会话
func (r *GormSessionRepository) Clear() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error
}
