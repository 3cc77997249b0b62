package repo

import (
	"ztna-portal/backend/app/models"

	"gorm.io/gorm"
)

const maxLogPage = 100

type AuditLogRepository struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository { return &AuditLogRepository{db: db} }

func (r *AuditLogRepository) WithTx(tx *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: tx}
}

func (r *AuditLogRepository) Append(l *models.AuditLog) error { return r.db.Create(l).Error }

// List returns entries newest first. Ties on created_at break by id so the
// ordering is stable.
func (r *AuditLogRepository) List(offset, limit int) ([]models.AuditLog, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLogPage {
		limit = maxLogPage
	}
	var logs []models.AuditLog
	err := r.db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&logs).Error
	return logs, err
}
