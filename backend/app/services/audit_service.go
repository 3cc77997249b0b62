package services

import (
	"ztna-portal/backend/app/models"
	"ztna-portal/backend/app/repo"
)

type AuditService struct{ logs *repo.AuditLogRepository }

func NewAuditService(logs *repo.AuditLogRepository) *AuditService {
	return &AuditService{logs: logs}
}

func (s *AuditService) Append(actor, action, detail string) error {
	return s.logs.Append(&models.AuditLog{Actor: actor, Action: action, Detail: detail})
}

// List pages entries newest first.
func (s *AuditService) List(offset, limit int) ([]models.AuditLog, error) {
	entries, err := s.logs.List(offset, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}
