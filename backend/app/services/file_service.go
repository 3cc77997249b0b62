package services

import (
	"errors"
	"io"
	"path/filepath"

	"ztna-portal/backend/app/apperr"
	"ztna-portal/backend/app/models"
	"ztna-portal/backend/app/repo"
	"ztna-portal/backend/app/storage"

	"gorm.io/gorm"
)

// FileService stores uploaded bytes in the blob store and tracks them with
// FileRecord rows. Filenames are unique across the namespace; a duplicate
// upload is rejected, not versioned.
type FileService struct {
	db    *gorm.DB
	files *repo.FileRepository
	logs  *repo.AuditLogRepository
	blobs *storage.Disk
}

func NewFileService(db *gorm.DB, files *repo.FileRepository, logs *repo.AuditLogRepository, blobs *storage.Disk) *FileService {
	return &FileService{db: db, files: files, logs: logs, blobs: blobs}
}

// Upload writes the blob first, then commits record + audit entry in one
// transaction. The blob is removed again if the transaction rolls back.
// The filename is stripped of any path components up front so the record
// and the blob share one namespace.
func (s *FileService) Upload(uploader *models.User, filename string, r io.Reader) (*models.FileRecord, error) {
	filename = filepath.Base(filename)
	path, err := s.blobs.Put(filename, r)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.ErrDuplicateFilename
		}
		return nil, err
	}
	rec := &models.FileRecord{Filename: filename, StoragePath: path, UploaderEmail: uploader.Email}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.files.WithTx(tx).Create(rec); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrDuplicateFilename
			}
			return err
		}
		return s.logs.WithTx(tx).Append(&models.AuditLog{Actor: uploader.Email, Action: models.ActionFileUpload, Detail: filename})
	})
	if err != nil {
		_ = s.blobs.Remove(path)
		if errors.Is(err, apperr.ErrDuplicateFilename) {
			return nil, apperr.ErrDuplicateFilename
		}
		return nil, storeErr(err)
	}
	return rec, nil
}

// Download returns the record and an open stream; the caller closes it.
func (s *FileService) Download(id uint) (*models.FileRecord, io.ReadCloser, error) {
	rec, err := s.files.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.ErrNotFound
		}
		return nil, nil, storeErr(err)
	}
	rc, err := s.blobs.Get(rec.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, apperr.ErrNotFound
		}
		return nil, nil, err
	}
	return rec, rc, nil
}

func (s *FileService) List() ([]models.FileRecord, error) {
	files, err := s.files.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return files, nil
}
