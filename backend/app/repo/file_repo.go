package repo

import (
	"ztna-portal/backend/app/models"

	"gorm.io/gorm"
)

type FileRepository struct{ db *gorm.DB }

func NewFileRepository(db *gorm.DB) *FileRepository { return &FileRepository{db: db} }

func (r *FileRepository) WithTx(tx *gorm.DB) *FileRepository { return &FileRepository{db: tx} }

func (r *FileRepository) Create(f *models.FileRecord) error { return r.db.Create(f).Error }

func (r *FileRepository) FindByID(id uint) (*models.FileRecord, error) {
	var f models.FileRecord
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepository) List() ([]models.FileRecord, error) {
	var files []models.FileRecord
	err := r.db.Order("id DESC").Find(&files).Error
	return files, err
}
