package repo

import (
	"ztna-portal/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// WithTx returns a repository bound to tx so callers can span one
// transaction across repositories.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository { return &UserRepository{db: tx} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) DeleteByID(id uint) (int64, error) {
	res := r.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}
