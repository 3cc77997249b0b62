package services

import (
	"errors"
	"fmt"

	"ztna-portal/backend/app/apperr"
	jwtutil "ztna-portal/backend/app/jwt"
	"ztna-portal/backend/app/models"
	"ztna-portal/backend/app/password"
	"ztna-portal/backend/app/repo"

	"gorm.io/gorm"
)

// UserService orchestrates registration, login and admin user management.
// Every mutating operation writes its audit entry in the same transaction
// as the business row: if the audit append cannot commit, the whole
// operation fails.
type UserService struct {
	db     *gorm.DB
	users  *repo.UserRepository
	logs   *repo.AuditLogRepository
	hasher *password.Hasher
	signer *jwtutil.Signer

	// digest compared against on the unknown-email login path so that path
	// costs the same as a real password mismatch
	dummyHash string
}

func NewUserService(db *gorm.DB, users *repo.UserRepository, logs *repo.AuditLogRepository, hasher *password.Hasher, signer *jwtutil.Signer) *UserService {
	dummyHash, _ := hasher.Hash("no-such-account")
	return &UserService{db: db, users: users, logs: logs, hasher: hasher, signer: signer, dummyHash: dummyHash}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
}

// Register creates a self-registered account. The role is always employee.
func (s *UserService) Register(email, fullName, plain string) (*models.User, error) {
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	u := &models.User{Email: email, FullName: fullName, PasswordHash: hash, Role: models.RoleEmployee}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrEmailTaken
			}
			return err
		}
		return s.logs.WithTx(tx).Append(&models.AuditLog{Actor: email, Action: models.ActionUserRegister})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, storeErr(err)
	}
	return u, nil
}

// Login validates credentials and issues a bearer token. An unknown email
// and a wrong password are indistinguishable to the caller; both leave one
// LOGIN_FAILED entry tagged with the attempted email.
func (s *UserService) Login(email, plain string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, storeErr(err)
	}
	digest := s.dummyHash
	if u != nil {
		digest = u.PasswordHash
	}
	if !s.hasher.Verify(plain, digest) || u == nil {
		if err := s.logs.Append(&models.AuditLog{Actor: email, Action: models.ActionLoginFailed}); err != nil {
			return "", nil, storeErr(err)
		}
		return "", nil, apperr.ErrInvalidCredentials
	}
	token, err := s.signer.Sign(u.Email)
	if err != nil {
		return "", nil, err
	}
	if err := s.logs.Append(&models.AuditLog{Actor: u.Email, Action: models.ActionLoginSuccess}); err != nil {
		return "", nil, storeErr(err)
	}
	return token, u, nil
}

// AdminCreateUser creates an account with a caller-specified role. The
// caller must already have passed the admin guard.
func (s *UserService) AdminCreateUser(caller *models.User, email, fullName, plain, role string) (*models.User, error) {
	switch role {
	case "":
		role = models.RoleEmployee
	case models.RoleAdmin, models.RoleEmployee:
	default:
		return nil, apperr.ErrInvalidRole
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	u := &models.User{Email: email, FullName: fullName, PasswordHash: hash, Role: role}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrEmailTaken
			}
			return err
		}
		detail := fmt.Sprintf("created %s role=%s", email, role)
		return s.logs.WithTx(tx).Append(&models.AuditLog{Actor: caller.Email, Action: models.ActionCreateUser, Detail: detail})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, storeErr(err)
	}
	return u, nil
}

// DeleteUser irrevocably removes the target account. Deleting yourself is
// rejected before anything is written, so no audit entry appears.
func (s *UserService) DeleteUser(caller *models.User, targetID uint) error {
	target, err := s.users.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return storeErr(err)
	}
	if target.ID == caller.ID {
		return apperr.ErrSelfDelete
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		n, err := s.users.WithTx(tx).DeleteByID(target.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.ErrNotFound
		}
		return s.logs.WithTx(tx).Append(&models.AuditLog{Actor: caller.Email, Action: models.ActionDeleteUser, Detail: target.Email})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrNotFound
		}
		return storeErr(err)
	}
	return nil
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// EnsureAdmin seeds the configured admin account once. Seeding is startup
// plumbing, not a user action, so it writes no audit entry.
func (s *UserService) EnsureAdmin(email, fullName, plain string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Email: email, FullName: fullName, PasswordHash: hash, Role: models.RoleAdmin})
}
