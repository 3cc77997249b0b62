package models

import "time"

// Audit action codes recorded by the services layer.
const (
	ActionUserRegister = "USER_REGISTER_SUCCESS"
	ActionLoginSuccess = "LOGIN_SUCCESS"
	ActionLoginFailed  = "LOGIN_FAILED"
	ActionCreateUser   = "CREATE_USER"
	ActionDeleteUser   = "DELETE_USER"
	ActionFileUpload   = "FILE_UPLOAD"
)

// AuditLog is append-only. The actor is kept as a plain email string rather
// than a foreign key so entries survive user deletion and failed logins by
// unknown emails can still be recorded.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	Actor     string `gorm:"index;size:191"`
	Action    string `gorm:"size:64;not null"`
	Detail    string `gorm:"size:512"`
	CreatedAt time.Time
}
