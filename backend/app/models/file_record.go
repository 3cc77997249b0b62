package models

import "time"

// FileRecord holds metadata for an uploaded blob. UploaderEmail is a soft
// reference: deleting the uploader does not cascade here.
type FileRecord struct {
	ID            uint   `gorm:"primaryKey"`
	Filename      string `gorm:"uniqueIndex;size:191;not null"`
	StoragePath   string `gorm:"size:512;not null"`
	UploaderEmail string `gorm:"index;size:191"`
	CreatedAt     time.Time
}
