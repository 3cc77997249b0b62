package dto

import "time"

type FileResponse struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	Uploader   string    `json:"uploader"`
	UploadedAt time.Time `json:"uploaded_at"`
}
