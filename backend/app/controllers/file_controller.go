package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"ztna-portal/backend/app/dto"
	"ztna-portal/backend/app/middleware"
	"ztna-portal/backend/app/services"
)

const maxUploadBytes = 64 << 20 // 64MB

type FileController struct{ Files *services.FileService }

func NewFileController(files *services.FileService) *FileController {
	return &FileController{Files: files}
}

// Handle dispatches /api/files by method.
func (c *FileController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.List(w, r)
	case http.MethodPost:
		c.Upload(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	uploader := middleware.GetUser(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file field"})
		return
	}
	defer f.Close()
	rec, err := c.Files.Upload(uploader, hdr.Filename, f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.FileResponse{ID: rec.ID, Filename: rec.Filename, Uploader: rec.UploaderEmail, UploadedAt: rec.CreatedAt})
}

func (c *FileController) List(w http.ResponseWriter, r *http.Request) {
	files, err := c.Files.List()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.FileResponse, 0, len(files))
	for _, rec := range files {
		out = append(out, dto.FileResponse{ID: rec.ID, Filename: rec.Filename, Uploader: rec.UploaderEmail, UploadedAt: rec.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *FileController) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	rec, rc, err := c.Files.Download(uint(id))
	if err != nil {
		writeError(w, err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Filename))
	_, _ = io.Copy(w, rc)
}
