package controllers

import (
	"net/http"
	"strconv"

	"ztna-portal/backend/app/dto"
	"ztna-portal/backend/app/services"
)

type AuditController struct{ Logs *services.AuditService }

func NewAuditController(logs *services.AuditService) *AuditController {
	return &AuditController{Logs: logs}
}

func (c *AuditController) List(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := c.Logs.List(offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogEntry{ID: e.ID, Actor: e.Actor, Action: e.Action, Detail: e.Detail, Timestamp: e.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}
