package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/service"
)

type AuditHandler struct{ svc service.AuditService }

func NewAuditHandler(svc service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// Recent lists the latest audit events, newest first.
func (h *AuditHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	events, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load audit events"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": events})
}
