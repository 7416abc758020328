package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/service"
)

type LoansHandler struct{ svc service.LoanService }

func NewLoansHandler(svc service.LoanService) *LoansHandler {
	return &LoansHandler{svc: svc}
}

func (h *LoansHandler) List(c *gin.Context) {
	var q dto.LoanListQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), middleware.GetSession(c), q)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LoansHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	loan, err := h.svc.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoansHandler) ByDealer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	loans, err := h.svc.ByDealer(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoansHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetSession(c), id); err != nil {
		upstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
