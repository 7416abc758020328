package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	resp, err := h.svc.Admin(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) Dealer(c *gin.Context) {
	resp, err := h.svc.Dealer(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		if errors.Is(err, service.ErrNoDealerRecord) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
