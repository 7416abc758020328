package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/dto"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/service"
)

type DealersHandler struct{ svc service.DealerService }

func NewDealersHandler(svc service.DealerService) *DealersHandler {
	return &DealersHandler{svc: svc}
}

func (h *DealersHandler) Onboard(c *gin.Context) {
	var req dto.OnboardDealerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dealer, err := h.svc.Onboard(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dealer)
}

func (h *DealersHandler) List(c *gin.Context) {
	var q dto.DealerListQuery
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

func (h *DealersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dealer, err := h.svc.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

func (h *DealersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateDealerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dealer, err := h.svc.Update(c.Request.Context(), middleware.GetSession(c), id, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSanctionAmount) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

// Statement streams the dealer's statement PDF as a download.
func (h *DealersHandler) Statement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	path, err := h.svc.Statement(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.FileAttachment(path, "statement.pdf")
}
