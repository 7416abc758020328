package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/service"
)

type RepresentativesHandler struct{ svc service.RepresentativeService }

func NewRepresentativesHandler(svc service.RepresentativeService) *RepresentativesHandler {
	return &RepresentativesHandler{svc: svc}
}

func (h *RepresentativesHandler) List(c *gin.Context) {
	var q dto.RepresentativeListQuery
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

func (h *RepresentativesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rep, err := h.svc.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (h *RepresentativesHandler) Create(c *gin.Context) {
	var req dto.CreateRepresentativeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rep, err := h.svc.Create(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

func (h *RepresentativesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateRepresentativeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rep, err := h.svc.Update(c.Request.Context(), middleware.GetSession(c), id, req)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (h *RepresentativesHandler) Delete(c *gin.Context) {
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
