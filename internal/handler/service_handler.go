package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendahub/internal/core"
)

type createServiceRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
	BusinessID  int64  `json:"businessId"`
}

func (h *Handler) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido"})
		return
	}

	sv, err := h.core.CreateService(c.Request.Context(), principal(c), core.CreateServiceParams{
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		BusinessID:  req.BusinessID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sv)
}

type updateServiceRequest struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Duration    *int    `json:"duration"`
	Description *string `json:"description"`
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido"})
		return
	}

	sv, err := h.core.UpdateService(c.Request.Context(), principal(c), id, core.UpdateServiceParams{
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sv)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.core.DeleteService(c.Request.Context(), principal(c), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
