package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendahub/internal/core"
	"agendahub/internal/model"
)

func (h *Handler) ListBusinesses(c *gin.Context) {
	status := model.BusinessStatus(c.DefaultQuery("status", string(model.BusinessActive)))
	out, err := h.core.ListBusinesses(c.Request.Context(), status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.core.GetBusiness(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetBusinessBySlug(c *gin.Context) {
	b, err := h.core.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type createBusinessRequest struct {
	Name        string `json:"name"`
	OwnerName   string `json:"ownerName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (h *Handler) CreateBusiness(c *gin.Context) {
	var req createBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido"})
		return
	}

	b, err := h.core.CreateBusiness(c.Request.Context(), principal(c), core.CreateBusinessParams{
		Name:        req.Name,
		OwnerName:   req.OwnerName,
		Email:       req.Email,
		Phone:       req.Phone,
		Type:        req.Type,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

type updateBusinessRequest struct {
	Name        *string               `json:"name"`
	OwnerName   *string               `json:"ownerName"`
	Email       *string               `json:"email"`
	Phone       *string               `json:"phone"`
	Type        *string               `json:"type"`
	Address     *string               `json:"address"`
	Description *string               `json:"description"`
	Status      *model.BusinessStatus `json:"status"`
	IsPremium   *bool                 `json:"isPremium"`
}

func (h *Handler) UpdateBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido"})
		return
	}

	b, err := h.core.UpdateBusiness(c.Request.Context(), principal(c), id, core.UpdateBusinessParams{
		Name:        req.Name,
		OwnerName:   req.OwnerName,
		Email:       req.Email,
		Phone:       req.Phone,
		Type:        req.Type,
		Address:     req.Address,
		Description: req.Description,
		Status:      req.Status,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.core.DeactivateBusiness(c.Request.Context(), principal(c), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Estabelecimento removido com sucesso"})
}

func (h *Handler) ListBusinessServices(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.core.ListServices(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
