package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"agendahub/internal/core"
	"agendahub/internal/model"
)

func (h *Handler) ListAppointments(c *gin.Context) {
	var businessID int64
	if raw := c.Query("businessId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "ID de estabelecimento inválido"})
			return
		}
		businessID = id
	}

	out, err := h.core.ListAppointments(c.Request.Context(), principal(c), businessID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type createAppointmentRequest struct {
	ServiceID int64     `json:"serviceId"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	ClientID  int64     `json:"clientId"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de data inválido"})
		return
	}

	a, err := h.core.CreateAppointment(c.Request.Context(), principal(c), core.CreateAppointmentParams{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Notes:     req.Notes,
		ClientID:  req.ClientID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

type setStatusRequest struct {
	Status model.AppointmentStatus `json:"status"`
}

func (h *Handler) SetAppointmentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status é obrigatório"})
		return
	}

	a, err := h.core.SetAppointmentStatus(c.Request.Context(), principal(c), id, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
