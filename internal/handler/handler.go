package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendahub/internal/core"
	"agendahub/internal/middleware"
	"agendahub/internal/store"
)

type Handler struct {
	core   *core.Core
	store  store.Store
	secret string
	log    *zap.Logger
}

func New(c *core.Core, st store.Store, secret string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{core: c, store: st, secret: secret, log: log}
}

// fail maps the core's failure taxonomy onto HTTP responses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autenticado"})
	case errors.Is(err, core.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"message": "Limite de agendamentos gratuitos atingido. Por favor, faça upgrade para o plano premium."})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Permissão negada"})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Não encontrado"})
	case errors.Is(err, core.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status inválido"})
	case errors.Is(err, core.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campos obrigatórios ausentes ou inválidos"})
	default:
		h.log.Error("internal error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno"})
	}
}

func principal(c *gin.Context) core.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, false
	}
	return id, true
}
