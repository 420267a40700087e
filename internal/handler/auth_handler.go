package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agendahub/internal/auth"
	"agendahub/internal/core"
	"agendahub/internal/model"
	"agendahub/internal/store"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type registerRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Role       model.Role `json:"role"`
	BusinessID int64      `json:"businessId"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A senha deve ter pelo menos 8 caracteres"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	u, err := h.core.RegisterUser(c.Request.Context(), core.RegisterParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		BusinessID:   req.BusinessID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	tok, refresh, err := h.issueTokens(c, u)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": tok, "refreshToken": refresh})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email e senha são obrigatórios"})
		return
	}

	u, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		// same response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
		return
	}

	tok, refresh, err := h.issueTokens(c, u)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": tok, "refreshToken": refresh})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "refreshToken é obrigatório"})
		return
	}

	ctx := c.Request.Context()
	rt, err := h.store.GetRefreshTokenByHash(ctx, auth.HashRefreshToken(req.RefreshToken))
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sessão expirada"})
		return
	}

	u, err := h.store.GetUser(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Sessão expirada"})
			return
		}
		h.fail(c, err)
		return
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		h.fail(c, err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(ctx, rt.ID, newID, u.ID, newHash, time.Now().Add(refreshTokenTTL)); err != nil {
		h.fail(c, err)
		return
	}

	tok, err := auth.MakeToken(u, h.secret)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "refreshToken": newRaw})
}

func (h *Handler) Logout(c *gin.Context) {
	p := principal(c)
	if err := h.store.RevokeAllRefreshTokens(c.Request.Context(), p.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Me(c *gin.Context) {
	p := principal(c)
	u, err := h.store.GetUser(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autenticado"})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) issueTokens(c *gin.Context, u *model.User) (access, refresh string, err error) {
	access, err = auth.MakeToken(u, h.secret)
	if err != nil {
		return "", "", err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if _, err := h.store.CreateRefreshToken(c.Request.Context(), u.ID, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		return "", "", err
	}
	return access, raw, nil
}
