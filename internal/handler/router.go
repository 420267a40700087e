package handler

import (
	"github.com/gin-gonic/gin"

	"agendahub/internal/middleware"
)

// Router wires every route. Public reads (business directory, service
// listings) need no token; register/login sit behind the rate limiter;
// everything else requires an authenticated principal.
func (h *Handler) Router(rl *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(h.log))

	api := r.Group("/api")

	limited := api.Group("", middleware.RateLimit(rl))
	limited.POST("/register", h.Register)
	limited.POST("/login", h.Login)
	api.POST("/refresh", h.Refresh)

	api.GET("/businesses", h.ListBusinesses)
	api.GET("/businesses/:id", h.GetBusiness)
	api.GET("/businesses/:id/services", h.ListBusinessServices)
	api.GET("/businesses/slug/:slug", h.GetBusinessBySlug)

	authed := api.Group("", middleware.Auth(h.secret))
	authed.GET("/user", h.Me)
	authed.POST("/logout", h.Logout)

	authed.POST("/businesses", h.CreateBusiness)
	authed.PATCH("/businesses/:id", h.UpdateBusiness)
	authed.DELETE("/businesses/:id", h.DeleteBusiness)

	authed.POST("/services", h.CreateService)
	authed.PUT("/services/:id", h.UpdateService)
	authed.DELETE("/services/:id", h.DeleteService)

	authed.GET("/appointments", h.ListAppointments)
	authed.POST("/appointments", h.CreateAppointment)
	authed.PATCH("/appointments/:id/status", h.SetAppointmentStatus)

	authed.GET("/users", h.ListUsers)
	authed.GET("/users/:id", h.GetUser)
	authed.PATCH("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)

	authed.GET("/notifications", h.ListNotifications)
	authed.PATCH("/notifications/:id/read", h.MarkNotificationRead)

	return r
}
