package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	GetReservation(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
	FormDefaults(c *ginext.Context)
	Health(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.DELETE("/reservations/:id", h.DeleteReservation)

		api.GET("/defaults", h.FormDefaults)
	}

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
