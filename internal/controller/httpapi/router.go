package httpapi

import "github.com/julienschmidt/httprouter"

func NewRouter(h *Handler) *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", h.Health)

	router.POST("/api/users", h.RegisterUser)

	router.GET("/api/services", h.ListServices)
	router.POST("/api/services", h.CreateService)
	router.POST("/api/services/:id/templates", h.AddTemplate)
	router.GET("/api/services/:id/slots", h.ServiceSlots)

	router.POST("/api/bookings", h.CreateBooking)
	router.GET("/api/bookings", h.ListBookings)
	router.DELETE("/api/bookings/:id", h.CancelBooking)

	return router
}
