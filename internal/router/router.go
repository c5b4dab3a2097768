package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateService(c *ginext.Context)
	GetService(c *ginext.Context)
	ListServices(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetNextSlot(c *ginext.Context)
	GetCalendar(c *ginext.Context)

	CreateAppointment(c *ginext.Context)
	GetAppointment(c *ginext.Context)
	ListAppointments(c *ginext.Context)
	ConfirmAppointment(c *ginext.Context)
	CancelAppointment(c *ginext.Context)
	CompleteAppointment(c *ginext.Context)
	MarkAppointmentNoShow(c *ginext.Context)

	GetCustomer(c *ginext.Context)
	ListCustomers(c *ginext.Context)

	CreateRaffle(c *ginext.Context)
	GetRaffle(c *ginext.Context)
	ListRaffles(c *ginext.Context)
	GenerateTickets(c *ginext.Context)
	GetRaffleAvailability(c *ginext.Context)
	ListTickets(c *ginext.Context)
	ReserveTickets(c *ginext.Context)
	ReserveRandomTickets(c *ginext.Context)

	GetOrder(c *ginext.Context)
	ListPendingOrders(c *ginext.Context)
	ConfirmOrderPayment(c *ginext.Context)
	CancelOrder(c *ginext.Context)
}

// InitRouter wires the HTTP surface. Every /api route runs behind the tenant
// middleware; global middleware comes first in mw.
func InitRouter(mode string, h Handler, tenantMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(tenantMW)
	{
		// Services and availability
		api.POST("/services", h.CreateService)
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)
		api.GET("/services/:id/availability", h.GetAvailability)
		api.GET("/services/:id/next-slot", h.GetNextSlot)
		api.GET("/services/:id/calendar", h.GetCalendar)

		// Appointments
		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments", h.ListAppointments)
		api.GET("/appointments/:id", h.GetAppointment)
		api.POST("/appointments/:id/confirm", h.ConfirmAppointment)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)
		api.POST("/appointments/:id/complete", h.CompleteAppointment)
		api.POST("/appointments/:id/no-show", h.MarkAppointmentNoShow)

		// Customers
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id", h.GetCustomer)

		// Raffles and tickets
		api.POST("/raffles", h.CreateRaffle)
		api.GET("/raffles", h.ListRaffles)
		api.GET("/raffles/:id", h.GetRaffle)
		api.POST("/raffles/:id/tickets", h.GenerateTickets)
		api.GET("/raffles/:id/availability", h.GetRaffleAvailability)
		api.GET("/raffles/:id/tickets", h.ListTickets)
		api.POST("/raffles/:id/reserve", h.ReserveTickets)
		api.POST("/raffles/:id/reserve-random", h.ReserveRandomTickets)

		// Orders
		api.GET("/orders", h.ListPendingOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/confirm-payment", h.ConfirmOrderPayment)
		api.POST("/orders/:id/cancel", h.CancelOrder)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
