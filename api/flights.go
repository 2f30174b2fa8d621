package api

import (
	"net/http"

	"github.com/avoicu/airdesk/internal/service/registry"
	"github.com/avoicu/airdesk/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	registry    registry.RegistryUseCase
	reservation reservation.ReservationUseCase
}

type assignCrewRequest struct {
	StaffIDs []int64 `json:"staff_ids"`
}

func NewFlightHandler(reg registry.RegistryUseCase, res reservation.ReservationUseCase) *FlightHandler {
	return &FlightHandler{registry: reg, reservation: res}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/search", h.search)
	router.DELETE("/:number", h.delete)
	router.POST("/:number/crew", h.assignCrew)
	router.GET("/:number/crew", h.listCrew)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req registry.AddFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.registry.AddFlight(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.registry.ListFlights(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}
	flights, err := h.reservation.SearchFlights(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.registry.DeleteFlight(c.Request.Context(), c.Param("number")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) assignCrew(c *gin.Context) {
	var req assignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.registry.AssignCrew(c.Request.Context(), c.Param("number"), req.StaffIDs); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) listCrew(c *gin.Context) {
	crew, err := h.registry.ListCrew(c.Request.Context(), c.Param("number"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}
