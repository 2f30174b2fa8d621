package api

import (
	"net/http"
	"strconv"

	"github.com/avoicu/airdesk/internal/service/registry"
	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service registry.RegistryUseCase
}

type createCityRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type createAirportRequest struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	CityID int64  `json:"city_id"`
}

type createGateRequest struct {
	Name      string `json:"name"`
	AirportID int64  `json:"airport_id"`
}

func NewLocationHandler(service registry.RegistryUseCase) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) Register(router *gin.RouterGroup) {
	cities := router.Group("/cities")
	cities.POST("/", h.createCity)
	cities.GET("/", h.listCities)
	cities.DELETE("/:id", h.deleteCity)

	airports := router.Group("/airports")
	airports.POST("/", h.createAirport)
	airports.GET("/", h.listAirports)
	airports.DELETE("/:id", h.deleteAirport)

	gates := router.Group("/gates")
	gates.POST("/", h.createGate)
	gates.GET("/", h.listGates)
	gates.DELETE("/:id", h.deleteGate)
}

func (h *LocationHandler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	city, err := h.service.AddCity(c.Request.Context(), req.Name, req.Country)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *LocationHandler) listCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *LocationHandler) deleteCity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteCity(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LocationHandler) createAirport(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport, err := h.service.AddAirport(c.Request.Context(), req.Name, req.Code, req.CityID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *LocationHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *LocationHandler) deleteAirport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LocationHandler) createGate(c *gin.Context) {
	var req createGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gate, err := h.service.AddGate(c.Request.Context(), req.Name, req.AirportID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gate)
}

func (h *LocationHandler) listGates(c *gin.Context) {
	gates, err := h.service.ListGates(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gates)
}

func (h *LocationHandler) deleteGate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteGate(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
