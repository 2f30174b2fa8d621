package api

import (
	"net/http"
	"strconv"

	"github.com/avoicu/airdesk/internal/service/registry"
	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service registry.RegistryUseCase
}

func NewStaffHandler(service registry.RegistryUseCase) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.delete)
}

func (h *StaffHandler) create(c *gin.Context) {
	var req registry.AddStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.service.AddStaff(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) list(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context(), c.Query("role"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
