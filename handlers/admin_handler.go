package handlers

import (
	"net/http"

	"artmarket-api/helper"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
	helper       *helper.HTTPHelper
}

func NewAdminHandler(adminService services.AdminService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{adminService: adminService, helper: h}
}

func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.adminService.Overview()
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
