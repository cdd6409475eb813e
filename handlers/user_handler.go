package handlers

import (
	"net/http"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, helper: h}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	profile, err := h.userService.GetMe(c.GetString("identity_id"))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpsertMe(c *gin.Context) {
	var req models.UpsertProfileRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.userService.UpsertMe(c.GetString("identity_id"), req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
