package handlers

import (
	"net/http"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type HomepageHandler struct {
	homepageService services.HomepageService
	helper          *helper.HTTPHelper
}

func NewHomepageHandler(homepageService services.HomepageService, h *helper.HTTPHelper) *HomepageHandler {
	return &HomepageHandler{homepageService: homepageService, helper: h}
}

func (h *HomepageHandler) Get(c *gin.Context) {
	config, err := h.homepageService.Get()
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *HomepageHandler) Set(c *gin.Context) {
	var req models.UpdateHomepageRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	config, err := h.homepageService.Set(req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}
