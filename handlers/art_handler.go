package handlers

import (
	"net/http"
	"strconv"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type ArtHandler struct {
	artService services.ArtService
	helper     *helper.HTTPHelper
}

func NewArtHandler(artService services.ArtService, h *helper.HTTPHelper) *ArtHandler {
	return &ArtHandler{artService: artService, helper: h}
}

func (h *ArtHandler) List(c *gin.Context) {
	var params models.ArtListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid query parameters"))
		return
	}

	arts, err := h.artService.List(params.Category)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, arts)
}

func (h *ArtHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	art, err := h.artService.Get(uint(id))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, art)
}

func (h *ArtHandler) Create(c *gin.Context) {
	identityID := c.GetString("identity_id")

	var req models.CreateArtRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	art, err := h.artService.Create(identityID, req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, art)
}

func (h *ArtHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	var req models.UpdateArtRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	art, err := h.artService.Update(uint(id), req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, art)
}

func (h *ArtHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	if err := h.artService.Delete(uint(id)); err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Art deleted successfully"})
}

func (h *ArtHandler) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	result, err := h.artService.ToggleLike(uint(id), c.GetString("identity_id"))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ArtHandler) IncrementView(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	if err := h.artService.IncrementView(uint(id)); err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArtHandler) ListForAdmin(c *gin.Context) {
	var params models.AdminArtListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid query parameters"))
		return
	}

	arts, err := h.artService.ListForAdmin(params.Visible)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, arts)
}

func (h *ArtHandler) Ban(c *gin.Context) {
	h.setBanned(c, true)
}

func (h *ArtHandler) Unban(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *ArtHandler) setBanned(c *gin.Context, banned bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	art, err := h.artService.SetBanned(uint(id), banned)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, art)
}
