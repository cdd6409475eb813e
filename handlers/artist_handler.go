package handlers

import (
	"net/http"
	"strconv"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artistService services.ArtistService
	helper        *helper.HTTPHelper
}

func NewArtistHandler(artistService services.ArtistService, h *helper.HTTPHelper) *ArtistHandler {
	return &ArtistHandler{artistService: artistService, helper: h}
}

func (h *ArtistHandler) ListApproved(c *gin.Context) {
	artists, err := h.artistService.ListApproved()
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid artist ID"))
		return
	}

	artist, err := h.artistService.GetByID(uint(id))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Apply(c *gin.Context) {
	identityID := c.GetString("identity_id")

	var req models.ApplyArtistRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	artist, err := h.artistService.Apply(identityID, req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) ListForAdmin(c *gin.Context) {
	var params models.AdminStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid query parameters"))
		return
	}

	artists, err := h.artistService.ListForAdmin(params.Status)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid artist ID"))
		return
	}

	artist, err := h.artistService.Approve(c.Request.Context(), uint(id))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid artist ID"))
		return
	}

	var req models.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Reason is optional; an empty body rejects without one.
		req = models.RejectRequest{}
	}

	artist, err := h.artistService.Reject(uint(id), req.Reason)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}
