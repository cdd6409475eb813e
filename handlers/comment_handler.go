package handlers

import (
	"net/http"
	"strconv"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, helper: h}
}

func (h *CommentHandler) ListForArt(c *gin.Context) {
	artID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	comments, err := h.commentService.ListForArt(uint(artID))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	artID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid art ID"))
		return
	}

	var req models.CreateCommentRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	comment, err := h.commentService.Create(uint(artID), req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid comment ID"))
		return
	}

	err = h.commentService.Delete(c.Request.Context(), uint(commentID), c.GetString("identity_id"))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
