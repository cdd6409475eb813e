package handlers

import (
	"net/http"
	"strconv"

	"artmarket-api/helper"
	"artmarket-api/models"
	"artmarket-api/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
	helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, helper: h}
}

func (h *BlogHandler) ListApproved(c *gin.Context) {
	blogs, err := h.blogService.ListApproved()
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid blog ID"))
		return
	}

	blog, err := h.blogService.Get(uint(id))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Create(c *gin.Context) {
	identityID := c.GetString("identity_id")

	var req models.CreateBlogRequest
	if !h.helper.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.blogService.Create(identityID, req)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) ListForAdmin(c *gin.Context) {
	var params models.AdminStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid query parameters"))
		return
	}

	blogs, err := h.blogService.ListForAdmin(params.Status)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid blog ID"))
		return
	}

	blog, err := h.blogService.Approve(uint(id))
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendAppError(c, models.NewValidationError("Invalid blog ID"))
		return
	}

	var req models.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.RejectRequest{}
	}

	blog, err := h.blogService.Reject(uint(id), req.Reason)
	if err != nil {
		h.helper.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}
