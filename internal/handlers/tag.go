package handlers

import (
	"net/http"

	"Taskboard/internal/auth"
	"Taskboard/internal/dto"
	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	svc *service.TagService
}

func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// List godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DataResponse{data=[]dto.TagResponse}
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch tags")
		return
	}
	respondData(c, http.StatusOK, dto.TagsFromDomain(list))
}

// Create godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTagRequest  true  "Tag"
// @Success      201   {object}  dto.DataResponse{data=dto.TagResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Name, req.Color)
	if err != nil {
		respondError(c, err, "failed to create tag")
		return
	}
	respondData(c, http.StatusCreated, dto.TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
}

// Delete godoc
// @Summary      Delete a tag
// @Tags         tags
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete tag")
		return
	}
	respondSuccess(c)
}
