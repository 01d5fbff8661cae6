package handlers

import (
	"net/http"

	"Taskboard/internal/auth"
	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"
	"Taskboard/internal/repo"
	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DataResponse{data=[]dto.CategoryResponse}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch categories")
		return
	}
	respondData(c, http.StatusOK, dto.CategoriesFromDomain(list))
}

// Create godoc
// @Summary      Create a category
// @Description  Color must be one of the category palette.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCategoryRequest  true  "Category"
// @Success      201   {object}  dto.DataResponse{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Name, req.Color)
	if err != nil {
		respondError(c, err, "failed to create category")
		return
	}
	respondData(c, http.StatusCreated, dto.CategoryFromDomain(cat))
}

// Update godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                     true  "Category ID"
// @Param        body  body      dto.UpdateCategoryRequest  true  "Partial update"
// @Success      200   {object}  dto.DataResponse{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), repo.CategoryPatch{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err, "failed to update category")
		return
	}
	respondData(c, http.StatusOK, dto.CategoryFromDomain(cat))
}

// Delete godoc
// @Summary      Delete a category
// @Description  Todos of the category keep existing without a category.
// @Tags         categories
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete category")
		return
	}
	respondSuccess(c)
}

// Palettes godoc
// @Summary      Accepted label colors
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.DataResponse{data=dto.PalettesResponse}
// @Router       /palettes [get]
func Palettes(c *gin.Context) {
	respondData(c, http.StatusOK, dto.PalettesResponse{
		Categories: dom.CategoryColors,
		Tags:       dom.TagColors,
	})
}
