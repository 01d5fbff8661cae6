package handlers

import (
	"net/http"
	"strconv"

	"Taskboard/internal/auth"
	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"
	"Taskboard/internal/service"
	"Taskboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List todos
// @Description  Filters are AND-ed. tag_ids keeps todos carrying any of the tags.
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        completed    query     bool    false  "Completed flag"
// @Param        priority     query     string  false  "high, medium or low"
// @Param        category_id  query     string  false  "Category ID"
// @Param        tag_ids      query     string  false  "Comma separated tag IDs"
// @Success      200  {object}  dto.DataResponse{data=[]dto.TodoResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), f)
	if err != nil {
		respondError(c, err, "failed to fetch todos")
		return
	}
	respondData(c, http.StatusOK, dto.TodosFromDomain(list))
}

func parseFilter(c *gin.Context) (dom.TodoFilter, error) {
	var f dom.TodoFilter
	if v := c.Query("completed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.Completed = &b
	}
	if v := c.Query("priority"); v != "" {
		p := dom.Priority(v)
		f.Priority = &p
	}
	if v := c.Query("category_id"); v != "" {
		f.CategoryID = &v
	}
	f.TagIDs = utils.SplitCSV(c.Query("tag_ids"))
	return f, nil
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.DataResponse{data=dto.TodoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.NewTodo{
		Content:    req.Content,
		Priority:   dom.Priority(req.Priority),
		CategoryID: req.CategoryID,
		DueDate:    req.DueDate.Ptr(),
	})
	if err != nil {
		respondError(c, err, "failed to create todo")
		return
	}
	respondData(c, http.StatusCreated, dto.TodoFromDomain(t))
}

// Get godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.DataResponse{data=dto.TodoResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch todo")
		return
	}
	respondData(c, http.StatusOK, dto.TodoFromDomain(t))
}

// Update godoc
// @Summary      Update a todo
// @Description  Partial update. "category_id": null removes the category, "due_date": null the due date.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                 true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.DataResponse{data=dto.TodoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), req.Patch())
	if err != nil {
		respondError(c, err, "failed to update todo")
		return
	}
	respondData(c, http.StatusOK, dto.TodoFromDomain(t))
}

// Toggle godoc
// @Summary      Flip the completed flag
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.DataResponse{data=dto.TodoResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c *gin.Context) {
	t, err := h.svc.Toggle(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to toggle todo")
		return
	}
	respondData(c, http.StatusOK, dto.TodoFromDomain(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Description  Deleting a missing todo succeeds.
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete todo")
		return
	}
	respondSuccess(c)
}

// Reorder godoc
// @Summary      Persist the display order
// @Description  Each todo gets its position in ids as sort order.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ReorderRequest  true  "Ordered IDs"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /todos/order [put]
func (h *TodoHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), auth.UserIDFromContext(c), req.IDs); err != nil {
		respondError(c, err, "failed to reorder todos")
		return
	}
	respondSuccess(c)
}

// AttachTag godoc
// @Summary      Attach a tag to a todo
// @Description  Attaching an attached tag is a no-op.
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id     path      string  true  "Todo ID"
// @Param        tagId  path      string  true  "Tag ID"
// @Success      200    {object}  dto.SuccessResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /todos/{id}/tags/{tagId} [post]
func (h *TodoHandler) AttachTag(c *gin.Context) {
	if err := h.svc.AttachTag(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), c.Param("tagId")); err != nil {
		respondError(c, err, "failed to attach tag")
		return
	}
	respondSuccess(c)
}

// DetachTag godoc
// @Summary      Detach a tag from a todo
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id     path      string  true  "Todo ID"
// @Param        tagId  path      string  true  "Tag ID"
// @Success      200    {object}  dto.SuccessResponse
// @Router       /todos/{id}/tags/{tagId} [delete]
func (h *TodoHandler) DetachTag(c *gin.Context) {
	if err := h.svc.DetachTag(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), c.Param("tagId")); err != nil {
		respondError(c, err, "failed to detach tag")
		return
	}
	respondSuccess(c)
}
