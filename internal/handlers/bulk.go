package handlers

import (
	"net/http"

	"Taskboard/internal/auth"
	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"
	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type BulkHandler struct {
	svc *service.BulkService
}

func NewBulkHandler(svc *service.BulkService) *BulkHandler {
	return &BulkHandler{svc: svc}
}

// Apply godoc
// @Summary      Apply one operation to many todos
// @Description  Best effort by default: successful mutations are kept when others fail.
// @Description  With "atomic": true either every todo changes or none does.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.BulkRequest  true  "Operation"
// @Success      200   {object}  dto.DataResponse{data=dto.BulkResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.BulkErrorResponse
// @Failure      500   {object}  dto.BulkErrorResponse
// @Router       /todos/bulk [post]
func (h *BulkHandler) Apply(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in := service.BulkRequest{
		Op:     service.BulkOp(req.Op),
		IDs:    req.IDs,
		Atomic: req.Atomic,
	}
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.CategoryID.Set {
		in.CategoryID = req.CategoryID.Value
		in.ClearCategory = req.CategoryID.Value == nil
	}

	res, err := h.svc.Apply(c.Request.Context(), auth.UserIDFromContext(c), in)
	body := dto.BulkResponse{Succeeded: res.Succeeded, Failed: res.Failed}
	if err != nil {
		if res.Failed == nil {
			respondError(c, err, "bulk operation failed")
			return
		}
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.JSON(status, gin.H{"error": service.Message(err, "bulk operation failed"), "data": body})
		return
	}
	respondData(c, http.StatusOK, body)
}
