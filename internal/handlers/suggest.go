package handlers

import (
	"net/http"

	"Taskboard/internal/dto"
	"Taskboard/internal/i18n"
	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type SuggestHandler struct {
	svc *service.SuggestService
}

func NewSuggestHandler(svc *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{svc: svc}
}

// Suggest godoc
// @Summary      Suggest todos for a goal
// @Description  Errors are localized by Accept-Language (en, id).
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.SuggestRequest  true  "Goal"
// @Success      200   {object}  dto.DataResponse{data=[]string}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /suggestions [post]
func (h *SuggestHandler) Suggest(c *gin.Context) {
	lang := i18n.Match(c.GetHeader("Accept-Language"))
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.svc.Suggest(c.Request.Context(), lang, req.Goal)
	if err != nil {
		respondError(c, err, i18n.T(lang, i18n.GenerateFailed))
		return
	}
	respondData(c, http.StatusOK, list)
}
