package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucUser "github.com/kaagyebi/lumea-api/internal/usecase/user"
)

type AdminHandler struct {
	changeRole *ucUser.ChangeRole
}

func NewAdminHandler(changeRole *ucUser.ChangeRole) *AdminHandler {
	return &AdminHandler{changeRole: changeRole}
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user_not_found", "User not found.")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	u, err := h.changeRole.Execute(c.Request.Context(), middleware.Principal(c), id, req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}
