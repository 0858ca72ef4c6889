package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kampusadmin/dashboard-api/internal/dto"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.FromUser(user))
}
