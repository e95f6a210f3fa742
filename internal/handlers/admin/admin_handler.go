// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Welcome renders the authenticated landing page. The session gate runs
// before this handler; by the time it executes the caller is the admin.
func (h *AdminHandler) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_welcome.html", gin.H{})
}
