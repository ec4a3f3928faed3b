package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/restoflow/restaurant-manager/events"
	"github.com/restoflow/restaurant-manager/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TableFeedHandler -> websocket feed perubahan meja untuk dashboard.
// Identitas diambil dari WebSocketAuthMiddleware (token via query param).
func TableFeedHandler(c *gin.Context) {
	roleValue, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleValue.(string)
	if role != models.RoleAdmin && role != models.RoleStaff && role != models.RoleSuperadmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	events.RegisterClient(ws, companyFromContext(c))

	// Block sampai client menutup koneksi.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	events.UnregisterClient(ws)
}
