package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/api/ws"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/reset", ResetHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/turn", TurnHandler(rm))
	r.GET("/state", StateHandler(rm))
	r.GET("/premove-cap", PremoveCapHandler(rm))

	return r
}
