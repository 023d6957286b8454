package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/room"
)

// @Summary Create new room
// @Description Create a new room with a single human player (team A)
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "room": rx, "playerId": rx.Players[0].ID})
	}
}

// @Summary Join an existing room
// @Description Join as the second player (team B); the match starts
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName required"})
			return
		}
		rx, p, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "playerId": p.ID})
	}
}

// @Summary Play one turn
// @Description Place a piece, queue its premoves and resolve the team's moves
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TurnRequest true "Turn data"
// @Success 200 {object} map[string]interface{}
// @Router /turn [post]
func TurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		res, err := rm.TakeTurn(rx, req.PlayerID, req.Row, req.Col, req.Premoves)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"result": res,
			"room":   rx,
			"winner": rx.WinnerID,
			"draw":   rx.Draw,
		})
	}
}

// @Summary Get room state
// @Description Full room snapshot: board, pieces, queues, turn and outcome
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Get premove cap
// @Description Maximum queued steps per piece for the room's board size
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /premove-cap [get]
func PremoveCapHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"boardSize":  rx.Board.Size(),
			"premoveCap": rx.Board.PremoveCap(),
		})
	}
}

// @Summary Reset room
// @Description Clear the board and turn state for a rematch
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.ResetRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		rm.Reset(rx)
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}
