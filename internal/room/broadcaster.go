package room

// Broadcaster pushes room events to connected clients. The websocket
// hub implements it; tests use a no-op.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
