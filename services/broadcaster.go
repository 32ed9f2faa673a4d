package services

import "github.com/Dosada05/scouting-system/live"

// Broadcaster pushes prediction updates to websocket rooms. Satisfied by
// *live.Hub; services treat a nil broadcaster as "live feed disabled".
type Broadcaster interface {
	BroadcastToRoom(room string, message live.Message)
}
