package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// upgrader mirrors the teacher's websocket_server.go wsUpgrader:
// permissive CheckOrigin (this is a local simulation tool, not a
// multi-tenant service) and generous buffers.
var upgrader = websocket.Upgrader{
	CheckOrigin:     func(*http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// handleTicks upgrades to a WebSocket and relays the current async
// run's tick snapshots as JSON, one message per simulated tick, until
// the run completes or the client disconnects. Grounded on the
// teacher's websocket_server.go statusHandler push loop, adapted from
// polling manager.GetStatus on a ticker to draining a channel the
// engine itself publishes on.
func (s *Server) handleTicks(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	observed := s.current
	s.mu.RUnlock()

	if observed == nil {
		http.Error(w, "no simulation running; POST /v1/simulate?async=true first", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	ticks := observed.Ticks()
	for {
		select {
		case snapshot, ok := <-ticks:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "simulation complete"),
					time.Now().Add(writeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snapshot); err != nil {
				s.logger.Debug("tick write failed, closing connection", "error", err.Error())
				return
			}

		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
