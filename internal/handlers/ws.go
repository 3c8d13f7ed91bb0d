package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var viewUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is handled at the HTTP layer already.
		return true
	},
}

// JournalWebSocket streams view-state snapshots to a display client. The
// stream is one-way: the client gets the latest snapshot on connect and a
// fresh one after every mutation. Inbound frames are drained only to detect
// disconnects and keep the read deadline moving.
func JournalWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := viewUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id := viewHub.Register(conn)
	defer viewHub.Unregister(id)

	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}
