package handlers

import (
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/agenasports/pitch-scheduler/internal/realtime"
)

type StreamHandler struct {
	hub *realtime.Hub
}

func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Reservations streams the full reservation set as server-sent events.
// Every change notification pushes a fresh snapshot; the client replaces
// its local set wholesale and re-derives its views.
func (h *StreamHandler) Reservations(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	snapshots, cancel := h.hub.Subscribe()
	defer cancel()

	// garante o snapshot inicial mesmo antes da primeira notificação
	if _, err := h.hub.Snapshot(c.Request.Context()); err != nil {
		log.Printf("stream: initial snapshot failed: %v", err)
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
