// Package ws serves a live preview of an animation: composed frames are
// broadcast to websocket clients while a playback loop steps through the
// sequence.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/grid"
	"github.com/coreman2200/ledpad/internal/project"
)

// State owns the frame sequence under preview and the connected clients.
type State struct {
	mu      sync.RWMutex
	frames  []grid.Grid
	cur     int
	speedMS int

	frameID   uint64
	startTime time.Time
	clients   map[*websocket.Conn]bool
}

// NewState starts with the given sequence and per-frame interval in
// milliseconds.
func NewState(frames []grid.Grid, speedMS int) *State {
	if len(frames) == 0 {
		frames = []grid.Grid{grid.New()}
	}
	if speedMS < 10 {
		speedMS = 10
	}
	return &State{
		frames:    frames,
		speedMS:   speedMS,
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
	}
}

// SetFrames swaps the previewed sequence.
func (s *State) SetFrames(frames []grid.Grid) {
	if len(frames) == 0 {
		return
	}
	s.mu.Lock()
	s.frames = frames
	s.cur = 0
	s.mu.Unlock()
}

// RunPlaybackLoop advances and broadcasts frames until the process exits.
func (s *State) RunPlaybackLoop() {
	for {
		s.mu.Lock()
		interval := time.Duration(s.speedMS) * time.Millisecond
		f := s.frames[s.cur]
		s.cur = (s.cur + 1) % len(s.frames)
		s.frameID++
		id := s.frameID
		s.mu.Unlock()

		s.broadcastFrame(f, id)
		time.Sleep(interval)
	}
}

// HandleFramesWS upgrades the connection and registers it for frame pushes.
func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.sendTopology(conn)

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg map[string]any
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			s.applyControl(msg)
		}
	}()
}

// HandleFrames returns the whole sequence as JSON bitstrings, for clients
// that want a one-shot snapshot instead of the stream.
func (s *State) HandleFrames(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	rows := project.MarshalFrames(s.frames)
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"frames": rows})
}

// HandleHealth reports liveness and playback stats.
func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"frames":   len(s.frames),
		"speed_ms": s.speedMS,
		"clients":  len(s.clients),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) applyControl(msg map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := msg["speed_ms"].(float64); ok && v >= 10 {
		s.speedMS = int(v)
	}
	if v, ok := msg["goto"].(float64); ok {
		i := int(v)
		if i >= 0 && i < len(s.frames) {
			s.cur = i
		}
	}
}

func (s *State) sendTopology(conn *websocket.Conn) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	top := map[string]any{
		"width":    grid.Width,
		"height":   grid.Height,
		"frames":   len(s.frames),
		"speed_ms": s.speedMS,
	}
	b, _ := json.Marshal(top)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *State) broadcastFrame(f grid.Grid, id uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type frame struct {
		T       int64    `json:"t"`
		FrameID uint64   `json:"frame_id"`
		Rows    []string `json:"rows"`
	}
	rows := project.MarshalFrames([]grid.Grid{f})[0]
	b, _ := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: id, Rows: rows})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}
