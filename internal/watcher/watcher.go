package watcher

import (
	"log"
	"time"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"
)

// Watcher periodically checks for expired oxygen sabotages. The clients only
// render deadlines; the server is the one that turns a missed deadline into
// an imposter win.
type Watcher struct {
	sabotageSvc *services.SabotageService
	playerSvc   *services.PlayerService
	hub         *ws.Hub
	interval    time.Duration

	stopCh chan struct{}
}

func New(sabotageSvc *services.SabotageService, playerSvc *services.PlayerService, hub *ws.Hub, interval time.Duration) *Watcher {
	return &Watcher{
		sabotageSvc: sabotageSvc,
		playerSvc:   playerSvc,
		hub:         hub,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (w *Watcher) Start() {
	go w.loop()
	log.Println("[Watcher] started")
}

func (w *Watcher) Stop() {
	close(w.stopCh)
	log.Println("[Watcher] stopped")
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *Watcher) tick() {
	won, err := w.sabotageSvc.ExpireOxygen()
	if err != nil {
		log.Printf("[Watcher] oxygen check failed: %v", err)
		return
	}
	if !won {
		return
	}
	state, err := w.playerSvc.GameState()
	if err != nil {
		log.Printf("[Watcher] failed to load state after win: %v", err)
		return
	}
	w.hub.Broadcast(ws.WSMessage{Type: "game_state", Data: state})
}
