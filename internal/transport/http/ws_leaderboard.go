package http

import (
	"log"
	"net/http"
)

// handleLeaderboardWS streams ranking updates. The client gets the current
// snapshot on connect and a fresh ranking every time one is published.
func (a *API) handleLeaderboardWS(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := a.leaderboard.Subscribe()
	defer cancel()

	if snapshot, err := a.leaderboard.Snapshot(r.Context()); err == nil {
		if err := conn.WriteJSON(snapshot); err != nil {
			return
		}
	}

	// Reads are discarded; the loop only exists to notice a closed peer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entries, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(entries); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
