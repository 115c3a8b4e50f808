package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type scoreReader interface {
	GetBySessionID(ctx context.Context, sessionID string) (entity.Score, error)
}

type scoreResponse struct {
	SessionID string `json:"session_id"`
	entity.Score
}

// scoreHandler returns the tally the session last published.
func scoreHandler(scores scoreReader, sessionID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, err := scores.GetBySessionID(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err = json.NewEncoder(w).Encode(scoreResponse{SessionID: sessionID, Score: score}); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
