package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"

	"go.uber.org/zap"
)

// dailyTargetPayload is the wire shape of the daily-target scalar.
type dailyTargetPayload struct {
	DailyTarget float64 `json:"dailyTarget"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// collection resolves the {name} path segment. Unknown names are the one
// request error the API layer reports itself; the ledger beneath stays
// no-op based.
func (s *Server) collection(w http.ResponseWriter, r *http.Request) (models.Collection, bool) {
	c := models.Collection(r.PathValue("name"))
	if !c.Valid() {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return "", false
	}
	return c, true
}

func (s *Server) tradeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid trade id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (s *Server) listTradesHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}

	trades := s.ledger.Trades(c)
	if trades == nil {
		trades = []models.TradeRecord{}
	}
	s.writeJSON(w, http.StatusOK, trades)
}

func (s *Server) addTradeHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}

	var form models.TradeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid trade payload", http.StatusBadRequest)
		return
	}

	record := s.ledger.AddTrade(form, c)
	s.writeJSON(w, http.StatusCreated, record)
}

func (s *Server) updateTradeHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}
	id, ok := s.tradeID(w, r)
	if !ok {
		return
	}

	var form models.TradeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid trade payload", http.StatusBadRequest)
		return
	}

	s.ledger.UpdateTrade(id, form, c)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTradeHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}
	id, ok := s.tradeID(w, r)
	if !ok {
		return
	}

	s.ledger.DeleteTrade(id, c)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearTradesHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}

	s.ledger.ClearTrades(c)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.collection(w, r)
	if !ok {
		return
	}

	stats := journal.CalculateStats(s.ledger.Trades(c))
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) getDailyTargetHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, dailyTargetPayload{DailyTarget: s.ledger.DailyTarget()})
}

func (s *Server) setDailyTargetHandler(w http.ResponseWriter, r *http.Request) {
	var payload dailyTargetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid daily target payload", http.StatusBadRequest)
		return
	}

	s.ledger.SetDailyTarget(payload.DailyTarget)
	w.WriteHeader(http.StatusNoContent)
}
