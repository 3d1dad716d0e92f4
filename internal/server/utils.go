package server

import (
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
)

// writeJSON serializes v with the proper content type
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("failed to encode response: %v", err)
	}
}

// uniform draws from [min, max)
func uniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// randBetween draws an integer from [min, max)
func randBetween(min, max int) int {
	return min + rand.Intn(max-min)
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
