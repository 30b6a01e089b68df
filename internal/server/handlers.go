package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError reports a failure in the response body. Clients key off the
// "error" field, not the status code.
func (s *Server) writeError(w http.ResponseWriter, symbol string, err error) {
	s.writeJSON(w, map[string]string{
		"error":  err.Error(),
		"symbol": symbol,
	})
}

// handleRoot responds to GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "Crypto Value Analyzer running"})
}

// handleHealth responds to GET /health with uptime and system stats.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cpuAvg, memUsed := s.getSystemStats()

	cached, err := s.store.Count()
	if err != nil {
		s.log.Warn().Err(err).Msg("Snapshot count failed")
	}

	s.writeJSON(w, map[string]interface{}{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"tracked":        len(s.symbols),
		"cached":         cached,
		"cpu_percent":    cpuAvg,
		"memory_percent": memUsed,
	})
}

// handleCryptos responds to GET /cryptos. Cached snapshots are served when
// present; otherwise the whole universe is analyzed live and cached.
func (s *Server) handleCryptos(w http.ResponseWriter, r *http.Request) {
	cached, err := s.store.List()
	if err != nil {
		s.log.Warn().Err(err).Msg("Snapshot list failed, computing live")
	}
	if len(cached) > 0 {
		s.writeJSON(w, map[string]interface{}{
			"cryptos": cached,
			"total":   len(cached),
			"source":  "database_cache",
		})
		return
	}

	results := s.analyzer.AnalyzeAll(s.symbols, 8)
	if err := s.store.ReplaceAll(results); err != nil {
		s.log.Warn().Err(err).Msg("Snapshot cache write failed")
	}

	s.writeJSON(w, map[string]interface{}{
		"cryptos": results,
		"total":   len(results),
		"source":  "real_time_computed",
	})
}

// handleAnalyze responds to GET /analyze/{symbol} with a fresh snapshot.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	result, err := s.analyzer.Analyze(symbol)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}

	if err := s.store.Upsert(result); err != nil {
		s.log.Warn().Err(err).Str("symbol", result.Symbol).Msg("Snapshot upsert failed")
	}

	s.writeJSON(w, result)
}

// handleHistory responds to GET /history/{symbol} with one year of closes.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	points, err := s.analyzer.History(symbol)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{"data": points})
}

// getSystemStats returns average CPU and RAM usage percentages. The short
// CPU sampling interval keeps the health endpoint fast.
func (s *Server) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
