package httpapi

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/netwatch/internal/domain"
	"github.com/hamed0406/netwatch/internal/report"
)

// Server is the optional read-only status API. It observes records as the
// watcher emits them and serves the latest one plus the current month's
// outages; it never runs probes of its own.
type Server struct {
	Logger    *zap.Logger
	RecordDir string

	mu     sync.RWMutex
	latest *domain.HealthRecord
}

func NewServer(l *zap.Logger, recordDir string) *Server {
	return &Server{Logger: l, RecordDir: recordDir}
}

// Observe implements the watcher's record hook.
func (s *Server) Observe(rec domain.HealthRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := rec
	s.latest = &cp
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/outages", s.handleOutages)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	if latest == nil {
		http.Error(w, "no cycle completed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(latest)
}

type outagePayload struct {
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Duration    string          `json:"duration"`
	FirstStatus domain.Status   `json:"first_status"`
	Statuses    []domain.Status `json:"statuses"`
	Rows        int             `json:"rows"`
}

func (s *Server) handleOutages(w http.ResponseWriter, r *http.Request) {
	tag := report.MonthTag(time.Now())
	outages, err := report.ScanFile(report.LogPath(s.RecordDir, tag))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.Logger.Warn("outage_scan_error", zap.String("month", tag), zap.Error(err))
		http.Error(w, "scan error", http.StatusInternalServerError)
		return
	}

	payload := make([]outagePayload, 0, len(outages))
	for _, o := range outages {
		payload = append(payload, outagePayload{
			Start:       o.Start,
			End:         o.End,
			Duration:    report.HumanDuration(o.Duration()),
			FirstStatus: o.FirstStatus,
			Statuses:    o.Statuses,
			Rows:        o.Rows,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"month":   tag,
		"outages": payload,
	})
}
