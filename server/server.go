// Package server exposes the dashboard over a JSON HTTP API. All view data is
// recomputed per request from the immutable dataset snapshot, so there is no
// staleness to manage.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"

	"energy-dashboard/charts"
	"energy-dashboard/config"
	"energy-dashboard/metrics"
	"energy-dashboard/models"
	"energy-dashboard/report"
	"energy-dashboard/services"
	"energy-dashboard/storage"
	"energy-dashboard/utils"
)

// Server serves dashboard views over the immutable dataset.
type Server struct {
	ds             *models.Dataset
	logger         *utils.Logger
	insights       *services.InsightService
	uiDist         string
	defaultCountry string

	countries      []string
	fuelsByCountry map[string][]string
}

// DashboardResponse is the full payload for one filtered view.
type DashboardResponse struct {
	Country string                `json:"country"`
	Fuels   []string              `json:"fuels"`
	Metrics models.ViewMetrics    `json:"metrics"`
	Summary []models.FuelCapacity `json:"summary"`
	Chart   []models.ChartPoint   `json:"chart"`
	Markers []models.Marker       `json:"markers"`
	Center  *models.Coordinate    `json:"center"`
	Table   []*models.Plant       `json:"table"`
}

// New builds a Server and warms the per-country fuel index with the worker
// pool so the defaults endpoint never scans the full table per request.
func New(ds *models.Dataset, cfg *config.Config, logger *utils.Logger) *Server {
	s := &Server{
		ds:             ds,
		logger:         logger,
		insights:       services.NewInsightService(logger),
		uiDist:         cfg.UIDist,
		countries:      services.Countries(ds.Plants),
		fuelsByCountry: make(map[string][]string),
	}

	var mu sync.Mutex
	pool := utils.NewWorkerPool(cfg.MaxConcurrency)
	for _, country := range s.countries {
		country := country
		pool.Submit(func() {
			fuels := services.FuelsForCountry(ds.Plants, country)
			mu.Lock()
			s.fuelsByCountry[country] = fuels
			mu.Unlock()
		})
	}
	pool.Wait()

	s.defaultCountry = cfg.DefaultCountry
	if _, ok := s.fuelsByCountry[s.defaultCountry]; !ok && len(s.countries) > 0 {
		s.defaultCountry = s.countries[0]
	}
	logger.Info("[server] Index warmed: %d countries, default %q",
		len(s.countries), s.defaultCountry)
	return s
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/countries", s.handleCountries)
	mux.HandleFunc("/api/fuels", s.handleFuels)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/geojson", s.handleGeoJSON)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.Handle("/metrics", metrics.Handler())

	if st, err := os.Stat(s.uiDist); err == nil && st.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(s.uiDist)))
	}

	return accessMiddleware(s.logger)(mux)
}

// criteriaFrom resolves the country and fuel selection for a request.
// Missing country falls back to the default; a missing fuels parameter means
// "all fuels for that country", while an explicitly empty one selects nothing.
func (s *Server) criteriaFrom(r *http.Request) (string, []string) {
	q := r.URL.Query()

	country := q.Get("country")
	if country == "" {
		country = s.defaultCountry
	}

	if !q.Has("fuels") {
		return country, s.fuelsByCountry[country]
	}
	var fuels []string
	for _, f := range strings.Split(q.Get("fuels"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			fuels = append(fuels, f)
		}
	}
	return country, fuels
}

func (s *Server) filtered(r *http.Request) (string, []string, []*models.Plant) {
	country, fuels := s.criteriaFrom(r)
	plants := services.Filter(s.ds.Plants, models.NewFilterCriteria(country, fuels))
	return country, fuels, plants
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"countries": s.countries,
		"default":   s.defaultCountry,
	})
}

func (s *Server) handleFuels(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		country = s.defaultCountry
	}
	fuels, ok := s.fuelsByCountry[country]
	if !ok {
		fuels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"country": country,
		"fuels":   fuels,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	country, fuels, plants := s.filtered(r)

	summary := s.insights.SummarizeByFuel(plants)
	resp := DashboardResponse{
		Country: country,
		Fuels:   fuels,
		Metrics: s.insights.ComputeMetrics(plants),
		Summary: summary,
		Chart:   services.ToChartSeries(summary),
		Markers: services.ToMarkers(plants),
		Table:   sortedCopy(plants),
	}
	if center, err := s.insights.Centroid(plants); err == nil {
		resp.Center = &center
	} else {
		// Empty view: the client keeps its previous map position.
		metrics.EmptyViewsTotal.Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	_, _, plants := s.filtered(r)
	writeJSON(w, http.StatusOK, services.ToGeoJSON(plants))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	country, _, plants := s.filtered(r)

	data, err := storage.ExportCSV(s.ds.Header, plants)
	if err != nil {
		s.fail(w, "export", err)
		return
	}
	metrics.ExportsTotal.WithLabelValues("csv").Inc()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", country+"_data.csv"))
	_, _ = w.Write(data)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	country, _, plants := s.filtered(r)

	summary := s.insights.SummarizeByFuel(plants)
	data, err := report.Bytes(country, s.insights.ComputeMetrics(plants), summary, plants)
	if err != nil {
		s.fail(w, "report", err)
		return
	}
	metrics.ExportsTotal.WithLabelValues("xlsx").Inc()

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", country+"_report.xlsx"))
	_, _ = w.Write(data)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	country, _, plants := s.filtered(r)

	data, err := charts.CapacityBar(country, s.insights.SummarizeByFuel(plants))
	if errors.Is(err, charts.ErrNoData) {
		http.Error(w, "no data for selected filters", http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "chart", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	s.logger.Error("[server] %s failed: %v", op, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// sortedCopy orders plants by capacity descending without mutating the shared
// dataset slice.
func sortedCopy(plants []*models.Plant) []*models.Plant {
	out := append([]*models.Plant(nil), plants...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapacityMW > out[j].CapacityMW
	})
	return out
}
