package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"election_dashboard/internal/election"
	"election_dashboard/internal/live"
	"election_dashboard/internal/logger"
	"election_dashboard/internal/metrics"
	"election_dashboard/internal/middleware"
	"election_dashboard/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	msgHistoricalFailed = "Failed to fetch historical data"
	msgNewsFailed       = "Failed to fetch news"
	msgInvalidSeats     = "Invalid seat update"
)

// HistoricalResults отдаёт агрегированные итоги прошлых выборов.
type HistoricalResults interface {
	Results(ctx context.Context) ([]models.YearlyTally, error)
}

// NewsFetcher отдаёт нормализованные новости из RSS-ленты.
type NewsFetcher interface {
	FetchNews(ctx context.Context) ([]models.NewsItem, error)
}

// ErrorResponse — единый конверт ошибки API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Server хранит зависимости HTTP-обработчиков.
type Server struct {
	historical HistoricalResults
	news       NewsFetcher
	board      *live.Board
	metrics    *metrics.Metrics
}

// NewServer создаёт новый экземпляр Server.
func NewServer(historical HistoricalResults, news NewsFetcher, board *live.Board, m *metrics.Metrics) *Server {
	return &Server{
		historical: historical,
		news:       news,
		board:      board,
		metrics:    m,
	}
}

// Handler собирает маршрутизатор со всеми маршрутами и middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(s.metrics))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/historicalResults", s.GetHistoricalResults).Methods(http.MethodGet)
	api.HandleFunc("/fetchNews", s.FetchNews).Methods(http.MethodGet)
	api.HandleFunc("/live-results", s.GetLiveResults).Methods(http.MethodGet)
	api.HandleFunc("/live-results", s.UpdateLiveResults).Methods(http.MethodPut)
	api.HandleFunc("/live-results", s.ResetLiveResults).Methods(http.MethodDelete)
	api.HandleFunc("/projections", s.GetProjections).Methods(http.MethodGet)
	api.HandleFunc("/exitPoll", s.GetExitPoll).Methods(http.MethodGet)
	api.HandleFunc("/keyConstituencies", s.GetKeyConstituencies).Methods(http.MethodGet)

	r.HandleFunc("/health", s.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return middleware.RequestIDMiddleware(middleware.LoggingMiddleware(r))
}

// HealthCheck всегда отвечает 200 OK: у сервиса нет обязательных внешних зависимостей.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// GetHistoricalResults возвращает JSON-массив из шести итогов по отслеживаемым годам.
func (s *Server) GetHistoricalResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.historical.Results(r.Context())
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, msgHistoricalFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// FetchNews проксирует RSS-ленту и возвращает JSON-массив новостей.
func (s *Server) FetchNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.FetchNews(r.Context())
	if err != nil {
		s.metrics.NewsFetches.WithLabelValues("error").Inc()
		s.fail(w, r, http.StatusInternalServerError, msgNewsFailed, err)
		return
	}
	s.metrics.NewsFetches.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, items)
}

// GetLiveResults возвращает текущие объявленные места и время последнего изменения.
func (s *Server) GetLiveResults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.Snapshot())
}

// UpdateLiveResults принимает {"Lab": 10, ...} и выставляет места перечисленных партий.
func (s *Server) UpdateLiveResults(w http.ResponseWriter, r *http.Request) {
	var changes map[string]int
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		s.fail(w, r, http.StatusBadRequest, msgInvalidSeats, err)
		return
	}

	snap, err := s.board.Update(changes)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, msgInvalidSeats, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// ResetLiveResults обнуляет табло перед новым подсчётом и возвращает пустой снимок.
func (s *Server) ResetLiveResults(w http.ResponseWriter, r *http.Request) {
	s.board.Reset()
	writeJSON(w, http.StatusOK, s.board.Snapshot())
}

// GetProjections сравнивает диапазоны прогноза с текущими местами.
func (s *Server) GetProjections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, election.Projections(s.board.Snapshot().Seats))
}

func (s *Server) GetExitPoll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, election.ExitPoll())
}

func (s *Server) GetKeyConstituencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, election.KeyConstituencies())
}

// fail логирует исходную ошибку и отвечает общим конвертом без частичных данных.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	log := logger.Log.WithFields(logger.Fields{
		"path":       r.URL.Path,
		"request_id": middleware.RequestID(r.Context()),
		"error":      err.Error(),
	})
	if errors.Is(err, context.Canceled) || status < http.StatusInternalServerError {
		log.Warn(message)
	} else {
		log.Error(message)
	}

	writeJSON(w, status, ErrorResponse{Error: message, Details: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorf("Failed to encode response: %v", err)
	}
}
