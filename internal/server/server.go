package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"chartleap/internal/domain"
	"chartleap/internal/logging"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

// PlotRequest is the body of POST /plot.
type PlotRequest struct {
	Equations []string `json:"equations"`
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Equation string `json:"equation"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server answers plot and classify requests over HTTP.
type Server struct {
	plots      domain.PlotService
	classifier domain.Classifier
	mux        *http.ServeMux
}

// New returns a Server backed by plots and classifier.
func New(plots domain.PlotService, classifier domain.Classifier) *Server {
	s := &Server{plots: plots, classifier: classifier, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /plot", s.handlePlot)
	s.mux.HandleFunc("POST /classify", s.handleClassify)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return s
}

// ServeHTTP routes the request and writes one access log line.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &recorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	logging.Logger().Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"status", rec.status,
		"bytes", rec.bytes,
		"duration", time.Since(start),
	)
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.plots.Plot(domain.NormalizeEquations(req.Equations))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := s.classifier.Classify(strings.TrimSpace(req.Equation))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, c.Summary())
}

// decode reads a JSON body into out, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(out); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, ErrorResponse{Error: "bad request: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// recorder captures the status and size of a response.
type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

var _ http.Handler = (*Server)(nil)
