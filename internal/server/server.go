// Package server exposes a Converter over HTTP and WebSocket.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	katakana "github.com/ieee0824/katakana-eigo"
	"github.com/ieee0824/katakana-eigo/internal/logging"
	"github.com/ieee0824/katakana-eigo/lexicon"
	"github.com/ieee0824/katakana-eigo/notation"
)

// Server routes requests to a Converter.
type Server struct {
	cfg      Config
	conv     *katakana.Converter
	upgrader websocket.Upgrader
}

// New creates a Server.
func New(cfg Config, conv *katakana.Converter) *Server {
	s := &Server{cfg: cfg, conv: conv}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

// Handler returns the routed handler with request ids and access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/katakanize", s.handleKatakanize)
	mux.HandleFunc("POST /v1/phonemes", s.handlePhonemes)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return withRequestID(mux)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logging.Info("server_startup", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

type katakanizeRequest struct {
	Text string `json:"text"`
}

type phonemesRequest struct {
	Phonemes string `json:"phonemes"`
}

type conversionResponse struct {
	ID       string `json:"id"`
	Katakana string `json:"katakana"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
	lexicon.Info
}

func (s *Server) handleKatakanize(w http.ResponseWriter, r *http.Request) {
	var req katakanizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.conv.Katakanize(r.Context(), req.Text)
	if err != nil {
		logging.LoggerFromContext(r.Context()).Error("katakanize_failed", "error", err)
		respondError(w, r, http.StatusInternalServerError, "conversion failed")
		return
	}
	respond(w, http.StatusOK, conversionResponse{ID: logging.GetRequestID(r.Context()), Katakana: out})
}

func (s *Server) handlePhonemes(w http.ResponseWriter, r *http.Request) {
	var req phonemesRequest
	if !s.decode(w, r, &req) {
		return
	}
	ps, err := notation.Parse(req.Phonemes)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	respond(w, http.StatusOK, conversionResponse{ID: logging.GetRequestID(r.Context()), Katakana: s.conv.Render(ps)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info, err := lexicon.Describe(r.Context(), s.conv.Source)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "dictionary unavailable")
		return
	}
	respond(w, http.StatusOK, healthResponse{Status: "ok", Info: info})
}

// handleStream converts each text message to one katakana reply.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxMessageSize)

	log := logging.LoggerFromContext(r.Context())
	log.Info("stream_opened")
	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("stream_read_failed", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		out, err := s.conv.Katakanize(r.Context(), string(msg))
		if err != nil {
			log.Error("katakanize_failed", "error", err)
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "conversion failed"))
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(out)); err != nil {
			log.Warn("stream_write_failed", "error", err)
			return
		}
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respond(w, status, errorResponse{ID: logging.GetRequestID(r.Context()), Error: message})
}

// statusRecorder captures the response status for access logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection.
func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("server: response writer does not support hijacking")
	}
	rec.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// withRequestID assigns every request an id (reusing X-Request-ID when the
// client sends a valid UUID) and logs the request when it completes.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := logging.WithRequestID(r.Context(), id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))
		logging.HTTPRequestContext(ctx, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
