package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tutils/lehmer"
)

// APIResponse is the envelope of every JSON reply
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server exposes generators over HTTP. Every request except /api/next owns
// a fresh state; /api/next advances one shared state.
type Server struct {
	opts   ServerOptions
	shared *lehmer.SyncState
	mux    *http.ServeMux
	srv    *http.Server
}

// NewServer creates a server and its shared state.
func NewServer(opts ...ServerOption) (*Server, error) {
	opt := newServerOptions(opts...)

	st, err := lehmer.New(opt.size, opt.seed, lehmer.WithLogger(opt.log))
	if err != nil {
		return nil, errors.Wrap(err, "shared state")
	}

	s := &Server{
		opts:   *opt,
		shared: lehmer.NewSyncState(st),
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/sequence", s.handleSequence)
	s.mux.HandleFunc("/api/next", s.handleNext)
	s.mux.HandleFunc("/api/bernoulli", s.handleBernoulli)
	s.mux.HandleFunc("/api/binomial", s.handleBinomial)
	s.mux.HandleFunc("/api/prime", s.handlePrime)
	s.mux.HandleFunc("/api/stream", s.handleStream)

	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: s.mux,
	}
	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	s.opts.log.Info().Str("addr", s.opts.addr).Msg("starting lehmer server")
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data}); err != nil {
		s.opts.log.Error().Err(err).Str("path", r.URL.Path).Msg("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if r.Method != http.MethodGet {
		status = http.StatusMethodNotAllowed
	}
	s.opts.log.Warn().Err(err).Str("client", r.RemoteAddr).Str("path", r.URL.Path).Msg("bad request")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{Success: false, Error: err.Error()})
}

func intParam(r *http.Request, name string, def int64) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidParam, "%s=%q", name, v)
	}
	return n, nil
}

func floatParam(r *http.Request, name string) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, errors.Wrap(ErrMissingParam, name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidParam, "%s=%q", name, v)
	}
	return f, nil
}

func (s *Server) kindParam(r *http.Request) (lehmer.Kind, error) {
	v := r.URL.Query().Get("kind")
	if v == "" {
		return s.opts.kind, nil
	}
	return lehmer.ParseKind(v)
}

// boundedParam reads a count in [min, maxLength].
func (s *Server) boundedParam(r *http.Request, name string, def, min int64) (int, error) {
	n, err := intParam(r, name, def)
	if err != nil {
		return 0, err
	}
	if n < min {
		return 0, errors.Wrapf(ErrInvalidParam, "%s=%d", name, n)
	}
	if n > int64(s.opts.maxLength) {
		return 0, errors.Wrapf(ErrTooLarge, "%s=%d exceeds %d", name, n, s.opts.maxLength)
	}
	return int(n), nil
}
