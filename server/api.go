package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/prime"
	"github.com/tutils/lehmer/variate"
)

type sequenceResult struct {
	Seed   int64   `json:"seed"`
	Kind   string  `json:"kind"`
	Values []int32 `json:"values"`
}

type nextResult struct {
	Lane  int     `json:"lane"`
	Value int32   `json:"value"`
	Float float64 `json:"float"`
}

type trialsResult struct {
	Seed     int64    `json:"seed"`
	P        float64  `json:"p"`
	N        uint32   `json:"n,omitempty"`
	Outcomes []uint32 `json:"outcomes"`
}

type primeResult struct {
	N     uint64 `json:"n"`
	K     int    `json:"k"`
	Prime bool   `json:"prime"`
}

// newState allocates a state owned by one request.
func (s *Server) newState(size int, seed int64) (*lehmer.State, error) {
	return lehmer.New(size, seed, lehmer.WithLogger(s.opts.log))
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, errors.New("only GET is supported"))
		return
	}
	seed, err := intParam(r, "seed", s.opts.seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	length, err := s.boundedParam(r, "length", int64(s.opts.size), 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := s.kindParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	st, err := s.newState(length, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer st.Free()
	st.Generate(kind, seed)

	s.writeJSON(w, r, sequenceResult{Seed: seed, Kind: kind.String(), Values: st.Lanes()})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, errors.New("only GET is supported"))
		return
	}
	lane, err := intParam(r, "lane", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := s.kindParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var res nextResult
	s.shared.Do(func(st *lehmer.State) {
		st.Select(int(lane))
		res.Lane = st.Index()
		res.Value = st.Apply(kind)
		res.Float = st.Float()
	})
	s.writeJSON(w, r, res)
}

func (s *Server) handleBernoulli(w http.ResponseWriter, r *http.Request) {
	res, st, ok := s.trials(w, r)
	if !ok {
		return
	}
	defer st.Free()
	for i := range res.Outcomes {
		res.Outcomes[i] = uint32(variate.Bernoulli(st, res.P))
	}
	s.writeJSON(w, r, res)
}

func (s *Server) handleBinomial(w http.ResponseWriter, r *http.Request) {
	res, st, ok := s.trials(w, r)
	if !ok {
		return
	}
	defer st.Free()
	n, err := s.boundedParam(r, "n", 1, 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if draws := int64(n) * int64(len(res.Outcomes)); draws > int64(s.opts.maxLength) {
		s.writeError(w, r, errors.Wrapf(ErrTooLarge, "n*trials=%d exceeds %d", draws, s.opts.maxLength))
		return
	}
	res.N = uint32(n)
	for i := range res.Outcomes {
		res.Outcomes[i] = variate.Binomial(st, res.N, res.P)
	}
	s.writeJSON(w, r, res)
}

// trials parses the parameters shared by the samplers.
func (s *Server) trials(w http.ResponseWriter, r *http.Request) (*trialsResult, *lehmer.State, bool) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, errors.New("only GET is supported"))
		return nil, nil, false
	}
	seed, err := intParam(r, "seed", s.opts.seed)
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	p, err := floatParam(r, "p")
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	trials, err := s.boundedParam(r, "trials", 1, 1)
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	st, err := s.newState(1, seed)
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	return &trialsResult{Seed: seed, P: p, Outcomes: make([]uint32, trials)}, st, true
}

func (s *Server) handlePrime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, errors.New("only GET is supported"))
		return
	}
	n, err := intParam(r, "n", -1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if n < 0 {
		s.writeError(w, r, errors.Wrap(ErrMissingParam, "n"))
		return
	}
	k, err := s.boundedParam(r, "k", 20, 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	seed, err := intParam(r, "seed", s.opts.seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	st, err := s.newState(1, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer st.Free()
	s.writeJSON(w, r, primeResult{N: uint64(n), K: k, Prime: prime.IsProbablyPrime(st, uint64(n), k)})
}
