package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/tutils/lehmer/counter/period"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// StreamValue is one websocket message of /api/stream
type StreamValue struct {
	Session string  `json:"session"`
	Index   int64   `json:"index"`
	Value   int32   `json:"value"`
	Float   float64 `json:"float"`
}

// handleStream steps a single lane and sends every value until count is
// reached or the client goes away. count=0 streams without limit.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	seed, err := intParam(r, "seed", s.opts.seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := s.kindParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	count, err := intParam(r, "count", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if count < 0 {
		s.writeError(w, r, errors.Wrapf(ErrInvalidParam, "count=%d", count))
		return
	}
	st, err := s.newState(1, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer st.Free()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.opts.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	session := uuid.New().String()[:8]
	log := s.opts.log.With().Str("session", session).Logger()
	log.Info().Int64("seed", seed).Str("kind", kind.String()).Int64("count", count).Msg("stream open")

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	go readLoop(conn, done)
	go startPing(conn, done)

	sent := period.NewPeriodCounter(s.opts.period)
	ctx := r.Context()
	for i := int64(0); count == 0 || i < count; i++ {
		select {
		case <-done:
			log.Info().Int64("sent", sent.Value()).Msg("stream closed by client")
			return
		case <-ctx.Done():
			return
		default:
		}
		msg := StreamValue{Session: session, Index: i, Value: st.Apply(kind)}
		msg.Float = st.Float()
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(&msg); err != nil {
			log.Warn().Err(err).Int64("sent", sent.Value()).Msg("stream write")
			return
		}
		sent.Add(1)
	}
	log.Info().Int64("sent", sent.Value()).Int64("rate", sent.RatePerSec()).Msg("stream done")
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
}

// readLoop drains control frames and closes done when the peer goes away.
func readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
