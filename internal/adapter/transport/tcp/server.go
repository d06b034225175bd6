package tcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
)

const (
	errUnknownCommand = "unknown command"
	errRateLimited    = "rate limit exceeded"
	errLineTooLong    = "command line too long"

	// maxLineBytes caps a single command line; longer input ends the session.
	maxLineBytes = 1024
)

type Server struct {
	log       *slog.Logger
	addr      string
	idle      time.Duration
	newPicker func() Picker
	limit     rate.Limit
	burst     int
	ln        net.Listener
	wg        sync.WaitGroup
	connsMu   sync.Mutex
	active    map[net.Conn]struct{}
	shutdownT time.Duration
}

// NewServer serves one picker session per connection; newPicker is called once per accepted connection.
func NewServer(log *slog.Logger, addr string, idle time.Duration, shutdown time.Duration, newPicker func() Picker) *Server {
	return &Server{
		log:       log,
		addr:      addr,
		idle:      idle,
		shutdownT: shutdown,
		newPicker: newPicker,
		limit:     rate.Inf,
		active:    make(map[net.Conn]struct{}),
	}
}

// WithRateLimit caps every session at perSec commands per second with the given burst.
// A non-positive perSec leaves sessions unlimited.
func (s *Server) WithRateLimit(perSec float64, burst int) *Server {
	if perSec <= 0 {
		s.limit = rate.Inf
		return s
	}
	if burst < 1 {
		burst = 1
	}
	s.limit = rate.Limit(perSec)
	s.burst = burst
	return s
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.ln = ln
	s.log.Info("server started", "addr", s.addr, "idle_timeout", s.idle.String(), "rate_limit", limitString(s.limit), "burst", s.burst)

	errCh := make(chan error, 1)
	go func() { errCh <- s.acceptLoop() }()

	select {
	case <-ctx.Done():

		s.log.Info("shutdown: closing listener")
		_ = s.ln.Close()

		s.connsMu.Lock()
		for c := range s.active {
			_ = c.SetDeadline(time.Now().Add(200 * time.Millisecond))
			if tc, ok := c.(*net.TCPConn); ok {
				_ = tc.CloseWrite()
			}
		}
		s.connsMu.Unlock()

		done := make(chan struct{})
		go func() { s.wg.Wait(); close(done) }()
		select {
		case <-done:
			s.log.Info("shutdown: all sessions drained")
		case <-time.After(s.shutdownT):
			s.log.Warn("shutdown: force-close remaining sessions")
			s.connsMu.Lock()
			for c := range s.active {
				_ = c.Close()
			}
			s.connsMu.Unlock()
		}
		return nil

	case err := <-errCh:
		return err
	}
}

func (s *Server) acceptLoop() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.log.Warn("temporary accept error", "err", err)
				time.Sleep(50 * time.Millisecond)
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.track(conn, true)
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer s.track(c, false)
			s.handle(c)
		}(conn)
	}
}

func (s *Server) track(c net.Conn, add bool) {
	s.connsMu.Lock()
	if add {
		s.active[c] = struct{}{}
	} else {
		delete(s.active, c)
	}
	s.connsMu.Unlock()
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	id := uuid.NewString()
	log := s.log.With("session", id, "remote", conn.RemoteAddr().String())
	picker := s.newPicker()
	limiter := rate.NewLimiter(s.limit, s.burst)

	bw := bufio.NewWriter(conn)
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 256), maxLineBytes)

	s.touch(conn)
	hello := entity.Hello{Session: id, Total: picker.Len(), Left: picker.EligibleCount()}
	if err := writeLine(bw, hello); err != nil {
		log.Debug("write hello failed", "err", err)
		return
	}
	log.Info("session started", "total", hello.Total)

	for {
		s.touch(conn)
		if !sc.Scan() {
			if errors.Is(sc.Err(), bufio.ErrTooLong) {
				_ = writeLine(bw, snapshot(picker, entity.Reply{Error: errLineTooLong, Bye: true}))
				log.Warn("command line too long, closing session", "limit", maxLineBytes)
				return
			}
			log.Debug("session closed", "err", sc.Err())
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(sc.Text()))
		if cmd == "" {
			continue
		}

		var reply entity.Reply
		if cmd == entity.CmdQuit || limiter.Allow() {
			reply = execute(picker, cmd)
		} else {
			reply = snapshot(picker, entity.Reply{Error: errRateLimited})
		}

		if err := writeLine(bw, reply); err != nil {
			log.Debug("write reply failed", "err", err)
			return
		}
		log.Debug("command", "cmd", cmd, "left", reply.Left, "error", reply.Error)

		if reply.Bye {
			log.Info("session finished", "left", reply.Left)
			return
		}
	}
}

func (s *Server) touch(conn net.Conn) {
	if s.idle > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.idle))
	}
}

func execute(p Picker, cmd string) entity.Reply {
	var r entity.Reply
	switch cmd {
	case entity.CmdPick:
		picked := p.PickRandom()
		r.Picked = &picked
	case entity.CmdReset:
		p.Reset()
	case entity.CmdList:
		r.Movies = p.All()
	case entity.CmdLeft, entity.CmdCurrent:
	case entity.CmdQuit:
		r.Bye = true
	default:
		r.Error = errUnknownCommand
	}
	return snapshot(p, r)
}

// snapshot fills the counters and selection every reply carries.
func snapshot(p Picker, r entity.Reply) entity.Reply {
	r.Left = p.EligibleCount()
	r.Total = p.Len()
	if m, ok := p.Current(); ok {
		r.Selected = &m
	}
	return r
}

func limitString(l rate.Limit) string {
	if l == rate.Inf {
		return "unlimited"
	}
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "/s"
}

func writeLine(bw *bufio.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := bw.Write(append(payload, '\n')); err != nil {
		return err
	}
	return bw.Flush()
}
