package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// AdmissionConfig bounds how fast a single client may hit the allocation
// endpoint. After DelayAfter requests inside a window each request is slowed
// by Delay; after Max requests the client is rejected outright.
type AdmissionConfig struct {
	Window     time.Duration
	Max        int
	DelayAfter int
	Delay      time.Duration
}

// DefaultAdmission mirrors the historical limits: 3 requests per 10 seconds,
// everything after the first one delayed by 500ms.
var DefaultAdmission = AdmissionConfig{
	Window:     10 * time.Second,
	Max:        3,
	DelayAfter: 1,
	Delay:      500 * time.Millisecond,
}

type clientWindow struct {
	start time.Time
	count int
}

// admissionState tracks per-client request counts inside a rolling window.
type admissionState struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	cfg     AdmissionConfig
}

// tick registers one request and reports how it must be treated.
func (s *admissionState) tick(client string, now time.Time) (allowed bool, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.clients[client]
	if !ok || now.Sub(w.start) > s.cfg.Window {
		w = &clientWindow{start: now}
		s.clients[client] = w
	}

	w.count++

	if w.count > s.cfg.Max {
		return false, 0
	}

	if w.count > s.cfg.DelayAfter {
		return true, s.cfg.Delay
	}

	return true, 0
}

// sweep drops windows that expired, keeping the map bounded.
func (s *admissionState) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for client, w := range s.clients {
		if now.Sub(w.start) > s.cfg.Window {
			delete(s.clients, client)
		}
	}
}

// AdmissionController applies rate limiting and post-threshold slowdown per
// client address. It runs upstream of the allocator, which assumes it never
// sees more than the allowed request rate. Stop terminates the background
// sweeper; the owner of the router is expected to call it on shutdown.
type AdmissionController struct {
	state *admissionState
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func NewAdmissionControl(cfg AdmissionConfig) *AdmissionController {
	c := &AdmissionController{
		state: &admissionState{
			clients: make(map[string]*clientWindow),
			cfg:     cfg,
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go c.sweepLoop(cfg.Window)

	return c
}

func (c *AdmissionController) sweepLoop(interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			c.state.sweep(now)
		case <-c.stop:
			return
		}
	}
}

// Stop shuts down the sweeper. Safe to call more than once.
func (c *AdmissionController) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *AdmissionController) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := r.Header.Get("X-Real-IP")
		if client == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			client = host
		}

		allowed, delay := c.state.tick(client, time.Now())
		if !allowed {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
