// Package realtimetest provides an in-memory realtime backend for tests.
//
// The server implements every gathering pool and gathering endpoint, checks
// request signatures against its own credentials, paginates list calls and
// records each request it receives.
//
//	srv := realtimetest.NewServer()
//	defer srv.Close()
//	creds, _ := client.NewBasicCredentials(realtimetest.ClientID, realtimetest.ClientSecret)
//	c, _ := client.New("", creds, client.WithBaseURL(srv.URL))
package realtimetest

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/gs2io/gs2-realtime-go/client/internal/signature"
)

// Default credentials accepted by a Server.
const (
	ClientID     = "realtimetest-client"
	clientSecret = "realtimetest-secret"
)

// ClientSecret is the base64 secret matching ClientID.
var ClientSecret = base64.StdEncoding.EncodeToString([]byte(clientSecret))

// RecordedRequest is one request as the server saw it.
type RecordedRequest struct {
	Method   string
	Path     string // escaped path
	RawQuery string
	Body     string
	Header   http.Header
}

// Option configures a Server.
type Option func(*Server)

// WithReadyAfter makes new gatherings report an address only once they have
// been fetched n times, simulating a game server that takes time to boot.
func WithReadyAfter(n int) Option {
	return func(s *Server) { s.readyAfter = n }
}

// WithoutAuth disables signature checks.
func WithoutAuth() Option {
	return func(s *Server) { s.auth = false }
}

// WithOwnerID sets the ownerId stamped on created entities.
func WithOwnerID(id string) Option {
	return func(s *Server) { s.ownerID = id }
}

// Server is a running fake backend.
type Server struct {
	URL string

	srv        *httptest.Server
	store      *store
	auth       bool
	key        []byte
	ownerID    string
	readyAfter int

	mu       sync.Mutex
	requests []RecordedRequest
	failures []failure
}

type failure struct {
	status  int
	message string
}

// NewServer starts a Server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{auth: true, ownerID: "owner-0001"}
	for _, opt := range opts {
		opt(s)
	}
	key, err := signature.DecodeSecret(ClientSecret)
	if err != nil {
		panic(err)
	}
	s.key = key
	s.store = newStore(s.ownerID, s.readyAfter)
	s.srv = httptest.NewServer(s.router())
	s.URL = s.srv.URL
	return s
}

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// Client returns an http.Client wired to the server.
func (s *Server) Client() *http.Client { return s.srv.Client() }

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false if none arrived.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// FailNext makes the next request fail with status and a JSON error envelope
// carrying message. Calls queue up.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, message: message})
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.UseEncodedPath()
	r.Use(recoverer, s.record, s.inject, s.verify)

	r.HandleFunc("/gatheringPool", s.describeGatheringPool).Methods(http.MethodGet).Name("DescribeGatheringPool")
	r.HandleFunc("/gatheringPool", s.createGatheringPool).Methods(http.MethodPost).Name("CreateGatheringPool")
	r.HandleFunc("/gatheringPool/{pool}", s.getGatheringPool).Methods(http.MethodGet).Name("GetGatheringPool")
	r.HandleFunc("/gatheringPool/{pool}", s.updateGatheringPool).Methods(http.MethodPut).Name("UpdateGatheringPool")
	r.HandleFunc("/gatheringPool/{pool}", s.deleteGatheringPool).Methods(http.MethodDelete).Name("DeleteGatheringPool")
	r.HandleFunc("/gatheringPool/{pool}/gathering", s.describeGathering).Methods(http.MethodGet).Name("DescribeGathering")
	r.HandleFunc("/gatheringPool/{pool}/gathering", s.createGathering).Methods(http.MethodPost).Name("CreateGathering")
	r.HandleFunc("/gatheringPool/{pool}/gathering/{gathering}", s.getGathering).Methods(http.MethodGet).Name("GetGathering")
	r.HandleFunc("/gatheringPool/{pool}/gathering/{gathering}", s.deleteGathering).Methods(http.MethodDelete).Name("DeleteGathering")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// record stores the request and restores its body for the handler.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Body:     string(body),
			Header:   r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// inject answers with a queued failure, if any.
func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var f *failure
		if len(s.failures) > 0 {
			f = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()
		if f != nil {
			writeError(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// verify checks the signature headers against the operation named by the
// matched route.
func (s *Server) verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.auth {
			next.ServeHTTP(w, r)
			return
		}
		op := mux.CurrentRoute(r).GetName()
		if r.Header.Get(signature.HeaderClientID) != ClientID {
			writeError(w, http.StatusUnauthorized, "unknown client id")
			return
		}
		ts, err := strconv.ParseInt(r.Header.Get(signature.HeaderTimestamp), 10, 64)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid request timestamp")
			return
		}
		if !signature.Verify(s.key, "Gs2Realtime", op, ts, r.Header.Get(signature.HeaderSignature)) {
			writeError(w, http.StatusUnauthorized, "signature mismatch")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Msg("realtimetest: panic recovered")
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
