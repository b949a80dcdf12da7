//go:build e2e

package fakeprovider

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Status is what the fake provider A status API reports for one token.
type Status struct {
	Status          int            `json:"status"`
	Amount          string         `json:"amount,omitempty"`
	Currency        string         `json:"currency,omitempty"`
	PaymentDetail   map[string]any `json:"paymentDetail,omitempty"`
	ProviderOrderID string         `json:"providerOrderId,omitempty"`
	Metadata        string         `json:"metadata,omitempty"`
}

// Message is one mail accepted by the fake mail API.
type Message struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// Server stands in for provider A, provider B verification and the mail API.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	statuses    map[string]Status
	verifyReply string
	verified    [][]byte
	messages    []Message
}

func New() *Server {
	s := &Server{statuses: map[string]Status{}, verifyReply: "VERIFIED"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /provider-a/payments/{token}/status", s.status)
	mux.HandleFunc("POST /provider-b/verify", s.verify)
	mux.HandleFunc("POST /mail/messages", s.mail)
	s.Server = httptest.NewServer(mux)
	return s
}

func (s *Server) ProviderAURL() string { return s.URL + "/provider-a" }
func (s *Server) ProviderBURL() string { return s.URL + "/provider-b/verify" }
func (s *Server) MailURL() string      { return s.URL + "/mail" }

func (s *Server) SetStatus(token string, st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[token] = st
}

// SetVerifyReply changes what provider B answers to echo verification.
func (s *Server) SetVerifyReply(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifyReply = reply
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = map[string]Status{}
	s.verifyReply = "VERIFIED"
	s.verified = nil
	s.messages = nil
}

func (s *Server) Messages(template string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Message
	for _, m := range s.messages {
		if m.Template == template {
			out = append(out, m)
		}
	}
	return out
}

// VerifiedBodies returns the raw bodies posted for echo verification.
func (s *Server) VerifiedBodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.verified...)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st, ok := s.statuses[r.PathValue("token")]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.verified = append(s.verified, body)
	reply := s.verifyReply
	s.mu.Unlock()

	if !strings.HasPrefix(string(body), "cmd=_notify-validate&") {
		reply = "INVALID"
	}
	_, _ = io.WriteString(w, reply)
}

func (s *Server) mail(w http.ResponseWriter, r *http.Request) {
	var m Message
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"sent":true,"id":"fake"}`)
}
