// Package sdktest provides an in-memory SweetShelf API for tests.
//
// It implements the same REST surface as the real service closely enough to
// exercise the SDK end to end: bcrypt-hashed accounts, HS256 tokens carrying
// a role claim, bearer checks on /sweets, and ADMIN checks on mutations.
package sdktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// RecordedRequest captures what the server saw for one call.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	name  string
	email string
	hash  []byte
	role  string
}

type failure struct {
	status  int
	message string
}

// Server is a running fake API. Close is registered with t.Cleanup.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	secret   []byte
	accounts map[string]account
	sweets   []sdk.Sweet
	nextID   int
	requests []RecordedRequest
	failures []failure
	latency  time.Duration
}

// NewServer starts a fake API for the duration of the test.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		secret:   []byte("sdktest-secret"),
		accounts: map[string]account{},
	}
	s.srv = httptest.NewServer(s.router())
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API base address, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

// AddUser registers an account directly, bypassing /auth/register.
func (s *Server) AddUser(name, email, password, role string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("sdktest: hash password: %v", err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[strings.ToLower(email)] = account{name: name, email: email, hash: hash, role: role}
}

// AddSweet stores a sweet and returns it with its assigned ID.
func (s *Server) AddSweet(sweet sdk.Sweet) sdk.Sweet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(sdk.InputFrom(sweet))
}

// Sweets returns a copy of the current inventory.
func (s *Server) Sweets() []sdk.Sweet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sdk.Sweet(nil), s.sweets...)
}

// Requests returns every request received so far, in order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// FailNext makes the next request fail with status and a {"message"} body.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, message: message})
}

// SetLatency delays every response by d.
func (s *Server) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// Token issues a signed credential for email with the given role.
func (s *Server) Token(email, role string) sdk.Credential {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    email,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic(fmt.Sprintf("sdktest: sign token: %v", err))
	}
	return sdk.Credential(signed)
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", sdk.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.requireRole(""))
			r.Get("/sweets", s.handleList)
			r.Post("/sweets/{id}/purchase", s.handlePurchase)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.requireRole(sdk.RoleAdmin))
			r.Post("/sweets", s.handleCreate)
			r.Put("/sweets/{id}", s.handleUpdate)
			r.Delete("/sweets/{id}", s.handleDelete)
			r.Post("/sweets/{id}/restock", s.handleRestock)
		})
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(sdk.RequestIDHeader),
		})
		latency := s.latency
		var fail *failure
		if len(s.failures) > 0 {
			fail = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()

		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-r.Context().Done():
				return
			}
		}
		if fail != nil {
			writeMessage(w, fail.status, fail.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole checks the bearer token; an empty role accepts any valid token.
func (s *Server) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}
			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return s.secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if role != "" && claims["role"] != role {
				writeMessage(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in sdk.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(in.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": string(s.Token(acct.email, acct.role))})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in sdk.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" || in.Email == "" || in.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	s.mu.Lock()
	_, exists := s.accounts[strings.ToLower(in.Email)]
	s.mu.Unlock()
	if exists {
		writeMessage(w, http.StatusConflict, "User already exists")
		return
	}
	s.AddUser(in.Name, in.Email, in.Password, sdk.RoleUser)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Sweets())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in sdk.SweetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" || in.Category == "" {
		writeMessage(w, http.StatusBadRequest, "Name and category are required")
		return
	}
	s.mu.Lock()
	sweet := s.insertLocked(in)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, sweet)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var in sdk.SweetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mutate(w, chi.URLParam(r, "id"), func(sw *sdk.Sweet) (int, string) {
		sw.Name, sw.Category, sw.Price, sw.Quantity = in.Name, in.Category, in.Price, in.Quantity
		return http.StatusOK, ""
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sweets {
		if s.sweets[i].ID == id {
			s.sweets = append(s.sweets[:i], s.sweets[i+1:]...)
			writeMessage(w, http.StatusOK, "Sweet deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Sweet not found")
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, chi.URLParam(r, "id"), func(sw *sdk.Sweet) (int, string) {
		if sw.Quantity <= 0 {
			return http.StatusBadRequest, "Out of stock"
		}
		sw.Quantity--
		return http.StatusOK, ""
	})
}

func (s *Server) handleRestock(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Quantity <= 0 {
		writeMessage(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}
	s.mutate(w, chi.URLParam(r, "id"), func(sw *sdk.Sweet) (int, string) {
		sw.Quantity += in.Quantity
		return http.StatusOK, ""
	})
}

// mutate applies fn to the sweet with id and writes the result.
func (s *Server) mutate(w http.ResponseWriter, id string, fn func(*sdk.Sweet) (int, string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sweets {
		if s.sweets[i].ID != id {
			continue
		}
		status, message := fn(&s.sweets[i])
		if message != "" {
			writeMessage(w, status, message)
			return
		}
		now := time.Now().UTC()
		s.sweets[i].UpdatedAt = &now
		writeJSON(w, status, s.sweets[i])
		return
	}
	writeMessage(w, http.StatusNotFound, "Sweet not found")
}

func (s *Server) insertLocked(in sdk.SweetInput) sdk.Sweet {
	s.nextID++
	now := time.Now().UTC()
	sweet := sdk.Sweet{
		ID:        fmt.Sprintf("sweet-%03d", s.nextID),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	s.sweets = append(s.sweets, sweet)
	return sweet
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
