// Package fake implements the federation backend REST contract in memory.
// It stands in for the real backend in tests and local development:
// bcrypt-hashed credentials, JWT access tokens, the pending-approval
// workflow, and mock-array tournaments and news.
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/dependencies/clock"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

type account struct {
	user         model.User
	passwordHash []byte
}

// Server is an in-memory federation backend
type Server struct {
	mu     sync.Mutex
	secret []byte
	clock  clock.Clock
	router *mux.Router

	nextUserID int
	accounts   map[string]*account // keyed by user ID

	nextTournamentID int
	tournaments      []model.Tournament

	nextNewsID int
	news       []model.News
}

// New creates a fake backend signing tokens with the given secret
func New(secret string) *Server {
	return NewWithClock(secret, clock.New())
}

// NewWithClock creates a fake backend with an injected clock, so tests
// can control token expiry
func NewWithClock(secret string, clk clock.Clock) *Server {
	s := &Server{
		secret:           []byte(secret),
		clock:            clk,
		nextUserID:       1,
		accounts:         make(map[string]*account),
		nextTournamentID: 1,
		nextNewsID:       1,
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/profile", s.handleProfile).Methods(http.MethodGet)

	r.HandleFunc("/users", s.admin(s.handleListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/users/pending-approval", s.admin(s.handlePendingUsers)).Methods(http.MethodGet)
	r.HandleFunc("/users/stats/overview", s.admin(s.handleUserStats)).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/approve", s.admin(s.handleApproveUser)).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}/reject", s.admin(s.handleRejectUser)).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", s.admin(s.handleDeleteUser)).Methods(http.MethodDelete)

	r.HandleFunc("/tournaments", s.handleListTournaments).Methods(http.MethodGet)
	r.HandleFunc("/tournaments", s.admin(s.handleCreateTournament)).Methods(http.MethodPost)
	r.HandleFunc("/tournaments/{id}", s.admin(s.handleUpdateTournament)).Methods(http.MethodPut)
	r.HandleFunc("/tournaments/{id}", s.admin(s.handleDeleteTournament)).Methods(http.MethodDelete)

	r.HandleFunc("/news", s.handleListNews).Methods(http.MethodGet)
	r.HandleFunc("/news", s.admin(s.handleCreateNews)).Methods(http.MethodPost)
	r.HandleFunc("/news/{id}", s.admin(s.handleUpdateNews)).Methods(http.MethodPut)
	r.HandleFunc("/news/{id}", s.admin(s.handleDeleteNews)).Methods(http.MethodDelete)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SeedUser adds an account directly, bypassing registration.
// Returns the assigned user ID.
func (s *Server) SeedUser(user model.User, password string, roleTitle string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user.ID = strconv.Itoa(s.nextUserID)
	s.nextUserID++
	user.Role = model.Role{Title: roleTitle}
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}
	return user.ID
}

// SeedTournament adds a tournament to the mock array
func (s *Server) SeedTournament(t model.Tournament) model.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTournamentID
	s.nextTournamentID++
	s.tournaments = append(s.tournaments, t)
	return t
}

// SeedNews adds a news article to the mock array
func (s *Server) SeedNews(n model.News) model.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextNewsID
	s.nextNewsID++
	s.news = append(s.news, n)
	return n
}

// Auth handlers

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req backend.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.findByIdentifierLocked(req.LoginIdentifier)
	if acct == nil || bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.issueToken(acct.user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, backend.AuthResponse{AccessToken: token, User: acct.user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload backend.RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(payload.Email) != nil {
		writeMessage(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := model.User{
		ID:        strconv.Itoa(s.nextUserID),
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Role:      model.Role{Title: model.RolePlayer},
		City:      payload.City,
		Cin:       payload.Cin,
		Phone:     payload.Phone,
		BirthDate: payload.BirthDate,
		Address:   payload.Address,
		// New registrations wait for admin approval
		IsActive:       false,
		Discipline:     payload.Discipline,
		PassportNumber: payload.PassportNumber,
		BirthPlace:     payload.BirthPlace,
		StudyLevel:     payload.StudyLevel,
		Club:           payload.Club,
		NationalTeam:   payload.NationalTeam,
	}
	if payload.LicenseNumber != "" {
		user.License = &model.License{Number: payload.LicenseNumber}
	}
	s.nextUserID++
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}

	token, err := s.issueToken(user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusCreated, backend.AuthResponse{AccessToken: token, User: user})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.authenticate(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, acct.user)
}

// Admin user management handlers

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		users = append(users, a.user)
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handlePendingUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]model.User, 0)
	for _, a := range s.accounts {
		if !a.user.IsActive && a.user.Role.Is(model.RolePlayer) {
			pending = append(pending, a.user)
		}
	}
	writeJSON(w, http.StatusOK, pending)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.UserStats{}
	for _, a := range s.accounts {
		stats.TotalUsers++
		if a.user.IsActive {
			stats.ActiveUsers++
		} else if a.user.Role.Is(model.RolePlayer) {
			stats.PendingApproval++
		}
		if a.user.IsAdmin() {
			stats.Admins++
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleApproveUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[mux.Vars(r)["id"]]
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	acct.user.IsActive = true
	writeJSON(w, http.StatusOK, acct.user)
}

func (s *Server) handleRejectUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := mux.Vars(r)["id"]
	acct, ok := s.accounts[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	// Rejection removes the account; the member must register again
	delete(s.accounts, id)
	writeJSON(w, http.StatusOK, acct.user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := mux.Vars(r)["id"]
	if _, ok := s.accounts[id]; !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	delete(s.accounts, id)
	w.WriteHeader(http.StatusNoContent)
}

// Tournament handlers

func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.Tournament{}, s.tournaments...))
}

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	var t model.Tournament
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextTournamentID
	s.nextTournamentID++
	s.tournaments = append(s.tournaments, t)
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	var t model.Tournament
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			t.ID = id
			s.tournaments[i] = t
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Tournament not found")
}

func (s *Server) handleDeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			s.tournaments = append(s.tournaments[:i], s.tournaments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Tournament not found")
}

// News handlers

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.News{}, s.news...))
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var n model.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextNewsID
	s.nextNewsID++
	s.news = append(s.news, n)
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid news id")
		return
	}

	var n model.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.news {
		if s.news[i].ID == id {
			n.ID = id
			s.news[i] = n
			writeJSON(w, http.StatusOK, n)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "News article not found")
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid news id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.news {
		if s.news[i].ID == id {
			s.news = append(s.news[:i], s.news[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "News article not found")
}

// Token handling

func (s *Server) issueToken(userID string) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) authenticate(r *http.Request) (*account, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[claims.Subject]
	return acct, ok
}

// admin wraps a handler with admin-role enforcement
func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, ok := s.authenticate(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if !acct.user.IsAdmin() {
			writeMessage(w, http.StatusForbidden, "Admin role required")
			return
		}
		next(w, r)
	}
}

func (s *Server) findByEmailLocked(email string) *account {
	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return a
		}
	}
	return nil
}

// findByIdentifierLocked resolves a login identifier, which may be an
// email address or a license number
func (s *Server) findByIdentifierLocked(identifier string) *account {
	if acct := s.findByEmailLocked(identifier); acct != nil {
		return acct
	}
	for _, a := range s.accounts {
		if a.user.License != nil && a.user.License.Number == identifier {
			return a
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
