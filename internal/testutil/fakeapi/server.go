// Package fakeapi is an in-memory Jobly backend. It serves the same routes,
// token format and error envelope as the real API and backs the client tests
// and the dev server.
package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobly/internal/client/models"
	"github.com/dmitrijs2005/jobly/internal/client/token"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

var ErrDuplicateUser = errors.New("duplicate username")

type account struct {
	user     models.User
	password string
}

// Server holds the backend state. All methods are safe for concurrent use.
type Server struct {
	secret []byte
	logger logging.Logger
	router *mux.Router

	mu        sync.Mutex
	users     map[string]*account
	companies map[string]models.Company
	jobs      map[int]models.Job
	nextJobID int
}

func New(secret []byte, logger logging.Logger) *Server {
	s := &Server{
		secret:    secret,
		logger:    logger,
		users:     make(map[string]*account),
		companies: make(map[string]models.Company),
		jobs:      make(map[int]models.Job),
		nextJobID: 1,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving every API route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// AddUser creates an account and returns a token for it.
func (s *Server) AddUser(data models.SignupData, isAdmin bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[data.Username]; ok {
		return "", ErrDuplicateUser
	}
	s.users[data.Username] = &account{
		user: models.User{
			Username:  data.Username,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			IsAdmin:   isAdmin,
		},
		password: data.Password,
	}
	return s.IssueToken(data.Username, isAdmin)
}

func (s *Server) AddCompany(c models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Jobs = nil
	s.companies[c.Handle] = c
}

// AddJob stores j under a fresh id and returns that id.
func (s *Server) AddJob(j models.Job) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = s.nextJobID
	s.nextJobID++
	if c, ok := s.companies[j.CompanyHandle]; ok {
		j.CompanyName = c.Name
	}
	s.jobs[j.ID] = j
	return j.ID
}

// User returns a copy of the stored user.
func (s *Server) User(username string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.users[username]
	if !ok {
		return nil, false
	}
	return a.user.Clone(), true
}

// IssueToken signs an HS256 token carrying username and isAdmin claims.
func (s *Server) IssueToken(username string, isAdmin bool) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	return t.SignedString(s.secret)
}

func (s *Server) verifyToken(tokenString string) (*token.Claims, error) {
	claims := &token.Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.Username == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

func (s *Server) companyList(name string) []models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.ToLower(name)
	res := make([]models.Company, 0, len(s.companies))
	for _, c := range s.companies {
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func (s *Server) jobList(f models.JobFilter) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.ToLower(f.Title)
	res := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if title != "" && !strings.Contains(strings.ToLower(j.Title), title) {
			continue
		}
		if f.MinSalary > 0 && (j.Salary == nil || *j.Salary < f.MinSalary) {
			continue
		}
		if f.HasEquity && !j.HasEquity() {
			continue
		}
		res = append(res, j)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the backend error envelope. message is a string or a
// list of strings.
func writeError(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"message": message, "status": status},
	})
}
