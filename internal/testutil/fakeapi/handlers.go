package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobly/internal/client/models"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/gorilla/mux"
)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/auth/token", s.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)

	r.HandleFunc("/companies", s.handleCompanies).Methods(http.MethodGet)
	r.HandleFunc("/companies/{handle}", s.handleCompany).Methods(http.MethodGet)
	r.HandleFunc("/jobs", s.handleJobs).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{id:[0-9]+}", s.handleJob).Methods(http.MethodGet)

	users := r.PathPrefix("/users/{username}").Subrouter()
	users.Use(s.requireCorrectUser)
	users.HandleFunc("", s.handleGetUser).Methods(http.MethodGet)
	users.HandleFunc("", s.handlePatchUser).Methods(http.MethodPatch)
	users.HandleFunc("/jobs/{id:[0-9]+}", s.handleApply).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", r.Header.Get(common.RequestIDHeaderName))
		next.ServeHTTP(w, r)
	})
}

// requireCorrectUser admits the user named in the path or an admin.
func (s *Server) requireCorrectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get(common.AuthorizationHeaderName), "Bearer"))
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := s.verifyToken(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if claims.Username != mux.Vars(r)["username"] && !claims.IsAdmin {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var missing []string
	if creds.Username == "" {
		missing = append(missing, `instance requires property "username"`)
	}
	if creds.Password == "" {
		missing = append(missing, `instance requires property "password"`)
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	s.mu.Lock()
	a, ok := s.users[creds.Username]
	valid := ok && a.password == creds.Password
	isAdmin := ok && a.user.IsAdmin
	s.mu.Unlock()

	if !valid {
		writeError(w, http.StatusUnauthorized, "invalid-username/password")
		return
	}

	t, err := s.IssueToken(creds.Username, isAdmin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": t})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var data models.SignupData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if errs := validateSignup(data); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs)
		return
	}

	t, err := s.AddUser(data, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Duplicate username: "+data.Username)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": t})
}

func validateSignup(d models.SignupData) []string {
	var errs []string
	required := []struct{ name, value string }{
		{"username", d.Username},
		{"password", d.Password},
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, fmt.Sprintf("instance requires property %q", f.name))
		}
	}
	if d.Password != "" && len(d.Password) < 5 {
		errs = append(errs, "instance.password does not meet minimum length of 5")
	}
	if d.Email != "" && !strings.Contains(d.Email, "@") {
		errs = append(errs, `instance.email does not conform to the "email" format`)
	}
	return errs
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	u, ok := s.User(username)
	if !ok {
		writeError(w, http.StatusNotFound, "No user: "+username)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) handlePatchUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if patch.Email != "" && !strings.Contains(patch.Email, "@") {
		writeError(w, http.StatusBadRequest, []string{`instance.email does not conform to the "email" format`})
		return
	}

	s.mu.Lock()
	a, ok := s.users[username]
	if ok {
		if patch.FirstName != "" {
			a.user.FirstName = patch.FirstName
		}
		if patch.LastName != "" {
			a.user.LastName = patch.LastName
		}
		if patch.Email != "" {
			a.user.Email = patch.Email
		}
		if patch.Password != "" {
			a.password = patch.Password
		}
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "No user: "+username)
		return
	}

	// PATCH answers with the bare profile, without applications.
	u, _ := s.User(username)
	u.Applications = nil
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	id, _ := strconv.Atoi(vars["id"])

	s.mu.Lock()
	a, userOK := s.users[username]
	_, jobOK := s.jobs[id]
	already := userOK && a.user.HasApplied(id)
	if userOK && jobOK && !already {
		a.user.Applications = append(a.user.Applications, id)
	}
	s.mu.Unlock()

	switch {
	case !userOK:
		writeError(w, http.StatusNotFound, "No user: "+username)
	case !jobOK:
		writeError(w, http.StatusNotFound, fmt.Sprintf("No job: %d", id))
	case already:
		writeError(w, http.StatusBadRequest, common.ErrorAlreadyApplied.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]int{"applied": id})
	}
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"companies": s.companyList(r.URL.Query().Get("name"))})
}

func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	s.mu.Lock()
	c, ok := s.companies[handle]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "No company: "+handle)
		return
	}

	for _, j := range s.jobList(models.JobFilter{}) {
		if j.CompanyHandle == handle {
			c.Jobs = append(c.Jobs, models.Job{ID: j.ID, Title: j.Title, Salary: j.Salary, Equity: j.Equity})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"company": c})
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.JobFilter{Title: q.Get("title")}

	if v := q.Get("minSalary"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, []string{"instance.minSalary is not of a type(s) integer"})
			return
		}
		f.MinSalary = n
	}
	if v := q.Get("hasEquity"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, []string{"instance.hasEquity is not of a type(s) boolean"})
			return
		}
		f.HasEquity = b
	}

	writeJSON(w, http.StatusOK, map[string]any{"jobs": s.jobList(f)})
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.Lock()
	j, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("No job: %d", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"job": j})
}
