// Package services contains application services for the Jobly client.
// This file defines the session service: the credential lifecycle from
// login or registration through hydration of the current user to logout.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobly/internal/client/client"
	"github.com/dmitrijs2005/jobly/internal/client/flash"
	"github.com/dmitrijs2005/jobly/internal/client/models"
	"github.com/dmitrijs2005/jobly/internal/client/token"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
)

// Flash texts shown after session actions.
const (
	MsgLoggedIn     = "Welcome! You've successfully logged in."
	MsgSignedUp     = "Account created! Welcome aboard."
	MsgLoggedOut    = "You have logged out."
	MsgApplyFailed  = "Error applying to job."
	msgAppliedTo    = "Applied to %s!"
	msgStaleSession = "Your session changed, please try again."
)

// State is the lifecycle position of the session.
type State int

const (
	// StateAnonymous: no credential, no user.
	StateAnonymous State = iota
	// StateResolving: a credential is stored and the user record is being fetched.
	StateResolving
	// StateAuthenticated: the user record matches the stored credential.
	StateAuthenticated
	// StateInvalid: the credential could not be decoded or its user fetched.
	// It is never observed from outside; the session moves straight on to
	// StateAnonymous with the credential cleared.
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CredentialStore is the persistent slot holding the credential.
// *storage.Slot[string] satisfies it.
type CredentialStore interface {
	Get() (string, bool)
	Set(ctx context.Context, v string)
	Clear(ctx context.Context)
}

// Snapshot is a consistent view of the session at one instant.
type Snapshot struct {
	State      State
	Credential string
	User       *models.User
}

// SessionService defines the session operations for the CLI.
//
// Contract:
//   - Login / Register: authenticate, persist the credential, flash a
//     welcome message and hydrate. Failures leave the session untouched, and
//     so does a result that arrives after a later Logout or Login.
//   - Logout: clear everything; unconditional and idempotent.
//   - Hydrate: bring the user record in line with the stored credential.
//   - UpdateProfile / ApplyToJob: require StateAuthenticated.
//
// Actions return models.Result and never render anything themselves.
type SessionService interface {
	State() State
	Snapshot() Snapshot
	CurrentUser() *models.User
	Login(ctx context.Context, creds models.Credentials) models.Result
	Register(ctx context.Context, data models.SignupData) models.Result
	Logout(ctx context.Context)
	Hydrate(ctx context.Context) State
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) models.Result
	ApplyToJob(ctx context.Context, jobID int, title string) models.Result
	HasApplied(jobID int) bool
}

// sessionService is the concrete SessionService. mu guards every field below
// it; generation is bumped whenever the credential or user changes hands, and
// a backend response is committed only if the generation it started under is
// still current. epoch counts committed Login, Register and Logout calls;
// hydration never bumps it.
type sessionService struct {
	client client.Client
	creds  CredentialStore
	flash  *flash.Queue
	logger logging.Logger

	mu         sync.Mutex
	state      State
	user       *models.User
	generation uint64
	epoch      uint64
	applying   map[int]bool
}

// NewSessionService constructs a SessionService. The API client is primed
// with any stored credential; call Hydrate to load the matching user.
func NewSessionService(c client.Client, creds CredentialStore, flashes *flash.Queue, logger logging.Logger) SessionService {
	s := &sessionService{client: c, creds: creds, flash: flashes, logger: logger, applying: make(map[int]bool)}
	if cred, ok := creds.Get(); ok {
		c.SetToken(cred)
		s.state = StateResolving
	}
	return s
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, _ := s.creds.Get()
	return Snapshot{State: s.state, Credential: cred, User: s.user.Clone()}
}

// CurrentUser returns a copy of the user record, or nil unless authenticated.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) models.Result {
	epoch := s.currentEpoch()
	cred, err := s.client.Login(ctx, creds)
	if err != nil {
		s.logger.Info(ctx, "login failed", "username", creds.Username, "error", err)
		return models.Failed(client.Messages(err)...)
	}

	if !s.startSession(ctx, epoch, cred, MsgLoggedIn) {
		s.logger.Info(ctx, "login superseded", "username", creds.Username)
		return models.Failed(msgStaleSession)
	}
	s.logger.Info(ctx, "logged in", "username", creds.Username)
	return models.Succeeded()
}

func (s *sessionService) Register(ctx context.Context, data models.SignupData) models.Result {
	epoch := s.currentEpoch()
	cred, err := s.client.Register(ctx, data)
	if err != nil {
		s.logger.Info(ctx, "signup failed", "username", data.Username, "error", err)
		return models.Failed(client.Messages(err)...)
	}

	if !s.startSession(ctx, epoch, cred, MsgSignedUp) {
		s.logger.Info(ctx, "signup superseded", "username", data.Username)
		return models.Failed(msgStaleSession)
	}
	s.logger.Info(ctx, "signed up", "username", data.Username)
	return models.Succeeded()
}

func (s *sessionService) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// startSession stores a fresh credential, flashes msg and hydrates. It
// returns false, storing nothing, when another Login, Register or Logout
// committed after epoch was read.
func (s *sessionService) startSession(ctx context.Context, epoch uint64, cred, msg string) bool {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return false
	}
	s.epoch++
	s.generation++
	s.creds.Set(ctx, cred)
	s.client.SetToken(cred)
	s.user = nil
	s.state = StateResolving
	s.mu.Unlock()

	s.flash.Add(msg)
	s.Hydrate(ctx)
	return true
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	s.generation++
	s.user = nil
	s.creds.Clear(ctx)
	s.client.SetToken("")
	s.state = StateAnonymous
	s.mu.Unlock()

	s.flash.Add(MsgLoggedOut)
	s.logger.Info(ctx, "logged out")
}

// Hydrate loads the user named by the stored credential and returns the
// resulting state. A missing credential leaves the session anonymous; an
// undecodable one, or one whose user cannot be fetched, is cleared. A result
// that arrives after the credential has changed is discarded.
func (s *sessionService) Hydrate(ctx context.Context) State {
	s.mu.Lock()
	cred, ok := s.creds.Get()
	if !ok {
		s.generation++
		s.user = nil
		s.client.SetToken("")
		s.state = StateAnonymous
		s.mu.Unlock()
		return StateAnonymous
	}

	claims, ok := token.Decode(cred)
	if !ok {
		s.logger.Warn(ctx, "stored credential cannot be decoded")
		s.invalidateLocked(ctx)
		s.mu.Unlock()
		return StateAnonymous
	}

	s.generation++
	gen := s.generation
	s.client.SetToken(cred)
	s.state = StateResolving
	s.mu.Unlock()

	user, err := s.client.GetUser(ctx, claims.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug(ctx, "discarding stale user record", "username", claims.Username)
		return s.state
	}
	if err != nil && ctx.Err() != nil {
		// abandoned, not rejected: keep the credential for the next start
		s.logger.Debug(ctx, "user load cancelled", "username", claims.Username)
		return s.state
	}
	if err != nil {
		s.logger.Warn(ctx, "failed to load current user", "username", claims.Username, "error", err)
		s.invalidateLocked(ctx)
		return StateAnonymous
	}

	s.user = user
	s.state = StateAuthenticated
	return StateAuthenticated
}

// invalidateLocked passes through StateInvalid to StateAnonymous, dropping
// the credential. s.mu must be held.
func (s *sessionService) invalidateLocked(ctx context.Context) {
	s.generation++
	s.state = StateInvalid
	s.user = nil
	s.creds.Clear(ctx)
	s.client.SetToken("")
	s.state = StateAnonymous
}

// authenticated returns the current username and generation, or false
// unless the session is authenticated.
func (s *sessionService) authenticated() (string, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated || s.user == nil {
		return "", 0, false
	}
	return s.user.Username, s.generation, true
}

// UpdateProfile patches the current user. Fields missing from the backend
// response, such as applications, keep their previous values.
func (s *sessionService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) models.Result {
	username, gen, ok := s.authenticated()
	if !ok {
		return models.Failed(common.ErrorNotAuthenticated.Error())
	}

	updated, err := s.client.UpdateUser(ctx, username, patch)
	if err != nil {
		s.logger.Info(ctx, "profile update failed", "username", username, "error", err)
		return models.Failed(client.Messages(err)...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return models.Failed(msgStaleSession)
	}

	merged := updated.Clone()
	if merged.Applications == nil {
		merged.Applications = append([]int(nil), s.user.Applications...)
	}
	if merged.Jobs == nil {
		merged.Jobs = append([]models.Job(nil), s.user.Jobs...)
	}
	s.generation++
	s.user = merged
	return models.Succeeded()
}

// ApplyToJob applies the current user to jobID and then re-fetches the user
// so the application list reflects the backend. title names the job in the
// success flash; when empty the id is used.
func (s *sessionService) ApplyToJob(ctx context.Context, jobID int, title string) models.Result {
	username, gen, res := s.beginApply(jobID)
	if !res.Success {
		return res
	}
	defer s.endApply(jobID)

	if _, err := s.client.ApplyToJob(ctx, username, jobID); err != nil {
		s.logger.Warn(ctx, "apply failed", "username", username, "job_id", jobID, "error", err)
		s.flash.Add(MsgApplyFailed)
		return models.Failed(client.Messages(err)...)
	}

	user, err := s.client.GetUser(ctx, username)

	s.mu.Lock()
	if gen == s.generation {
		if err != nil {
			s.logger.Warn(ctx, "failed to refresh user after apply", "username", username, "error", err)
			user = s.user.Clone()
			user.Applications = append(user.Applications, jobID)
		}
		s.generation++
		s.user = user
	}
	s.mu.Unlock()

	if title == "" {
		title = fmt.Sprintf("job %d", jobID)
	}
	s.flash.Add(fmt.Sprintf(msgAppliedTo, title))
	s.logger.Info(ctx, "applied to job", "username", username, "job_id", jobID)
	return models.Succeeded()
}

// beginApply checks that the session may apply to jobID and marks the
// application in flight. At most one application per job is in flight.
func (s *sessionService) beginApply(jobID int) (string, uint64, models.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated || s.user == nil {
		return "", 0, models.Failed(common.ErrorNotAuthenticated.Error())
	}
	if s.applying[jobID] || s.user.HasApplied(jobID) {
		return "", 0, models.Failed(common.ErrorAlreadyApplied.Error())
	}
	s.applying[jobID] = true
	return s.user.Username, s.generation, models.Succeeded()
}

func (s *sessionService) endApply(jobID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.applying, jobID)
}

func (s *sessionService) HasApplied(jobID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.HasApplied(jobID)
}
