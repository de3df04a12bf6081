// Package identity manages the locally simulated account registry and the
// single active session. Credentials are stored and compared in plain text:
// this is demo data in a local store, not an authentication system.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"studysync/internal/kvstore"
)

// Persisted keys for the registry and the active session.
const (
	KeyAccounts = "studysync_accounts"
	KeySession  = "studysync_user"
)

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is a registered user, credential included. Immutable once created;
// there is no update or delete path.
type Account struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CollegeID  string `json:"collegeId,omitempty"`
	Password   string `json:"password"`
	AvatarSeed string `json:"avatarSeed"`
}

// Session is the public projection of an Account, password stripped. At most
// one Session is active per Registry.
type Session struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CollegeID string `json:"collegeId,omitempty"`
	Avatar    string `json:"avatar"`
}

// Registry holds the account list and the active session, both mirrored into
// the durable store.
type Registry struct {
	logger  *zap.SugaredLogger
	kv      *kvstore.Store
	latency time.Duration

	mu       sync.Mutex
	accounts []Account
	session  *Session
}

// New loads the persisted account list and restores a prior session if one
// was persisted. A corrupt value in either key is treated as absent.
func New(logger *zap.SugaredLogger, kv *kvstore.Store, opts ...Option) *Registry {
	r := &Registry{
		logger: logger,
		kv:     kv,
	}

	for _, opt := range opts {
		opt.apply(r)
	}

	if raw, ok := kv.Get(KeyAccounts); ok {
		if err := json.Unmarshal(raw, &r.accounts); err != nil {
			logger.Warnf("Persisted accounts unreadable, starting with an empty registry: %v", err)
			r.accounts = nil
		}
	}

	if raw, ok := kv.Get(KeySession); ok {
		var s Session
		if err := json.Unmarshal(raw, &s); err != nil {
			logger.Warnf("Persisted session unreadable, starting signed out: %v", err)
		} else {
			r.session = &s
			logger.Debugf("Restored session for (%s)", s.Email)
		}
	}

	return r
}

// Signup registers a new account and signs it in. Fails with
// ErrAccountExists when the email is already registered (case-sensitive
// exact match); nothing is mutated on failure.
func (r *Registry) Signup(ctx context.Context, name, email, collegeID, password string) (Session, error) {
	r.logger.Debugf("Signing up (%s)", email)
	r.wait(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Email == email {
			return Session{}, ErrAccountExists
		}
	}

	account := Account{
		Name:       name,
		Email:      email,
		CollegeID:  collegeID,
		Password:   password,
		AvatarSeed: name,
	}

	r.accounts = append(r.accounts, account)
	r.persistAccounts()

	return r.activate(account), nil
}

// Login signs in the account matching the exact (email, password) pair, or
// fails with ErrInvalidCredentials. The persisted session is untouched on
// failure.
func (r *Registry) Login(ctx context.Context, email, password string) (Session, error) {
	r.logger.Debugf("Logging in (%s)", email)
	r.wait(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Email == email && a.Password == password {
			return r.activate(a), nil
		}
	}

	return Session{}, ErrInvalidCredentials
}

// Logout clears the active session and its persisted copy. Idempotent.
func (r *Registry) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		r.logger.Debugf("Logging out (%s)", r.session.Email)
	}

	r.session = nil
	r.kv.Remove(KeySession)
}

// Session returns the active session, if any.
func (r *Registry) Session() (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return Session{}, false
	}
	return *r.session, true
}

// activate derives a Session from account, makes it current and persists it,
// replacing any prior persisted session. Callers must hold r.mu.
func (r *Registry) activate(account Account) Session {
	s := Session{
		Name:      account.Name,
		Email:     account.Email,
		CollegeID: account.CollegeID,
		Avatar:    avatarURL(account.AvatarSeed),
	}

	r.session = &s
	if err := r.kv.Set(KeySession, s); err != nil {
		r.logger.Warnf("Persisting session failed, session will not survive restart: %v", err)
	}

	return s
}

func (r *Registry) persistAccounts() {
	if err := r.kv.Set(KeyAccounts, r.accounts); err != nil {
		r.logger.Warnf("Persisting accounts failed, in-memory registry kept: %v", err)
	}
}

// wait simulates network latency around login/signup. The delay always
// completes; nothing in this registry is cancellable.
func (r *Registry) wait(_ context.Context) {
	if r.latency > 0 {
		time.Sleep(r.latency)
	}
}

func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}
