// Package app is the façade presentation code talks to: one surface
// aggregating the identity registry and the collection store, with observer
// notification after every successful mutation.
package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studysync/internal/identity"
	"studysync/internal/storage"
)

// App aggregates the registry and the store. Mutations go through the
// collaborator's own lock; App only guards its subscriber map.
type App struct {
	logger   *zap.SugaredLogger
	registry *identity.Registry
	store    *storage.Store

	mu          sync.Mutex
	subscribers map[string]func()
}

// New returns an App over an already-constructed registry and store.
func New(logger *zap.SugaredLogger, registry *identity.Registry, store *storage.Store) *App {
	return &App{
		logger:      logger,
		registry:    registry,
		store:       store,
		subscribers: make(map[string]func()),
	}
}

// Subscribe registers fn to run after every successful mutation and returns
// a token for Unsubscribe. fn runs synchronously on the mutating goroutine,
// after the mutation is visible to reads.
func (a *App) Subscribe(fn func()) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	token := uuid.NewString()
	a.subscribers[token] = fn

	a.logger.Debugf("Registered subscriber %s", token)

	return token
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (a *App) Unsubscribe(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.subscribers, token)
}

func (a *App) notify() {
	a.mu.Lock()
	fns := make([]func(), 0, len(a.subscribers))
	for _, fn := range a.subscribers {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Session returns the active session, if any.
func (a *App) Session() (identity.Session, bool) {
	return a.registry.Session()
}

// Signup registers and signs in a new account.
func (a *App) Signup(ctx context.Context, name, email, collegeID, password string) (identity.Session, error) {
	session, err := a.registry.Signup(ctx, name, email, collegeID, password)
	if err != nil {
		return identity.Session{}, err
	}

	a.notify()
	return session, nil
}

// Login signs in an existing account.
func (a *App) Login(ctx context.Context, email, password string) (identity.Session, error) {
	session, err := a.registry.Login(ctx, email, password)
	if err != nil {
		return identity.Session{}, err
	}

	a.notify()
	return session, nil
}

// Logout clears the active session.
func (a *App) Logout() {
	a.registry.Logout()
	a.notify()
}

// Groups returns the group list in creation order.
func (a *App) Groups() []storage.Group {
	return a.store.Groups()
}

// Messages returns the message sequence for groupID.
func (a *App) Messages(groupID int64) ([]storage.Message, bool) {
	return a.store.Messages(groupID)
}

// DirectThreads returns the direct-message threads, most recent first.
func (a *App) DirectThreads() []storage.DirectThread {
	return a.store.DirectThreads()
}

// Activities returns the activity feed.
func (a *App) Activities() []storage.Activity {
	return a.store.Activities()
}

// Resources returns the shared resource list.
func (a *App) Resources() []storage.Resource {
	return a.store.Resources()
}

// CreateGroup creates a group together with its empty message sequence.
func (a *App) CreateGroup(name, subject, description string) storage.Group {
	group := a.store.CreateGroup(name, subject, description)
	a.notify()
	return group
}

// PostGroupMessage appends a message to a group's sequence. No-op (and no
// notification) when the group does not exist.
func (a *App) PostGroupMessage(groupID int64, content string, author storage.Author) (storage.Message, bool) {
	message, ok := a.store.PostGroupMessage(groupID, content, author)
	if ok {
		a.notify()
	}
	return message, ok
}

// PostDirectMessage appends a message to a thread and refreshes its preview.
// No-op when the thread does not exist.
func (a *App) PostDirectMessage(threadID int64, content string, author storage.Author) (storage.Message, bool) {
	message, ok := a.store.PostDirectMessage(threadID, content, author)
	if ok {
		a.notify()
	}
	return message, ok
}

// CreateDirectThread starts a conversation; the new thread sorts first.
func (a *App) CreateDirectThread(contactName string) storage.DirectThread {
	thread := a.store.CreateDirectThread(contactName)
	a.notify()
	return thread
}

// AuthorFromSession projects a session onto the narrow shape the posting
// operations take.
func AuthorFromSession(s identity.Session) storage.Author {
	return storage.Author{
		Name:   s.Name,
		Avatar: s.Avatar,
	}
}
