package storage

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"studysync/internal/kvstore"
)

// Persisted key per collection. Each value is the entire current collection;
// there is no schema versioning, a format change means delete-and-reseed.
const (
	KeyGroups     = "studysync_groups"
	KeyMessages   = "studysync_messages"
	KeyThreads    = "studysync_dms"
	KeyActivities = "studysync_activities"
	KeyResources  = "studysync_resources"
)

// Store owns the five data collections and keeps the durable store in step
// with every mutation. All mutations take the store mutex around the whole
// read-modify-write-persist step, so concurrent callers of one Store never
// lose updates.
type Store struct {
	logger *zap.SugaredLogger
	kv     *kvstore.Store

	mu         sync.Mutex
	groups     []Group
	messages   map[int64][]Message
	threads    []DirectThread
	activities []Activity
	resources  []Resource
	lastID     int64
}

// New loads every collection from kv, falling back to seed data (which is
// then persisted immediately) per collection. Re-running against the same kv
// is a no-op: the persisted value wins.
func New(logger *zap.SugaredLogger, kv *kvstore.Store) *Store {
	s := &Store{
		logger: logger,
		kv:     kv,
	}

	s.groups = initCollection(s, KeyGroups, seedGroups())
	s.messages = initCollection(s, KeyMessages, seedMessages())
	s.threads = initCollection(s, KeyThreads, seedThreads())
	s.activities = initCollection(s, KeyActivities, seedActivities())
	s.resources = initCollection(s, KeyResources, seedResources())

	return s
}

// initCollection adopts a valid persisted value for key verbatim, otherwise
// installs seed and persists it. Used uniformly by all five collections so
// fallback behavior can't diverge between them.
func initCollection[T any](s *Store, key string, seed T) T {
	if raw, ok := s.kv.Get(key); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
		s.logger.Warnf("Persisted value for %q does not match the collection shape, reseeding", key)
	}

	s.persist(key, seed)
	return seed
}

// persist writes the full collection snapshot for key. Failure is logged and
// swallowed: in-memory state stays authoritative for the rest of the process,
// durability is lost.
func (s *Store) persist(key string, v interface{}) {
	if err := s.kv.Set(key, v); err != nil {
		s.logger.Warnf("Persisting %q failed, in-memory state kept: %v", key, err)
	}
}

// nextID returns the wall clock in milliseconds, bumped past the previous
// assignment when the clock hasn't moved. Ids stay unique and strictly
// increasing in assignment order, which the UI relies on as a sort and
// identity key. Callers must hold s.mu.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// CreateGroup appends a new group and registers an empty message sequence for
// its id in the same mutation, so messagesByGroup is defined for every group
// that exists.
func (s *Store) CreateGroup(name, subject, description string) Group {
	s.logger.Debugf("Creating group (%s)", name)

	s.mu.Lock()
	defer s.mu.Unlock()

	group := Group{
		ID:          s.nextID(),
		Name:        name,
		Subject:     subject,
		Description: description,
		Members:     1,
		Image:       randomGroupImage(),
	}

	s.groups = append(s.groups, group)
	s.messages[group.ID] = []Message{}

	s.persist(KeyGroups, s.groups)
	s.persist(KeyMessages, s.messages)

	s.logger.Debugf("Created group (%s) with id %d", name, group.ID)

	return group
}

// PostGroupMessage appends a message to the group's sequence and reports
// whether the append happened. An unknown groupID is a silent no-op: the UI
// only ever presents ids the store handed out, so there is nobody to surface
// an error to.
//
// Role is always RoleMember, even when the author administers the group.
func (s *Store) PostGroupMessage(groupID int64, content string, author Author) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[groupID]; !ok {
		s.logger.Debugf("Dropping message for unknown group id %d", groupID)
		return Message{}, false
	}

	message := Message{
		ID:      s.nextID(),
		User:    author.Name,
		Avatar:  author.Avatar,
		Content: content,
		Time:    "Just now",
		Role:    RoleMember,
	}

	s.messages[groupID] = append(s.messages[groupID], message)
	s.persist(KeyMessages, s.messages)

	return message, true
}

// PostDirectMessage appends a message to the thread and refreshes the
// thread's LastMessage/Time in the same mutation, so the preview is never
// stale. An unknown threadID is a silent no-op.
func (s *Store) PostDirectMessage(threadID int64, content string, author Author) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.threads {
		if s.threads[i].ID != threadID {
			continue
		}

		message := Message{
			ID:      s.nextID(),
			User:    author.Name,
			Avatar:  author.Avatar,
			Content: content,
			Time:    "Just now",
			Role:    RoleMember,
		}

		s.threads[i].Messages = append(s.threads[i].Messages, message)
		s.threads[i].LastMessage = message.Content
		s.threads[i].Time = message.Time

		s.persist(KeyThreads, s.threads)

		return message, true
	}

	s.logger.Debugf("Dropping direct message for unknown thread id %d", threadID)

	return Message{}, false
}

// CreateDirectThread starts a conversation with contactName and prepends it
// to the thread list, so the most recently started conversation sorts first.
func (s *Store) CreateDirectThread(contactName string) DirectThread {
	s.logger.Debugf("Starting conversation with (%s)", contactName)

	s.mu.Lock()
	defer s.mu.Unlock()

	thread := DirectThread{
		ID:            s.nextID(),
		ContactName:   contactName,
		ContactAvatar: avatarFor(contactName),
		LastMessage:   "",
		Time:          "Just now",
		Unread:        0,
		Status:        StatusOffline,
		Messages:      []Message{},
	}

	s.threads = append([]DirectThread{thread}, s.threads...)
	s.persist(KeyThreads, s.threads)

	return thread
}

// Groups returns a copy of the group list in creation order.
func (s *Store) Groups() []Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]Group, len(s.groups))
	copy(groups, s.groups)
	return groups
}

// Messages returns a copy of the message sequence for groupID and whether the
// group has one.
func (s *Store) Messages(groupID int64) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.messages[groupID]
	if !ok {
		return nil, false
	}

	messages := make([]Message, len(stored))
	copy(messages, stored)
	return messages, true
}

// DirectThreads returns a copy of the thread list, most recently started
// first.
func (s *Store) DirectThreads() []DirectThread {
	s.mu.Lock()
	defer s.mu.Unlock()

	threads := make([]DirectThread, len(s.threads))
	copy(threads, s.threads)
	for i := range threads {
		messages := make([]Message, len(threads[i].Messages))
		copy(messages, threads[i].Messages)
		threads[i].Messages = messages
	}
	return threads
}

// Activities returns a copy of the activity feed.
func (s *Store) Activities() []Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := make([]Activity, len(s.activities))
	copy(activities, s.activities)
	return activities
}

// Resources returns a copy of the shared resource list.
func (s *Store) Resources() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	resources := make([]Resource, len(s.resources))
	copy(resources, s.resources)
	return resources
}

// randomGroupImage picks a plausible-looking unsplash photo reference for a
// newly created group.
func randomGroupImage() string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%d?w=800&auto=format&fit=crop&q=60",
		1500000000000+rand.Intn(1000))
}

func avatarFor(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
