package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	locationKeyPrefix = "session:location:"

	// Locations outlive wizard sessions: a returning visitor keeps their
	// selected region.
	locationTTL = 30 * 24 * time.Hour
)

// LocationSubscriber receives the new label every time a session's location
// changes. An empty label means the location was cleared.
type LocationSubscriber func(sessionID, label string)

// LocationService owns the per-session free-text location label ("São
// Paulo - SP"). Writes notify subscribers synchronously, so interested
// parties react to changes instead of polling the stored value.
type LocationService struct {
	store SessionStore
	log   *logrus.Logger

	mu          sync.RWMutex
	nextSubID   int
	subscribers map[int]LocationSubscriber
}

func NewLocationService(store SessionStore, log *logrus.Logger) *LocationService {
	return &LocationService{
		store:       store,
		log:         log,
		subscribers: make(map[int]LocationSubscriber),
	}
}

// Load returns the stored label for a session, empty when none is set
func (s *LocationService) Load(ctx context.Context, sessionID string) (string, error) {
	value, err := s.store.Get(ctx, locationKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Save stores the label and notifies subscribers. Saving an empty label is
// a clear.
func (s *LocationService) Save(ctx context.Context, sessionID, label string) error {
	if label == "" {
		return s.Clear(ctx, sessionID)
	}
	if err := s.store.Set(ctx, locationKeyPrefix+sessionID, []byte(label), locationTTL); err != nil {
		return err
	}
	s.log.Infof("Location saved: session=%s, label=%s", sessionID, label)
	s.notify(sessionID, label)
	return nil
}

// Clear removes the stored label and notifies subscribers with an empty one
func (s *LocationService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, locationKeyPrefix+sessionID); err != nil {
		return err
	}
	s.notify(sessionID, "")
	return nil
}

// Subscribe registers a change listener and returns its unsubscribe func
func (s *LocationService) Subscribe(subscriber LocationSubscriber) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = subscriber
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// AuditSubscriber returns a subscriber that logs every location change,
// wired at startup so region changes leave a trace in the service log.
func AuditSubscriber(log *logrus.Logger) LocationSubscriber {
	return func(sessionID, label string) {
		if label == "" {
			log.Infof("Location cleared: session=%s", sessionID)
			return
		}
		log.Infof("Location changed: session=%s, label=%s", sessionID, label)
	}
}

func (s *LocationService) notify(sessionID, label string) {
	s.mu.RLock()
	subscribers := make([]LocationSubscriber, 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	s.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber(sessionID, label)
	}
}
