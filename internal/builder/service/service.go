package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dashbuilder/internal/builder/config"
	"dashbuilder/internal/builder/derive"
	"dashbuilder/internal/builder/dispatch"
	"dashbuilder/internal/builder/idgen"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/period"
	"dashbuilder/internal/builder/repository"
	"dashbuilder/internal/builder/store"
	"dashbuilder/internal/builder/util"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownValue    = errors.New("unknown value")
	ErrBadRequest      = errors.New("bad request")
	ErrConflict        = errors.New("conflict: document already exists")
	ErrNotFound        = errors.New("document not found")
)

type BuilderService interface {
	OpenSession(ctx context.Context, user model.UserContext) (*model.SessionResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
	Dispatch(ctx context.Context, sessionID string, ev dispatch.Event) error
	Snapshot(ctx context.Context, sessionID, cell string) (any, error)
	Derived(ctx context.Context, sessionID, name string) (any, error)
	Save(ctx context.Context, sessionID string, req model.SaveReq) (model.Document, error)
	Load(ctx context.Context, sessionID, collection string) (int, error)
	Delete(ctx context.Context, sessionID, collection, id string) error
	DuplicateDashboard(ctx context.Context, sessionID, dashboardID string) (*model.Dashboard, error)
	Events() []string
}

// Recorder receives session, recomputation and persistence measurements.
type Recorder interface {
	OnRecompute(name string)
	SessionOpened()
	SessionClosed()
	RecordPersistence(operation, collection string, err error, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) OnRecompute(string) {}
func (nopRecorder) SessionOpened() {}
func (nopRecorder) SessionClosed() {}
func (nopRecorder) RecordPersistence(string, string, error, time.Duration) {}

// Session owns one store and the derivation graph built over it.
// Mutations are serialized through mu.
type Session struct {
	ID        string
	User      model.UserContext
	Store     *store.Store
	Graph     *derive.Graph
	CreatedAt time.Time

	mu sync.Mutex
}

type Service struct {
	Repo       repository.DocumentStore
	Dispatcher *dispatch.Dispatcher
	Resolver   period.Resolver
	Keys       config.DimensionKeys

	recorder Recorder
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(repo repository.DocumentStore, d *dispatch.Dispatcher, r period.Resolver, keys config.DimensionKeys, opts ...Option) *Service {
	s := &Service{
		Repo:       repo,
		Dispatcher: d,
		Resolver:   r,
		Keys:       keys,
		recorder:   nopRecorder{},
		sessions:   make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = util.GetLogger()
	}
	return s
}

func (s *Service) OpenSession(ctx context.Context, user model.UserContext) (*model.SessionResponse, error) {
	st := store.New(user)
	sess := &Session{
		ID:        idgen.New(),
		User:      user,
		Store:     st,
		Graph:     derive.New(st, s.Resolver, s.Keys, derive.WithObserver(s.recorder)),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.recorder.SessionOpened()
	s.logger.InfoContext(ctx, "session opened", "session", sess.ID, "system_id", user.SystemID)
	return &model.SessionResponse{ID: sess.ID, User: user, CreatedAt: sess.CreatedAt}, nil
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.recorder.SessionClosed()
	s.logger.InfoContext(ctx, "session closed", "session", sessionID)
	return nil
}

// Session returns the live session with id.
func (s *Service) Session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) Dispatch(ctx context.Context, sessionID string, ev dispatch.Event) error {
	sess, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.Dispatcher.Dispatch(ctx, sess.Store, ev)
}

func (s *Service) Snapshot(ctx context.Context, sessionID, cell string) (any, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	v, ok := sess.Store.Snapshot(cell)
	if !ok {
		return nil, fmt.Errorf("%w: cell %q", ErrUnknownValue, cell)
	}
	return v, nil
}

func (s *Service) Derived(ctx context.Context, sessionID, name string) (any, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	v, ok := sess.Graph.Read(name)
	if !ok {
		return nil, fmt.Errorf("%w: derived %q", ErrUnknownValue, name)
	}
	return v, nil
}

func (s *Service) Events() []string {
	return s.Dispatcher.Names()
}
