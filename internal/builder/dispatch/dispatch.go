// Package dispatch routes named events to store mutations. Every event
// decodes its payload into a typed request, validates it and applies one
// pure operation to exactly one cell.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/state"
	"dashbuilder/internal/builder/store"
	"dashbuilder/internal/builder/util"
)

var ErrUnknownEvent = errors.New("unknown event")

// Event is a named mutation with a JSON payload.
type Event struct {
	Name    string          `json:"name" validate:"required"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (e *Event) Validate() error {
	e.Name = strings.TrimSpace(e.Name)
	if err := model.GetValidator().Struct(e); err != nil {
		return model.FormatValidationError(err)
	}
	return nil
}

// NewEvent marshals payload into an Event.
func NewEvent(name string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", name, err)
	}
	return Event{Name: name, Payload: raw}, nil
}

// Observer is told about accepted and rejected events.
type Observer interface {
	OnDispatched(event string)
	OnRejected(event, reason string)
}

// Rejection reasons
const (
	ReasonUnknown = "unknown"
	ReasonInvalid = "invalid"
)

type operation func(s *store.Store, payload json.RawMessage) error

type Dispatcher struct {
	ops      map[string]operation
	logger   *slog.Logger
	observer Observer
}

type Option func(*Dispatcher)

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// New returns a dispatcher with every store operation registered.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{ops: make(map[string]operation)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = util.GetLogger()
	}
	registerDashboard(d)
	registerSection(d)
	registerIndicator(d)
	registerDataSource(d)
	registerApp(d)
	registerCollections(d)
	registerSelection(d)
	return d
}

// Dispatch applies ev to s. Unknown names yield ErrUnknownEvent; payloads
// that fail to decode or validate yield a *model.ErrorDetail. A rejected
// event leaves s untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, s *store.Store, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	op, ok := d.ops[ev.Name]
	if !ok {
		d.reject(ctx, ev.Name, ReasonUnknown, ErrUnknownEvent)
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Name)
	}
	if err := op(s, ev.Payload); err != nil {
		d.reject(ctx, ev.Name, ReasonInvalid, err)
		return err
	}
	if d.observer != nil {
		d.observer.OnDispatched(ev.Name)
	}
	return nil
}

// Names lists the registered events in sorted order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (d *Dispatcher) reject(ctx context.Context, name, reason string, err error) {
	d.logger.WarnContext(ctx, "event rejected", "event", name, "reason", reason, "error", err)
	if d.observer != nil {
		d.observer.OnRejected(name, reason)
	}
}

func (d *Dispatcher) register(name string, op operation) {
	if _, dup := d.ops[name]; dup {
		panic("dispatch: duplicate event " + name)
	}
	d.ops[name] = op
}

type request[T any] interface {
	*T
	Validate() error
}

func decode[T any, P request[T]](raw json.RawMessage) (T, error) {
	var req T
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &req); err != nil {
			return req, &model.ErrorDetail{Code: "bad_request", Message: "invalid payload: " + err.Error()}
		}
	}
	if err := P(&req).Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// on registers name as op applied to the cell picked by cell.
func on[T any, P request[T], S any](d *Dispatcher, name string, cell func(*store.Store) *state.Cell[S], op func(S, T) S) {
	d.register(name, func(s *store.Store, raw json.RawMessage) error {
		req, err := decode[T, P](raw)
		if err != nil {
			return err
		}
		cell(s).Update(func(current S) S { return op(current, req) })
		return nil
	})
}
