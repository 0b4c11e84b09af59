package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"dashbuilder/internal/builder/model"

	"go.mongodb.org/mongo-driver/bson"
)

type memoryRecord struct {
	owner string
	raw   bson.Raw
}

// MemoryStore is an in-process DocumentStore. Documents go through the same
// bson encoding as MongoStore, so callers never share memory with it.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]map[string]memoryRecord
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]map[string]memoryRecord),
		order: make(map[string][]string),
	}
}

func (m *MemoryStore) EnsureIndexes(context.Context) error { return nil }

func (m *MemoryStore) Save(ctx context.Context, collection, ownerID string, doc model.Document, mode SaveMode) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	record, err := toRecord(doc, ownerID)
	if err != nil {
		return err
	}
	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", doc.DocumentID(), err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.data[collection]
	if docs == nil {
		docs = make(map[string]memoryRecord)
		m.data[collection] = docs
	}
	id := doc.DocumentID()
	existing, ok := docs[id]
	switch mode {
	case ModeCreate:
		if ok {
			return ErrDuplicate
		}
		m.order[collection] = append(m.order[collection], id)
	case ModeUpdate:
		if !ok || existing.owner != ownerID {
			return ErrNotFound
		}
	default:
		return fmt.Errorf("invalid save mode %q", mode)
	}
	docs[id] = memoryRecord{owner: ownerID, raw: raw}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, ownerID, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.data[collection][id]; !ok || rec.owner != ownerID {
		return ErrNotFound
	}
	delete(m.data[collection], id)
	order := m.order[collection]
	for i, existing := range order {
		if existing == id {
			m.order[collection] = append(order[:i:i], order[i+1:]...)
			break
		}
	}
	return nil
}

// List decodes the owner's documents in insertion order.
func (m *MemoryStore) List(ctx context.Context, collection, ownerID string, results any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := reflect.ValueOf(results)
	if out.Kind() != reflect.Pointer || out.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results must be a pointer to a slice, got %T", results)
	}
	slice := out.Elem()
	elemType := slice.Type().Elem()

	m.mu.RLock()
	defer m.mu.RUnlock()
	items := reflect.MakeSlice(slice.Type(), 0, len(m.order[collection]))
	for _, id := range m.order[collection] {
		rec := m.data[collection][id]
		if rec.owner != ownerID {
			continue
		}
		item := reflect.New(elemType)
		if err := bson.Unmarshal(rec.raw, item.Interface()); err != nil {
			return fmt.Errorf("decode document %s: %w", id, err)
		}
		items = reflect.Append(items, item.Elem())
	}
	slice.Set(items)
	return nil
}
