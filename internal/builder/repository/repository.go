package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"dashbuilder/internal/builder/model"
)

var (
	ErrDuplicate         = errors.New("duplicate record")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidCollection = errors.New("invalid collection")
)

// SaveMode selects insert or replace semantics for Save.
type SaveMode string

const (
	ModeCreate SaveMode = "create"
	ModeUpdate SaveMode = "update"
)

func (m SaveMode) Valid() bool {
	return m == ModeCreate || m == ModeUpdate
}

// OwnerField is the document field holding the owning system id.
const OwnerField = "systemId"

// DocumentStore persists entities as self-describing documents, one
// collection per entity kind, owned by a system id.
type DocumentStore interface {
	// Save inserts (ModeCreate) or replaces (ModeUpdate) doc. Creating an
	// existing id yields ErrDuplicate; updating a missing one ErrNotFound.
	Save(ctx context.Context, collection, ownerID string, doc model.Document, mode SaveMode) error
	// Delete removes the document with id owned by ownerID. A document of
	// another owner is reported as ErrNotFound.
	Delete(ctx context.Context, collection, ownerID, id string) error
	// List decodes every document owned by ownerID into results, which must
	// be a pointer to a slice.
	List(ctx context.Context, collection, ownerID string, results any) error
	EnsureIndexes(ctx context.Context) error
}

func checkCollection(name string) error {
	if !slices.Contains(model.Collections, name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}
