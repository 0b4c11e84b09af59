package model

import (
	"slices"
	"strings"
	"time"
)

// Save modes
const (
	SaveModeCreate = "create"
	SaveModeUpdate = "update"
)

// OpenSessionReq opens a builder session for the given user context.
type OpenSessionReq struct {
	User UserContext `json:"user"`
}

func (r *OpenSessionReq) Validate() error {
	r.User.SystemID = strings.TrimSpace(r.User.SystemID)
	r.User.SystemName = strings.TrimSpace(r.User.SystemName)
	r.User.Version = strings.TrimSpace(r.User.Version)
	return validateStruct(r)
}

type SessionResponse struct {
	ID        string      `json:"id"`
	User      UserContext `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

// SaveReq persists the entity currently being edited. Visualizations are
// picked from the current section by ID.
type SaveReq struct {
	Collection string `json:"collection" validate:"required"`
	Mode       string `json:"mode" validate:"required,oneof=create update"`
	ID         string `json:"id" validate:"omitempty,max=100"`
}

func (r *SaveReq) Validate() error {
	r.Collection = strings.TrimSpace(r.Collection)
	r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	r.ID = strings.TrimSpace(r.ID)
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Collections, r.Collection) {
		return badRequest("invalid collection: " + r.Collection)
	}
	if r.Collection == CollectionVisualizations && r.ID == "" {
		return badRequest("visualization id is required")
	}
	return nil
}

// CollectionReq names a document collection.
type CollectionReq struct {
	Collection string `json:"collection" param:"collection" validate:"required"`
}

func (r *CollectionReq) Validate() error {
	r.Collection = strings.TrimSpace(r.Collection)
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Collections, r.Collection) {
		return badRequest("invalid collection: " + r.Collection)
	}
	return nil
}

type CountResponse struct {
	Count int `json:"count"`
}
