package model

import (
	"slices"
	"strings"

	"dashbuilder/internal/builder/idgen"
)

// IDReq addresses an entity by id (delete/remove operations).
type IDReq struct {
	ID string `json:"id" validate:"required,max=100"`
}

func (r *IDReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	return validateStruct(r)
}

// ValuesReq replaces a list of ids.
type ValuesReq struct {
	Values []string `json:"values" validate:"dive,required"`
}

func (r *ValuesReq) Validate() error {
	r.Values = normalizeIDs(r.Values)
	return validateStruct(r)
}

// EmptyReq is the payload of operations that take no input.
type EmptyReq struct{}

func (r *EmptyReq) Validate() error { return nil }

// FlagReq sets a boolean.
type FlagReq struct {
	Value bool `json:"value"`
}

func (r *FlagReq) Validate() error { return nil }

// AddImageReq places src at alignment, replacing whatever is there.
type AddImageReq struct {
	ID        string `json:"id" validate:"omitempty,max=100"`
	Src       string `json:"src" validate:"required"`
	Alignment string `json:"alignment" validate:"required"`
}

func (r *AddImageReq) Validate() error {
	r.Alignment = strings.ToLower(strings.TrimSpace(r.Alignment))
	r.ID = strings.TrimSpace(r.ID)
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Alignments, r.Alignment) {
		return badRequest("invalid alignment: " + r.Alignment)
	}
	if r.ID == "" {
		r.ID = idgen.New()
	}
	return nil
}

type DeleteImageReq struct {
	Alignment string `json:"alignment" validate:"required"`
}

func (r *DeleteImageReq) Validate() error {
	r.Alignment = strings.ToLower(strings.TrimSpace(r.Alignment))
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Alignments, r.Alignment) {
		return badRequest("invalid alignment: " + r.Alignment)
	}
	return nil
}

// normalizeIDs trims and drops empty or duplicate entries, keeping order.
func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed != "" && !seen[trimmed] {
			seen[trimmed] = true
			unique = append(unique, trimmed)
		}
	}
	return unique
}

// DocumentReq carries a whole entity, e.g. to load it into an editing cell.
type DocumentReq[T Document] struct {
	Document T `json:"document"`
}

func (r *DocumentReq[T]) Validate() error {
	if strings.TrimSpace(r.Document.DocumentID()) == "" {
		return badRequest("document id is required")
	}
	return nil
}

// DocumentsReq replaces a whole collection.
type DocumentsReq[T Document] struct {
	Documents []T `json:"documents"`
}

func (r *DocumentsReq[T]) Validate() error {
	for _, d := range r.Documents {
		if strings.TrimSpace(d.DocumentID()) == "" {
			return badRequest("document id is required")
		}
	}
	return nil
}
