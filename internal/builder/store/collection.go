package store

import "dashbuilder/internal/builder/model"

// Find returns the item with id.
func Find[T model.Document](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.DocumentID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the item sharing item's id in place or appends it.
func Upsert[T model.Document](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	for i, existing := range out {
		if existing.DocumentID() == item.DocumentID() {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// Remove drops the item with id. Unknown ids return items unchanged.
func Remove[T model.Document](items []T, id string) []T {
	idx := -1
	for i, item := range items {
		if item.DocumentID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// Replace swaps in a whole collection, copying it so later caller edits
// cannot reach the store.
func Replace[T any](_ []T, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
