package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashbuilder/internal/builder/factory"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/repository"
	"dashbuilder/internal/builder/state"
	"dashbuilder/internal/builder/store"
)

// Save persists the entity being edited in the session and, once the
// document store accepts it, upserts it into the matching local collection.
func (s *Service) Save(ctx context.Context, sessionID string, req model.SaveReq) (model.Document, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.Store
	owner := st.App.Read().SystemID
	mode := repository.SaveMode(req.Mode)
	if !mode.Valid() {
		return nil, ErrBadRequest
	}

	switch req.Collection {
	case model.CollectionDashboards:
		return persist(ctx, s, owner, req.Collection, st.Dashboard.Read(), mode, st.Dashboards)
	case model.CollectionIndicators:
		return persist(ctx, s, owner, req.Collection, st.Indicator.Read(), mode, st.Indicators)
	case model.CollectionDataSources:
		return persist(ctx, s, owner, req.Collection, st.DataSource.Read(), mode, st.DataSources)
	case model.CollectionCategories:
		return persist(ctx, s, owner, req.Collection, st.Category.Read(), mode, st.Categories)
	case model.CollectionVisualizations:
		section := st.Section.Read()
		i := section.VisualizationIndex(req.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		return persist(ctx, s, owner, req.Collection, section.Visualizations[i], mode, st.Visualizations)
	}
	return nil, ErrBadRequest
}

// Load replaces the local collection with every document the session's
// system owns and returns how many were loaded.
func (s *Service) Load(ctx context.Context, sessionID, collection string) (int, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return 0, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.Store
	owner := st.App.Read().SystemID
	switch collection {
	case model.CollectionDashboards:
		return load(ctx, s, owner, collection, st.Dashboards)
	case model.CollectionIndicators:
		return load(ctx, s, owner, collection, st.Indicators)
	case model.CollectionDataSources:
		return load(ctx, s, owner, collection, st.DataSources)
	case model.CollectionCategories:
		return load(ctx, s, owner, collection, st.Categories)
	case model.CollectionVisualizations:
		return load(ctx, s, owner, collection, st.Visualizations)
	}
	return 0, ErrBadRequest
}

// Delete removes the document from the document store first and from the
// local collection only when that succeeds.
func (s *Service) Delete(ctx context.Context, sessionID, collection, id string) error {
	sess, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.Store
	owner := st.App.Read().SystemID
	switch collection {
	case model.CollectionDashboards:
		return remove(ctx, s, owner, collection, id, st.Dashboards)
	case model.CollectionIndicators:
		return remove(ctx, s, owner, collection, id, st.Indicators)
	case model.CollectionDataSources:
		return remove(ctx, s, owner, collection, id, st.DataSources)
	case model.CollectionCategories:
		return remove(ctx, s, owner, collection, id, st.Categories)
	case model.CollectionVisualizations:
		return remove(ctx, s, owner, collection, id, st.Visualizations)
	}
	return ErrBadRequest
}

// DuplicateDashboard stores a deep copy of a loaded dashboard under fresh
// ids and adds it to the local dashboards.
func (s *Service) DuplicateDashboard(ctx context.Context, sessionID, dashboardID string) (*model.Dashboard, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.Store
	original, ok := store.Find(st.Dashboards.Read(), dashboardID)
	if !ok {
		return nil, ErrNotFound
	}
	dup := factory.CopyDashboard(original)
	owner := st.App.Read().SystemID
	if _, err := persist(ctx, s, owner, model.CollectionDashboards, dup, repository.ModeCreate, st.Dashboards); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Audit: dashboard duplicated", "source", dashboardID, "copy", dup.ID, "system_id", owner)
	return &dup, nil
}

func persist[T model.Document](ctx context.Context, s *Service, owner, collection string, doc T, mode repository.SaveMode, into *state.Cell[[]T]) (model.Document, error) {
	start := time.Now()
	err := s.Repo.Save(ctx, collection, owner, doc, mode)
	s.recorder.RecordPersistence("save", collection, err, time.Since(start))
	if err != nil {
		return nil, mapRepoError(err)
	}
	into.Update(func(items []T) []T { return store.Upsert(items, doc) })
	s.logger.InfoContext(ctx, "Audit: document saved",
		"collection", collection, "id", doc.DocumentID(), "mode", string(mode), "system_id", owner)
	return doc, nil
}

func load[T model.Document](ctx context.Context, s *Service, owner, collection string, into *state.Cell[[]T]) (int, error) {
	start := time.Now()
	var items []T
	err := s.Repo.List(ctx, collection, owner, &items)
	s.recorder.RecordPersistence("list", collection, err, time.Since(start))
	if err != nil {
		return 0, mapRepoError(err)
	}
	if items == nil {
		items = []T{}
	}
	into.Set(items)
	return len(items), nil
}

func remove[T model.Document](ctx context.Context, s *Service, owner, collection, id string, from *state.Cell[[]T]) error {
	start := time.Now()
	err := s.Repo.Delete(ctx, collection, owner, id)
	s.recorder.RecordPersistence("delete", collection, err, time.Since(start))
	if err != nil {
		return mapRepoError(err)
	}
	from.Update(func(items []T) []T { return store.Remove(items, id) })
	s.logger.InfoContext(ctx, "Audit: document deleted", "collection", collection, "id", id, "system_id", owner)
	return nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrInvalidCollection):
		return ErrBadRequest
	}
	return fmt.Errorf("document store: %w", err)
}
