package dispatch

import (
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/state"
	"dashbuilder/internal/builder/store"
)

// Collection events
const (
	SetDashboards       = "setDashboards"
	UpsertDashboard     = "upsertDashboard"
	RemoveDashboard     = "removeDashboard"
	SetIndicators       = "setIndicators"
	UpsertIndicator     = "upsertIndicator"
	RemoveIndicator     = "removeIndicator"
	SetDataSources      = "setDataSources"
	UpsertDataSource    = "upsertDataSource"
	RemoveDataSource    = "removeDataSource"
	SetCategories       = "setCategories"
	UpsertCategory      = "upsertCategory"
	RemoveCategory      = "removeCategory"
	SetVisualizations   = "setVisualizations"
	UpsertVisualization = "upsertVisualization"
	RemoveVisualization = "removeVisualization"
)

func registerCollections(d *Dispatcher) {
	collection(d, SetDashboards, UpsertDashboard, RemoveDashboard,
		func(s *store.Store) *state.Cell[[]model.Dashboard] { return s.Dashboards })
	collection(d, SetIndicators, UpsertIndicator, RemoveIndicator,
		func(s *store.Store) *state.Cell[[]model.Indicator] { return s.Indicators })
	collection(d, SetDataSources, UpsertDataSource, RemoveDataSource,
		func(s *store.Store) *state.Cell[[]model.DataSource] { return s.DataSources })
	collection(d, SetCategories, UpsertCategory, RemoveCategory,
		func(s *store.Store) *state.Cell[[]model.Category] { return s.Categories })
	collection(d, SetVisualizations, UpsertVisualization, RemoveVisualization,
		func(s *store.Store) *state.Cell[[]model.Visualization] { return s.Visualizations })
}

func collection[T model.Document](d *Dispatcher, set, upsert, remove string, cell func(*store.Store) *state.Cell[[]T]) {
	on(d, set, cell, func(items []T, r model.DocumentsReq[T]) []T {
		return store.Replace(items, r.Documents)
	})
	on(d, upsert, cell, func(items []T, r model.DocumentReq[T]) []T {
		return store.Upsert(items, r.Document)
	})
	on(d, remove, cell, func(items []T, r model.IDReq) []T {
		return store.Remove(items, r.ID)
	})
}
