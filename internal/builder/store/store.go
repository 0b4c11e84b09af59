// Package store is the domain store of the dashboard builder: one state
// cell per entity or collection, and the pure operations that transform them.
//
// Operations are plain functions of the form Op(current, payload) next. They
// never modify current in place: any slice or map on the path to the change
// is copied, everything else is shared with the previous value. Payloads
// naming ids that do not exist leave the state unchanged.
package store

import (
	"dashbuilder/internal/builder/factory"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/state"
)

// Cell names
const (
	CellDashboard      = "dashboard"
	CellSection        = "section"
	CellIndicator      = "indicator"
	CellDataSource     = "dataSource"
	CellCategory       = "category"
	CellApp            = "app"
	CellDashboards     = "dashboards"
	CellIndicators     = "indicators"
	CellDataSources    = "dataSources"
	CellCategories     = "categories"
	CellVisualizations = "visualizations"
)

var CellNames = []string{
	CellDashboard, CellSection, CellIndicator, CellDataSource, CellCategory, CellApp,
	CellDashboards, CellIndicators, CellDataSources, CellCategories, CellVisualizations,
}

type Store struct {
	Dashboard      *state.Cell[model.Dashboard]
	Section        *state.Cell[model.Section]
	Indicator      *state.Cell[model.Indicator]
	DataSource     *state.Cell[model.DataSource]
	Category       *state.Cell[model.Category]
	App            *state.Cell[model.AppState]
	Dashboards     *state.Cell[[]model.Dashboard]
	Indicators     *state.Cell[[]model.Indicator]
	DataSources    *state.Cell[[]model.DataSource]
	Categories     *state.Cell[[]model.Category]
	Visualizations *state.Cell[[]model.Visualization]
}

// New creates a store with every cell at its documented default. The user
// context only seeds the app cell.
func New(user model.UserContext) *Store {
	return &Store{
		Dashboard:      state.NewCell(CellDashboard, factory.NewDashboard()),
		Section:        state.NewCell(CellSection, factory.NewSection()),
		Indicator:      state.NewCell(CellIndicator, factory.NewIndicator()),
		DataSource:     state.NewCell(CellDataSource, factory.NewDataSource()),
		Category:       state.NewCell(CellCategory, factory.NewCategory()),
		App:            state.NewCell(CellApp, factory.NewAppState(user)),
		Dashboards:     state.NewCell(CellDashboards, []model.Dashboard{}),
		Indicators:     state.NewCell(CellIndicators, []model.Indicator{}),
		DataSources:    state.NewCell(CellDataSources, []model.DataSource{}),
		Categories:     state.NewCell(CellCategories, []model.Category{}),
		Visualizations: state.NewCell(CellVisualizations, []model.Visualization{}),
	}
}

// Snapshot returns the current value of the named cell.
func (s *Store) Snapshot(name string) (any, bool) {
	switch name {
	case CellDashboard:
		return s.Dashboard.Read(), true
	case CellSection:
		return s.Section.Read(), true
	case CellIndicator:
		return s.Indicator.Read(), true
	case CellDataSource:
		return s.DataSource.Read(), true
	case CellCategory:
		return s.Category.Read(), true
	case CellApp:
		return s.App.Read(), true
	case CellDashboards:
		return s.Dashboards.Read(), true
	case CellIndicators:
		return s.Indicators.Read(), true
	case CellDataSources:
		return s.DataSources.Read(), true
	case CellCategories:
		return s.Categories.Read(), true
	case CellVisualizations:
		return s.Visualizations.Read(), true
	}
	return nil, false
}

// SelectDashboard makes the dashboard with id current and records the
// selection. Unknown ids leave both cells untouched.
func (s *Store) SelectDashboard(id string) bool {
	d, ok := Find(s.Dashboards.Read(), id)
	if !ok {
		return false
	}
	s.Dashboard.Set(d)
	s.App.Update(func(a model.AppState) model.AppState { return SetSelectedDashboard(a, model.SelectReq{ID: id}) })
	return true
}

// SelectIndicator, SelectDataSource and SelectCategory load an entity from
// its collection into the editing cell.
func (s *Store) SelectIndicator(id string) bool {
	return selectInto(s.Indicators, s.Indicator, id)
}

func (s *Store) SelectDataSource(id string) bool {
	return selectInto(s.DataSources, s.DataSource, id)
}

func (s *Store) SelectCategory(id string) bool {
	return selectInto(s.Categories, s.Category, id)
}

// SelectSection loads a section of the current dashboard (or its bottom
// section) into the section cell for editing.
func (s *Store) SelectSection(id string) bool {
	d := s.Dashboard.Read()
	if idx := d.SectionIndex(id); idx >= 0 {
		s.Section.Set(d.Sections[idx])
		return true
	}
	if d.BottomSection != nil && d.BottomSection.ID == id {
		s.Section.Set(*d.BottomSection)
		return true
	}
	return false
}

func selectInto[T model.Document](from *state.Cell[[]T], into *state.Cell[T], id string) bool {
	item, ok := Find(from.Read(), id)
	if !ok {
		return false
	}
	into.Set(item)
	return true
}
