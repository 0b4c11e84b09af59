// Package derive declares the values computed from the domain store: data
// source lookups, option lists, category option combos and the global
// filter mapping. Each value lists its inputs explicitly and is recomputed
// only when one of them changes.
package derive

import (
	"dashbuilder/internal/builder/config"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/period"
	"dashbuilder/internal/builder/state"
	"dashbuilder/internal/builder/store"
)

// Derived value names
const (
	NameIndicatorDataSource       = "indicatorDataSource"
	NameDataSourceType            = "dataSourceType"
	NameIsCurrentDHIS2            = "isCurrentDHIS2"
	NameDataSourceClient          = "dataSourceClient"
	NameDashboardOptions          = "dashboardOptions"
	NameCategoryOptions           = "categoryOptions"
	NameDataSourceOptions         = "dataSourceOptions"
	NameIndicatorOptions          = "indicatorOptions"
	NameVisualizationOptions      = "visualizationOptions"
	NameCategoryDashboards        = "categoryDashboards"
	NameCategoryOptionCombo       = "categoryOptionCombo"
	NameTargetCategoryOptionCombo = "targetCategoryOptionCombo"
	NameGlobalFilters             = "globalFilters"
)

var Names = []string{
	NameIndicatorDataSource, NameDataSourceType, NameIsCurrentDHIS2, NameDataSourceClient,
	NameDashboardOptions, NameCategoryOptions, NameDataSourceOptions, NameIndicatorOptions,
	NameVisualizationOptions, NameCategoryDashboards, NameCategoryOptionCombo,
	NameTargetCategoryOptionCombo, NameGlobalFilters,
}

type Graph struct {
	IndicatorDataSource *state.Derived[*model.DataSource]
	DataSourceType      *state.Derived[string]
	IsCurrentDHIS2      *state.Derived[bool]
	DataSourceClient    *state.Derived[*model.ClientDescriptor]

	DashboardOptions     *state.Derived[[]model.Option]
	CategoryOptions      *state.Derived[[]model.Option]
	DataSourceOptions    *state.Derived[[]model.Option]
	IndicatorOptions     *state.Derived[[]model.Option]
	VisualizationOptions *state.Derived[[]model.Option]
	CategoryDashboards   *state.Derived[[]model.Dashboard]

	CategoryOptionCombo       *state.Derived[model.CategoryOptionComboPair]
	TargetCategoryOptionCombo *state.Derived[[]string]
	GlobalFilters             *state.Derived[model.Filters]
}

type options struct {
	observer state.Observer
}

type Option func(*options)

// WithObserver reports every recomputation to o.
func WithObserver(o state.Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// New builds the derivation graph over s. Period keywords are expanded with
// r and filter entries are keyed by keys.
func New(s *store.Store, r period.Resolver, keys config.DimensionKeys, opts ...Option) *Graph {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &Graph{}

	g.IndicatorDataSource = derived(&o, NameIndicatorDataSource, func() *model.DataSource {
		return FindDataSource(s.Indicator.Read(), s.DataSources.Read())
	}, s.Indicator, s.DataSources)

	g.DataSourceType = derived(&o, NameDataSourceType, func() string {
		if ds := g.IndicatorDataSource.Read(); ds != nil {
			return ds.Type
		}
		return ""
	}, g.IndicatorDataSource)

	g.IsCurrentDHIS2 = derived(&o, NameIsCurrentDHIS2, func() bool {
		ds := g.IndicatorDataSource.Read()
		return ds != nil && ds.IsCurrentDHIS2
	}, g.IndicatorDataSource)

	g.DataSourceClient = derived(&o, NameDataSourceClient, func() *model.ClientDescriptor {
		return ClientFor(g.IndicatorDataSource.Read())
	}, g.IndicatorDataSource)

	g.DashboardOptions = derived(&o, NameDashboardOptions, func() []model.Option {
		return Options(s.Dashboards.Read())
	}, s.Dashboards)
	g.CategoryOptions = derived(&o, NameCategoryOptions, func() []model.Option {
		return Options(s.Categories.Read())
	}, s.Categories)
	g.DataSourceOptions = derived(&o, NameDataSourceOptions, func() []model.Option {
		return Options(s.DataSources.Read())
	}, s.DataSources)
	g.IndicatorOptions = derived(&o, NameIndicatorOptions, func() []model.Option {
		return Options(s.Indicators.Read())
	}, s.Indicators)
	g.VisualizationOptions = derived(&o, NameVisualizationOptions, func() []model.Option {
		return Options(s.Visualizations.Read())
	}, s.Visualizations)

	g.CategoryDashboards = derived(&o, NameCategoryDashboards, func() []model.Dashboard {
		return DashboardsInCategory(s.Dashboards.Read(), s.App.Read().SelectedCategory)
	}, s.Dashboards, s.App)

	g.CategoryOptionCombo = derived(&o, NameCategoryOptionCombo, func() model.CategoryOptionComboPair {
		return ComputeCategoryOptionCombo(s.Dashboard.Read())
	}, s.Dashboard)

	g.TargetCategoryOptionCombo = derived(&o, NameTargetCategoryOptionCombo, func() []string {
		return ComputeTargetCombos(s.Dashboard.Read())
	}, s.Dashboard)

	g.GlobalFilters = derived(&o, NameGlobalFilters, func() model.Filters {
		d := s.Dashboard.Read()
		return ComputeGlobalFilters(FilterInput{
			App:                 s.App.Read(),
			DataSet:             d.DataSet,
			TargetCategoryCombo: d.TargetCategoryCombo,
			Combos:              g.CategoryOptionCombo.Read(),
			Targets:             g.TargetCategoryOptionCombo.Read(),
		}, r, keys)
	}, s.App, s.Dashboard, g.CategoryOptionCombo, g.TargetCategoryOptionCombo)

	return g
}

// Read returns the current value of the named derived value.
func (g *Graph) Read(name string) (any, bool) {
	switch name {
	case NameIndicatorDataSource:
		return g.IndicatorDataSource.Read(), true
	case NameDataSourceType:
		return g.DataSourceType.Read(), true
	case NameIsCurrentDHIS2:
		return g.IsCurrentDHIS2.Read(), true
	case NameDataSourceClient:
		return g.DataSourceClient.Read(), true
	case NameDashboardOptions:
		return g.DashboardOptions.Read(), true
	case NameCategoryOptions:
		return g.CategoryOptions.Read(), true
	case NameDataSourceOptions:
		return g.DataSourceOptions.Read(), true
	case NameIndicatorOptions:
		return g.IndicatorOptions.Read(), true
	case NameVisualizationOptions:
		return g.VisualizationOptions.Read(), true
	case NameCategoryDashboards:
		return g.CategoryDashboards.Read(), true
	case NameCategoryOptionCombo:
		return g.CategoryOptionCombo.Read(), true
	case NameTargetCategoryOptionCombo:
		return g.TargetCategoryOptionCombo.Read(), true
	case NameGlobalFilters:
		return g.GlobalFilters.Read(), true
	}
	return nil, false
}

func derived[T any](o *options, name string, compute func() T, inputs ...state.Source) *state.Derived[T] {
	d := state.Derive(name, compute, inputs...)
	if o.observer != nil {
		d.WithObserver(o.observer)
	}
	return d
}

// DashboardsInCategory keeps the dashboards filed under category. An empty
// category keeps them all.
func DashboardsInCategory(dashboards []model.Dashboard, category string) []model.Dashboard {
	out := make([]model.Dashboard, 0, len(dashboards))
	for _, d := range dashboards {
		if category == "" || d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
