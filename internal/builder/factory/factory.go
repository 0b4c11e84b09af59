// Package factory builds new entities with their documented defaults.
// Every constructor takes an optional id; without one a fresh id is generated.
package factory

import (
	"dashbuilder/internal/builder/idgen"
	"dashbuilder/internal/builder/model"
)

func pickID(id []string) string {
	if len(id) > 0 && id[0] != "" {
		return id[0]
	}
	return idgen.New()
}

func NewDashboard(id ...string) model.Dashboard {
	return model.Dashboard{
		ID:                            pickID(id),
		Name:                          model.DefaultDashboardName,
		Category:                      model.DefaultCategoryID,
		Sections:                      []model.Section{},
		Published:                     false,
		Rows:                          model.DefaultGridSize,
		Columns:                       model.DefaultGridSize,
		Refresh:                       model.DefaultRefresh,
		Categorization:                map[string][]model.Option{},
		AvailableCategories:           []model.CategoryDimension{},
		AvailableCategoryOptionCombos: []model.CategoryOptionCombo{},
		TargetCategoryOptionCombos:    []model.CategoryOptionCombo{},
		Type:                          model.DashboardTypeDynamic,
	}
}

// NewSection creates a 1x1 section with a default layout at every breakpoint.
func NewSection(id ...string) model.Section {
	sid := pickID(id)
	layouts := make(map[string]model.Layout, len(model.Breakpoints))
	for _, bp := range model.Breakpoints {
		layouts[bp] = model.Layout{I: sid, X: 0, Y: 0, W: 3, H: 2}
	}
	return model.Section{
		ID:             sid,
		RowSpan:        1,
		ColSpan:        1,
		Visualizations: []model.Visualization{},
		Layouts:        layouts,
		Display:        model.DefaultDisplay,
	}
}

func NewVisualization(id ...string) model.Visualization {
	return model.Visualization{
		ID:         pickID(id),
		Type:       model.DefaultChartType,
		Properties: map[string]any{},
		Overrides:  map[string]any{},
	}
}

func NewCategory(id ...string) model.Category {
	return model.Category{ID: pickID(id)}
}

func NewDataSource(id ...string) model.DataSource {
	return model.DataSource{
		ID:   pickID(id),
		Type: model.DataSourceTypeDHIS2,
	}
}

func NewExpression(id ...string) model.Expression {
	return model.Expression{
		ID:             pickID(id),
		Type:           model.ExpressionTypeAnalytics,
		DataDimensions: map[string]model.Dimension{},
		Expressions:    map[string]model.ExpressionValue{},
	}
}

func NewIndicator(id ...string) model.Indicator {
	numerator := NewExpression()
	denominator := NewExpression()
	return model.Indicator{
		ID:          pickID(id),
		Numerator:   &numerator,
		Denominator: &denominator,
		Factor:      model.DefaultFactor,
	}
}

// NewAppState returns the initial global state for a user context.
func NewAppState(user model.UserContext) model.AppState {
	return model.AppState{
		Organisation: model.OrganisationSelection{
			Levels:            []int{},
			Groups:            []string{},
			OrganisationUnits: []string{},
			ExpandedKeys:      []string{},
			CheckedKeys:       []string{},
		},
		Periods:              []model.Period{},
		IsAdmin:              user.IsAdmin,
		ShowSider:            true,
		ShowFooter:           false,
		SystemID:             user.SystemID,
		SystemName:           user.SystemName,
		Version:              user.Version,
		DataElements:         []string{},
		DataElementGroups:    []string{},
		DataElementGroupSets: []string{},
		Pages:                map[string]int{},
	}
}
