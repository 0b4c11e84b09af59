package dispatch

import (
	"encoding/json"

	"dashbuilder/internal/builder/factory"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/state"
	"dashbuilder/internal/builder/store"
)

// Dashboard events
const (
	NewDashboard                     = "newDashboard"
	SetDashboard                     = "setDashboard"
	AddSection                       = "addSection"
	DeleteSection                    = "deleteSection"
	ChangeDashboardAttribute         = "changeDashboardAttribute"
	SetCategorization                = "setCategorization"
	SetAvailableCategories           = "setAvailableCategories"
	SetAvailableCategoryOptionCombos = "setAvailableCategoryOptionCombos"
	SetTargetCategoryOptionCombos    = "setTargetCategoryOptionCombos"
	AddDashboardImage                = "addDashboardImage"
	DeleteDashboardImage             = "deleteDashboardImage"
	ChangeLayouts                    = "changeLayouts"
)

// Section events
const (
	NewSection                    = "newSection"
	SetSection                    = "setSection"
	ChangeSectionAttribute        = "changeSectionAttribute"
	ChangeSectionLayout           = "changeSectionLayout"
	AddVisualization              = "addVisualization"
	DeleteVisualization           = "deleteVisualization"
	DuplicateVisualization        = "duplicateVisualization"
	ChangeVisualizationAttribute  = "changeVisualizationAttribute"
	ChangeVisualizationProperties = "changeVisualizationProperties"
	ChangeVisualizationOverride   = "changeVisualizationOverride"
	AddImage                      = "addImage"
	DeleteImage                   = "deleteImage"
)

// Indicator events
const (
	NewIndicator                     = "newIndicator"
	SetIndicator                     = "setIndicator"
	ChangeIndicatorAttribute         = "changeIndicatorAttribute"
	ChangeNumeratorDimension         = "changeNumeratorDimension"
	ChangeDenominatorDimension       = "changeDenominatorDimension"
	ChangeNumeratorAttribute         = "changeNumeratorAttribute"
	ChangeDenominatorAttribute       = "changeDenominatorAttribute"
	ChangeNumeratorExpressionValue   = "changeNumeratorExpressionValue"
	ChangeDenominatorExpressionValue = "changeDenominatorExpressionValue"
)

// Data source and category events
const (
	NewDataSource             = "newDataSource"
	SetDataSource             = "setDataSource"
	ChangeDataSourceAttribute = "changeDataSourceAttribute"
	ChangeDataSourceAuth      = "changeDataSourceAuth"
	NewCategory               = "newCategory"
	SetCategory               = "setCategory"
	ChangeCategoryAttribute   = "changeCategoryAttribute"
)

// App events
const (
	SetPeriods              = "setPeriods"
	SetLevels               = "setLevels"
	SetGroups               = "setGroups"
	SetOrganisations        = "setOrganisations"
	SetExpandedKeys         = "setExpandedKeys"
	SetCheckedKeys          = "setCheckedKeys"
	SetMinSublevel          = "setMinSublevel"
	SetAdmin                = "setAdmin"
	SetSelectedDashboard    = "setSelectedDashboard"
	SetSelectedCategory     = "setSelectedCategory"
	ToggleSider             = "toggleSider"
	SetShowFooter           = "setShowFooter"
	SetFullScreen           = "setFullScreen"
	SetNotDesktop           = "setNotDesktop"
	SetSystem               = "setSystem"
	SetDataElements         = "setDataElements"
	SetDataElementGroups    = "setDataElementGroups"
	SetDataElementGroupSets = "setDataElementGroupSets"
	ChangePage              = "changePage"
)

// Selection events load an entity from its collection into the editing cell.
const (
	SelectDashboard  = "selectDashboard"
	SelectSection    = "selectSection"
	SelectIndicator  = "selectIndicator"
	SelectDataSource = "selectDataSource"
	SelectCategory   = "selectCategory"
)

func dashboardCell(s *store.Store) *state.Cell[model.Dashboard] { return s.Dashboard }
func sectionCell(s *store.Store) *state.Cell[model.Section] { return s.Section }
func indicatorCell(s *store.Store) *state.Cell[model.Indicator] { return s.Indicator }
func dataSourceCell(s *store.Store) *state.Cell[model.DataSource] { return s.DataSource }
func categoryCell(s *store.Store) *state.Cell[model.Category] { return s.Category }
func appCell(s *store.Store) *state.Cell[model.AppState] { return s.App }

func registerDashboard(d *Dispatcher) {
	on(d, NewDashboard, dashboardCell, func(_ model.Dashboard, r model.SelectReq) model.Dashboard {
		return factory.NewDashboard(r.ID)
	})
	on(d, SetDashboard, dashboardCell, setDocument[model.Dashboard])
	on(d, AddSection, dashboardCell, func(cur model.Dashboard, r model.AddSectionReq) model.Dashboard {
		return store.AddSection(cur, r.Section)
	})
	on(d, DeleteSection, dashboardCell, store.DeleteSection)
	on(d, ChangeDashboardAttribute, dashboardCell, store.ChangeDashboardAttribute)
	on(d, SetCategorization, dashboardCell, store.SetCategorization)
	on(d, SetAvailableCategories, dashboardCell, store.SetAvailableCategories)
	on(d, SetAvailableCategoryOptionCombos, dashboardCell, store.SetAvailableCategoryOptionCombos)
	on(d, SetTargetCategoryOptionCombos, dashboardCell, store.SetTargetCategoryOptionCombos)
	on(d, AddDashboardImage, dashboardCell, store.AddDashboardImage)
	on(d, DeleteDashboardImage, dashboardCell, store.DeleteDashboardImage)
	on(d, ChangeLayouts, dashboardCell, store.ChangeLayouts)
}

func registerSection(d *Dispatcher) {
	on(d, NewSection, sectionCell, func(_ model.Section, r model.SelectReq) model.Section {
		return factory.NewSection(r.ID)
	})
	on(d, SetSection, sectionCell, setDocument[model.Section])
	on(d, ChangeSectionAttribute, sectionCell, store.ChangeSectionAttribute)
	on(d, ChangeSectionLayout, sectionCell, store.ChangeSectionLayout)
	on(d, AddVisualization, sectionCell, store.AddVisualization)
	on(d, DeleteVisualization, sectionCell, store.DeleteVisualization)
	on(d, DuplicateVisualization, sectionCell, store.DuplicateVisualization)
	on(d, ChangeVisualizationAttribute, sectionCell, store.ChangeVisualizationAttribute)
	on(d, ChangeVisualizationProperties, sectionCell, store.ChangeVisualizationProperties)
	on(d, ChangeVisualizationOverride, sectionCell, store.ChangeVisualizationOverride)
	on(d, AddImage, sectionCell, store.AddImage)
	on(d, DeleteImage, sectionCell, store.DeleteImage)
}

func registerIndicator(d *Dispatcher) {
	on(d, NewIndicator, indicatorCell, func(_ model.Indicator, r model.SelectReq) model.Indicator {
		return factory.NewIndicator(r.ID)
	})
	on(d, SetIndicator, indicatorCell, setDocument[model.Indicator])
	on(d, ChangeIndicatorAttribute, indicatorCell, store.ChangeIndicatorAttribute)
	on(d, ChangeNumeratorDimension, indicatorCell, store.ChangeNumeratorDimension)
	on(d, ChangeDenominatorDimension, indicatorCell, store.ChangeDenominatorDimension)
	on(d, ChangeNumeratorAttribute, indicatorCell, store.ChangeNumeratorAttribute)
	on(d, ChangeDenominatorAttribute, indicatorCell, store.ChangeDenominatorAttribute)
	on(d, ChangeNumeratorExpressionValue, indicatorCell, store.ChangeNumeratorExpressionValue)
	on(d, ChangeDenominatorExpressionValue, indicatorCell, store.ChangeDenominatorExpressionValue)
}

func registerDataSource(d *Dispatcher) {
	on(d, NewDataSource, dataSourceCell, func(_ model.DataSource, r model.SelectReq) model.DataSource {
		return factory.NewDataSource(r.ID)
	})
	on(d, SetDataSource, dataSourceCell, setDocument[model.DataSource])
	on(d, ChangeDataSourceAttribute, dataSourceCell, store.ChangeDataSourceAttribute)
	on(d, ChangeDataSourceAuth, dataSourceCell, store.ChangeDataSourceAuth)

	on(d, NewCategory, categoryCell, func(_ model.Category, r model.SelectReq) model.Category {
		return factory.NewCategory(r.ID)
	})
	on(d, SetCategory, categoryCell, setDocument[model.Category])
	on(d, ChangeCategoryAttribute, categoryCell, store.ChangeCategoryAttribute)
}

func registerApp(d *Dispatcher) {
	on(d, SetPeriods, appCell, store.SetPeriods)
	on(d, SetLevels, appCell, store.SetLevels)
	on(d, SetGroups, appCell, store.SetGroups)
	on(d, SetOrganisations, appCell, store.SetOrganisations)
	on(d, SetExpandedKeys, appCell, store.SetExpandedKeys)
	on(d, SetCheckedKeys, appCell, store.SetCheckedKeys)
	on(d, SetMinSublevel, appCell, store.SetMinSublevel)
	on(d, SetAdmin, appCell, store.SetAdmin)
	on(d, SetSelectedDashboard, appCell, store.SetSelectedDashboard)
	on(d, SetSelectedCategory, appCell, store.SetSelectedCategory)
	on(d, ToggleSider, appCell, store.ToggleSider)
	on(d, SetShowFooter, appCell, store.SetShowFooter)
	on(d, SetFullScreen, appCell, store.SetFullScreen)
	on(d, SetNotDesktop, appCell, store.SetNotDesktop)
	on(d, SetSystem, appCell, store.SetSystem)
	on(d, SetDataElements, appCell, store.SetDataElements)
	on(d, SetDataElementGroups, appCell, store.SetDataElementGroups)
	on(d, SetDataElementGroupSets, appCell, store.SetDataElementGroupSets)
	on(d, ChangePage, appCell, store.ChangePage)
}

func registerSelection(d *Dispatcher) {
	selectOn(d, SelectDashboard, (*store.Store).SelectDashboard)
	selectOn(d, SelectSection, (*store.Store).SelectSection)
	selectOn(d, SelectIndicator, (*store.Store).SelectIndicator)
	selectOn(d, SelectDataSource, (*store.Store).SelectDataSource)
	selectOn(d, SelectCategory, (*store.Store).SelectCategory)
}

// selectOn registers a selection event. Unknown ids are a no-op.
func selectOn(d *Dispatcher, name string, fn func(*store.Store, string) bool) {
	d.register(name, func(s *store.Store, raw json.RawMessage) error {
		req, err := decode[model.SelectReq](raw)
		if err != nil {
			return err
		}
		fn(s, req.ID)
		return nil
	})
}

func setDocument[T model.Document](_ T, r model.DocumentReq[T]) T {
	return r.Document
}
