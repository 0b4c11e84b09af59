package store

import (
	"maps"
	"slices"

	"dashbuilder/internal/builder/model"
)

func SetPeriods(a model.AppState, req model.SetPeriodsReq) model.AppState {
	a.Periods = slices.Clone(req.Periods)
	return a
}

func SetLevels(a model.AppState, req model.SetLevelsReq) model.AppState {
	a.Organisation.Levels = slices.Clone(req.Levels)
	return a
}

func SetGroups(a model.AppState, req model.ValuesReq) model.AppState {
	a.Organisation.Groups = slices.Clone(req.Values)
	return a
}

func SetOrganisations(a model.AppState, req model.ValuesReq) model.AppState {
	a.Organisation.OrganisationUnits = slices.Clone(req.Values)
	return a
}

func SetExpandedKeys(a model.AppState, req model.ValuesReq) model.AppState {
	a.Organisation.ExpandedKeys = slices.Clone(req.Values)
	return a
}

func SetCheckedKeys(a model.AppState, req model.ValuesReq) model.AppState {
	a.Organisation.CheckedKeys = slices.Clone(req.Values)
	return a
}

func SetMinSublevel(a model.AppState, req model.SetMinSublevelReq) model.AppState {
	a.Organisation.MinSublevel = req.Value
	return a
}

func SetAdmin(a model.AppState, req model.FlagReq) model.AppState {
	a.IsAdmin = req.Value
	return a
}

func SetSelectedDashboard(a model.AppState, req model.SelectReq) model.AppState {
	a.SelectedDashboard = req.ID
	return a
}

func SetSelectedCategory(a model.AppState, req model.SelectReq) model.AppState {
	a.SelectedCategory = req.ID
	return a
}

func ToggleSider(a model.AppState, _ model.EmptyReq) model.AppState {
	a.ShowSider = !a.ShowSider
	return a
}

func SetShowFooter(a model.AppState, req model.FlagReq) model.AppState {
	a.ShowFooter = req.Value
	return a
}

func SetFullScreen(a model.AppState, req model.FlagReq) model.AppState {
	a.IsFullScreen = req.Value
	return a
}

func SetNotDesktop(a model.AppState, req model.FlagReq) model.AppState {
	a.IsNotDesktop = req.Value
	return a
}

func SetSystem(a model.AppState, req model.SetSystemReq) model.AppState {
	a.SystemID = req.SystemID
	a.SystemName = req.SystemName
	a.Version = req.Version
	return a
}

func SetDataElements(a model.AppState, req model.ValuesReq) model.AppState {
	a.DataElements = slices.Clone(req.Values)
	return a
}

func SetDataElementGroups(a model.AppState, req model.ValuesReq) model.AppState {
	a.DataElementGroups = slices.Clone(req.Values)
	return a
}

func SetDataElementGroupSets(a model.AppState, req model.ValuesReq) model.AppState {
	a.DataElementGroupSets = slices.Clone(req.Values)
	return a
}

func ChangePage(a model.AppState, req model.ChangePageReq) model.AppState {
	pages := make(map[string]int, len(a.Pages)+1)
	maps.Copy(pages, a.Pages)
	pages[req.Resource] = req.Page
	a.Pages = pages
	return a
}
