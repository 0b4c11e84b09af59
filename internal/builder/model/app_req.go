package model

import (
	"slices"
	"strings"
)

type SetPeriodsReq struct {
	Periods []Period `json:"periods" validate:"dive"`
}

func (r *SetPeriodsReq) Validate() error {
	for i := range r.Periods {
		r.Periods[i].ID = strings.TrimSpace(r.Periods[i].ID)
		if r.Periods[i].ID == "" {
			return badRequest("period id is required")
		}
	}
	return nil
}

type SetLevelsReq struct {
	Levels []int `json:"levels" validate:"dive,min=1"`
}

func (r *SetLevelsReq) Validate() error {
	return validateStruct(r)
}

type SetMinSublevelReq struct {
	Value int `json:"value" validate:"min=0"`
}

func (r *SetMinSublevelReq) Validate() error {
	return validateStruct(r)
}

// SelectReq selects an entity id; an empty id clears the selection.
type SelectReq struct {
	ID string `json:"id" validate:"max=100"`
}

func (r *SelectReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	return validateStruct(r)
}

type SetSystemReq struct {
	SystemID   string `json:"systemId" validate:"max=100"`
	SystemName string `json:"systemName" validate:"max=200"`
	Version    string `json:"version" validate:"max=50"`
}

func (r *SetSystemReq) Validate() error {
	r.SystemID = strings.TrimSpace(r.SystemID)
	r.SystemName = strings.TrimSpace(r.SystemName)
	r.Version = strings.TrimSpace(r.Version)
	return validateStruct(r)
}

var pageResources = []string{
	PageDashboards, PageIndicators, PageDataSources, PageCategories, PageVisualizations,
}

type ChangePageReq struct {
	Resource string `json:"resource" validate:"required"`
	Page     int    `json:"page" validate:"min=1"`
}

func (r *ChangePageReq) Validate() error {
	r.Resource = strings.TrimSpace(r.Resource)
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(pageResources, r.Resource) {
		return badRequest("invalid page resource: " + r.Resource)
	}
	return nil
}
