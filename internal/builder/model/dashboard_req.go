package model

import (
	"slices"
	"strings"
)

// AddSectionReq upserts a section into a dashboard. A section flagged as
// bottom section replaces Dashboard.BottomSection instead.
type AddSectionReq struct {
	Section Section `json:"section"`
}

func (r *AddSectionReq) Validate() error {
	r.Section.ID = strings.TrimSpace(r.Section.ID)
	if r.Section.ID == "" {
		return badRequest("section id is required")
	}
	return nil
}

type ChangeDashboardAttributeReq struct {
	Attribute DashboardAttribute `json:"attribute" validate:"required"`
	Value     any                `json:"value"`
}

func (r *ChangeDashboardAttributeReq) Validate() error {
	r.Attribute = DashboardAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(DashboardAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	if r.Attribute == DashboardType {
		if t := v.(string); t != DashboardTypeFixed && t != DashboardTypeDynamic {
			return badRequest("invalid dashboard type: must be one of [fixed, dynamic]")
		}
	}
	if (r.Attribute == DashboardRows || r.Attribute == DashboardColumns) && v.(int) < 1 {
		return badRequest("grid dimensions must be positive")
	}
	r.Value = v
	return nil
}

// SetCategorizationReq replaces the selected options of one category.
type SetCategorizationReq struct {
	Category string   `json:"category" validate:"required,max=100"`
	Options  []Option `json:"options" validate:"dive"`
}

func (r *SetCategorizationReq) Validate() error {
	r.Category = strings.TrimSpace(r.Category)
	return validateStruct(r)
}

type SetAvailableCategoriesReq struct {
	Categories []CategoryDimension `json:"categories"`
}

func (r *SetAvailableCategoriesReq) Validate() error {
	for _, c := range r.Categories {
		if strings.TrimSpace(c.ID) == "" {
			return badRequest("category id is required")
		}
	}
	return nil
}

type SetCategoryOptionCombosReq struct {
	Combos []CategoryOptionCombo `json:"combos"`
}

func (r *SetCategoryOptionCombosReq) Validate() error {
	for _, c := range r.Combos {
		if strings.TrimSpace(c.ID) == "" {
			return badRequest("category option combo id is required")
		}
	}
	return nil
}

// ChangeLayoutsReq applies grid positions for one breakpoint to the
// sections whose id matches Layout.I.
type ChangeLayoutsReq struct {
	Breakpoint string   `json:"breakpoint" validate:"required"`
	Layouts    []Layout `json:"layouts"`
}

func (r *ChangeLayoutsReq) Validate() error {
	r.Breakpoint = strings.ToLower(strings.TrimSpace(r.Breakpoint))
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Breakpoints, r.Breakpoint) {
		return badRequest("invalid breakpoint: " + r.Breakpoint)
	}
	return nil
}
