package model

import (
	"slices"
	"strings"
)

type ChangeSectionAttributeReq struct {
	Attribute SectionAttribute `json:"attribute" validate:"required"`
	Value     any              `json:"value"`
}

func (r *ChangeSectionAttributeReq) Validate() error {
	r.Attribute = SectionAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(SectionAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

type ChangeSectionLayoutReq struct {
	Breakpoint string `json:"breakpoint" validate:"required"`
	Layout     Layout `json:"layout"`
}

func (r *ChangeSectionLayoutReq) Validate() error {
	r.Breakpoint = strings.ToLower(strings.TrimSpace(r.Breakpoint))
	if err := validateStruct(r); err != nil {
		return err
	}
	if !slices.Contains(Breakpoints, r.Breakpoint) {
		return badRequest("invalid breakpoint: " + r.Breakpoint)
	}
	if r.Layout.W < 0 || r.Layout.H < 0 {
		return badRequest("layout width and height cannot be negative")
	}
	return nil
}

// VisualizationReq carries a whole visualization (add/duplicate).
type VisualizationReq struct {
	Visualization Visualization `json:"visualization"`
}

func (r *VisualizationReq) Validate() error {
	r.Visualization.ID = strings.TrimSpace(r.Visualization.ID)
	if r.Visualization.ID == "" {
		return badRequest("visualization id is required")
	}
	return nil
}

type ChangeVisualizationAttributeReq struct {
	Visualization string                 `json:"visualization" validate:"required,max=100"`
	Attribute     VisualizationAttribute `json:"attribute" validate:"required"`
	Value         any                    `json:"value"`
}

func (r *ChangeVisualizationAttributeReq) Validate() error {
	r.Visualization = strings.TrimSpace(r.Visualization)
	r.Attribute = VisualizationAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(VisualizationAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

// ChangeVisualizationEntryReq sets Key in a visualization's properties or
// overrides map. A nil Value removes the key.
type ChangeVisualizationEntryReq struct {
	Visualization string `json:"visualization" validate:"required,max=100"`
	Key           string `json:"key" validate:"required,max=200"`
	Value         any    `json:"value"`
}

func (r *ChangeVisualizationEntryReq) Validate() error {
	r.Visualization = strings.TrimSpace(r.Visualization)
	r.Key = strings.TrimSpace(r.Key)
	return validateStruct(r)
}
