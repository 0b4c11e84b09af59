package store

import (
	"maps"

	"dashbuilder/internal/builder/model"
)

func SetDashboard(_ model.Dashboard, d model.Dashboard) model.Dashboard {
	return d
}

// AddSection upserts s. A bottom section replaces d.BottomSection wholesale
// and never touches d.Sections; any other section replaces the one sharing
// its id at the same position, or is appended.
func AddSection(d model.Dashboard, s model.Section) model.Dashboard {
	if s.IsBottomSection {
		bottom := s
		d.BottomSection = &bottom
		return d
	}
	sections := make([]model.Section, len(d.Sections), len(d.Sections)+1)
	copy(sections, d.Sections)
	if idx := d.SectionIndex(s.ID); idx >= 0 {
		sections[idx] = s
	} else {
		sections = append(sections, s)
	}
	d.Sections = sections
	return d
}

// DeleteSection removes the section with id from d.Sections, or clears the
// bottom section when that is the one named.
func DeleteSection(d model.Dashboard, req model.IDReq) model.Dashboard {
	if d.BottomSection != nil && d.BottomSection.ID == req.ID {
		d.BottomSection = nil
	}
	idx := d.SectionIndex(req.ID)
	if idx < 0 {
		return d
	}
	sections := make([]model.Section, 0, len(d.Sections)-1)
	sections = append(sections, d.Sections[:idx]...)
	d.Sections = append(sections, d.Sections[idx+1:]...)
	return d
}

// ChangeDashboardAttribute sets one scalar field. Values of the wrong type
// are ignored; callers validate the request first.
func ChangeDashboardAttribute(d model.Dashboard, req model.ChangeDashboardAttributeReq) model.Dashboard {
	switch req.Attribute {
	case model.DashboardName:
		setString(&d.Name, req.Value)
	case model.DashboardDescription:
		setString(&d.Description, req.Value)
	case model.DashboardCategory:
		setString(&d.Category, req.Value)
	case model.DashboardPublished:
		setBool(&d.Published, req.Value)
	case model.DashboardRows:
		setInt(&d.Rows, req.Value)
	case model.DashboardColumns:
		setInt(&d.Columns, req.Value)
	case model.DashboardRefresh:
		setString(&d.Refresh, req.Value)
	case model.DashboardDataSet:
		setString(&d.DataSet, req.Value)
	case model.DashboardBg:
		setString(&d.Bg, req.Value)
	case model.DashboardTag:
		setString(&d.Tag, req.Value)
	case model.DashboardType:
		setString(&d.Type, req.Value)
	case model.DashboardTargetCategoryCombo:
		setString(&d.TargetCategoryCombo, req.Value)
	}
	return d
}

func SetCategorization(d model.Dashboard, req model.SetCategorizationReq) model.Dashboard {
	categorization := make(map[string][]model.Option, len(d.Categorization)+1)
	maps.Copy(categorization, d.Categorization)
	categorization[req.Category] = append([]model.Option{}, req.Options...)
	d.Categorization = categorization
	return d
}

func SetAvailableCategories(d model.Dashboard, req model.SetAvailableCategoriesReq) model.Dashboard {
	d.AvailableCategories = Replace(d.AvailableCategories, req.Categories)
	return d
}

func SetAvailableCategoryOptionCombos(d model.Dashboard, req model.SetCategoryOptionCombosReq) model.Dashboard {
	d.AvailableCategoryOptionCombos = Replace(d.AvailableCategoryOptionCombos, req.Combos)
	return d
}

func SetTargetCategoryOptionCombos(d model.Dashboard, req model.SetCategoryOptionCombosReq) model.Dashboard {
	d.TargetCategoryOptionCombos = Replace(d.TargetCategoryOptionCombos, req.Combos)
	return d
}

func AddDashboardImage(d model.Dashboard, req model.AddImageReq) model.Dashboard {
	d.Images = upsertImage(d.Images, req)
	return d
}

func DeleteDashboardImage(d model.Dashboard, req model.DeleteImageReq) model.Dashboard {
	d.Images = deleteImage(d.Images, req.Alignment)
	return d
}

// ChangeLayouts stores the grid position of every section named by a
// layout's I for the given breakpoint. Layouts naming unknown sections are
// skipped.
func ChangeLayouts(d model.Dashboard, req model.ChangeLayoutsReq) model.Dashboard {
	byID := make(map[string]model.Layout, len(req.Layouts))
	for _, l := range req.Layouts {
		byID[l.I] = l
	}
	sections := make([]model.Section, len(d.Sections))
	for i, s := range d.Sections {
		if l, ok := byID[s.ID]; ok {
			s = withLayout(s, req.Breakpoint, l)
		}
		sections[i] = s
	}
	d.Sections = sections
	if d.BottomSection != nil {
		if l, ok := byID[d.BottomSection.ID]; ok {
			bottom := withLayout(*d.BottomSection, req.Breakpoint, l)
			d.BottomSection = &bottom
		}
	}
	return d
}

func withLayout(s model.Section, breakpoint string, l model.Layout) model.Section {
	layouts := make(map[string]model.Layout, len(s.Layouts)+1)
	maps.Copy(layouts, s.Layouts)
	l.I = s.ID
	layouts[breakpoint] = l
	s.Layouts = layouts
	return s
}

func setString(dst *string, v any) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

func setInt(dst *int, v any) {
	if n, ok := v.(int); ok {
		*dst = n
	}
}

func setBool(dst *bool, v any) {
	if b, ok := v.(bool); ok {
		*dst = b
	}
}
