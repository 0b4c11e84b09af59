package store

import (
	"maps"

	"dashbuilder/internal/builder/model"
)

func SetSection(_ model.Section, s model.Section) model.Section {
	return s
}

func ChangeSectionAttribute(s model.Section, req model.ChangeSectionAttributeReq) model.Section {
	switch req.Attribute {
	case model.SectionTitle:
		setString(&s.Title, req.Value)
	case model.SectionRowSpan:
		setInt(&s.RowSpan, req.Value)
	case model.SectionColSpan:
		setInt(&s.ColSpan, req.Value)
	case model.SectionDisplay:
		setString(&s.Display, req.Value)
	case model.SectionDirection:
		setString(&s.Direction, req.Value)
	case model.SectionJustifyContent:
		setString(&s.JustifyContent, req.Value)
	case model.SectionCarousel:
		setBool(&s.Carousel, req.Value)
	case model.SectionIsBottomSection:
		setBool(&s.IsBottomSection, req.Value)
	case model.SectionBg:
		setString(&s.Bg, req.Value)
	case model.SectionHeight:
		setInt(&s.Height, req.Value)
	}
	return s
}

func ChangeSectionLayout(s model.Section, req model.ChangeSectionLayoutReq) model.Section {
	return withLayout(s, req.Breakpoint, req.Layout)
}

// AddVisualization upserts v by id.
func AddVisualization(s model.Section, req model.VisualizationReq) model.Section {
	s.Visualizations = Upsert(s.Visualizations, req.Visualization)
	return s
}

// DuplicateVisualization appends the caller-supplied copy as is.
func DuplicateVisualization(s model.Section, req model.VisualizationReq) model.Section {
	visualizations := make([]model.Visualization, len(s.Visualizations), len(s.Visualizations)+1)
	copy(visualizations, s.Visualizations)
	s.Visualizations = append(visualizations, req.Visualization)
	return s
}

func DeleteVisualization(s model.Section, req model.IDReq) model.Section {
	s.Visualizations = Remove(s.Visualizations, req.ID)
	return s
}

func ChangeVisualizationAttribute(s model.Section, req model.ChangeVisualizationAttributeReq) model.Section {
	return updateVisualization(s, req.Visualization, func(v model.Visualization) model.Visualization {
		switch req.Attribute {
		case model.VisualizationIndicator:
			setString(&v.Indicator, req.Value)
		case model.VisualizationType:
			setString(&v.Type, req.Value)
		case model.VisualizationName:
			setString(&v.Name, req.Value)
		case model.VisualizationGroup:
			setString(&v.Group, req.Value)
		case model.VisualizationBg:
			setString(&v.Bg, req.Value)
		case model.VisualizationHeight:
			setInt(&v.Height, req.Value)
		}
		return v
	})
}

// ChangeVisualizationProperties sets properties[key]; a nil value removes it.
func ChangeVisualizationProperties(s model.Section, req model.ChangeVisualizationEntryReq) model.Section {
	return updateVisualization(s, req.Visualization, func(v model.Visualization) model.Visualization {
		v.Properties = withEntry(v.Properties, req.Key, req.Value)
		return v
	})
}

// ChangeVisualizationOverride sets overrides[key]; a nil value removes it.
func ChangeVisualizationOverride(s model.Section, req model.ChangeVisualizationEntryReq) model.Section {
	return updateVisualization(s, req.Visualization, func(v model.Visualization) model.Visualization {
		v.Overrides = withEntry(v.Overrides, req.Key, req.Value)
		return v
	})
}

func AddImage(s model.Section, req model.AddImageReq) model.Section {
	s.Images = upsertImage(s.Images, req)
	return s
}

func DeleteImage(s model.Section, req model.DeleteImageReq) model.Section {
	s.Images = deleteImage(s.Images, req.Alignment)
	return s
}

func updateVisualization(s model.Section, id string, fn func(model.Visualization) model.Visualization) model.Section {
	idx := s.VisualizationIndex(id)
	if idx < 0 {
		return s
	}
	visualizations := make([]model.Visualization, len(s.Visualizations))
	copy(visualizations, s.Visualizations)
	visualizations[idx] = fn(visualizations[idx])
	s.Visualizations = visualizations
	return s
}

func withEntry(m map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(m)+1)
	maps.Copy(out, m)
	if value == nil {
		delete(out, key)
	} else {
		out[key] = value
	}
	return out
}
