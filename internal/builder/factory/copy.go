package factory

import (
	"maps"

	"dashbuilder/internal/builder/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CopyVisualization returns a deep copy of v under a fresh id.
func CopyVisualization(v model.Visualization, id ...string) model.Visualization {
	c := v
	c.ID = pickID(id)
	c.Properties = CloneValue(v.Properties).(map[string]any)
	c.Overrides = CloneValue(v.Overrides).(map[string]any)
	return c
}

// CopySection returns a deep copy of s under a fresh id; its visualizations
// get fresh ids as well.
func CopySection(s model.Section, id ...string) model.Section {
	c := s
	c.ID = pickID(id)
	c.Visualizations = make([]model.Visualization, len(s.Visualizations))
	for i, v := range s.Visualizations {
		c.Visualizations[i] = CopyVisualization(v)
	}
	c.Layouts = make(map[string]model.Layout, len(s.Layouts))
	for bp, l := range s.Layouts {
		l.I = c.ID
		c.Layouts[bp] = l
	}
	c.Images = copyImages(s.Images)
	return c
}

// CopyDashboard deep-copies d under a fresh id for the duplicate flow. The
// copy is unpublished and its name is suffixed with " (copy)".
func CopyDashboard(d model.Dashboard, id ...string) model.Dashboard {
	c := d
	c.ID = pickID(id)
	c.Name = d.Name + " (copy)"
	c.Published = false
	c.Sections = make([]model.Section, len(d.Sections))
	for i, s := range d.Sections {
		c.Sections[i] = CopySection(s)
	}
	if d.BottomSection != nil {
		bottom := CopySection(*d.BottomSection)
		c.BottomSection = &bottom
	}
	c.Categorization = make(map[string][]model.Option, len(d.Categorization))
	for k, opts := range d.Categorization {
		c.Categorization[k] = append([]model.Option(nil), opts...)
	}
	c.AvailableCategories = append([]model.CategoryDimension(nil), d.AvailableCategories...)
	c.AvailableCategoryOptionCombos = append([]model.CategoryOptionCombo(nil), d.AvailableCategoryOptionCombos...)
	c.TargetCategoryOptionCombos = append([]model.CategoryOptionCombo(nil), d.TargetCategoryOptionCombos...)
	c.Images = copyImages(d.Images)
	return c
}

func copyImages(images []model.Image) []model.Image {
	if images == nil {
		return nil
	}
	out := make([]model.Image, len(images))
	for i, img := range images {
		img.ID = pickID(nil)
		out[i] = img
	}
	return out
}

// CloneValue deep-copies the map/slice trees produced by JSON or BSON
// decoding, including the primitive.M/A/D values of loaded documents. Scalars are returned as is. A nil map yields an empty map.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = CloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CloneValue(val)
		}
		return out
	case primitive.M:
		out := make(primitive.M, len(t))
		for k, val := range t {
			out[k] = CloneValue(val)
		}
		return out
	case primitive.A:
		out := make(primitive.A, len(t))
		for i, val := range t {
			out[i] = CloneValue(val)
		}
		return out
	case primitive.D:
		out := make(primitive.D, len(t))
		for i, e := range t {
			out[i] = primitive.E{Key: e.Key, Value: CloneValue(e.Value)}
		}
		return out
	case map[string]string:
		return maps.Clone(t)
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
