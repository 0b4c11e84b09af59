package store

import (
	"testing"

	"dashbuilder/internal/builder/factory"
	"dashbuilder/internal/builder/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddImageIsIdempotentPerAlignment(t *testing.T) {
	s := factory.NewSection("s1")
	s = AddImage(s, model.AddImageReq{ID: "img", Src: "first.png", Alignment: model.AlignBottomRight})
	s = AddImage(s, model.AddImageReq{ID: "img2", Src: "second.png", Alignment: model.AlignBottomRight})
	s = AddImage(s, model.AddImageReq{ID: "img3", Src: "left.png", Alignment: model.AlignTopLeft})

	require.Len(t, s.Images, 2)
	perAlignment := map[string]int{}
	for _, img := range s.Images {
		perAlignment[img.Alignment]++
	}
	assert.Equal(t, 1, perAlignment[model.AlignBottomRight])
	assert.Equal(t, "second.png", s.Images[0].Src)
	assert.Equal(t, "img", s.Images[0].ID)

	unchanged := DeleteImage(s, model.DeleteImageReq{Alignment: model.AlignTopCenter})
	assert.Equal(t, s, unchanged)
}

func TestVisualizationOperations(t *testing.T) {
	s := factory.NewSection("s1")
	v := factory.NewVisualization("v1")
	s = AddVisualization(s, model.VisualizationReq{Visualization: v})

	s = ChangeVisualizationAttribute(s, model.ChangeVisualizationAttributeReq{
		Visualization: "v1", Attribute: model.VisualizationIndicator, Value: "ind1",
	})
	s = ChangeVisualizationProperties(s, model.ChangeVisualizationEntryReq{
		Visualization: "v1", Key: "layout.title", Value: "Cases",
	})
	s = ChangeVisualizationOverride(s, model.ChangeVisualizationEntryReq{
		Visualization: "v1", Key: "color", Value: "#fff",
	})

	require.Len(t, s.Visualizations, 1)
	got := s.Visualizations[0]
	assert.Equal(t, "ind1", got.Indicator)
	assert.Equal(t, "Cases", got.Properties["layout.title"])
	assert.Equal(t, "#fff", got.Overrides["color"])
	assert.Empty(t, v.Properties, "original visualization must not change")

	s = ChangeVisualizationOverride(s, model.ChangeVisualizationEntryReq{Visualization: "v1", Key: "color"})
	assert.NotContains(t, s.Visualizations[0].Overrides, "color")

	unknown := ChangeVisualizationAttribute(s, model.ChangeVisualizationAttributeReq{
		Visualization: "nope", Attribute: model.VisualizationName, Value: "x",
	})
	assert.Equal(t, s, unknown)
}

func TestDuplicateVisualizationAppends(t *testing.T) {
	s := factory.NewSection("s1")
	v := factory.NewVisualization("v1")
	v.Properties["data.orientation"] = "h"
	s = AddVisualization(s, model.VisualizationReq{Visualization: v})

	copied := factory.CopyVisualization(v, "v2")
	s = DuplicateVisualization(s, model.VisualizationReq{Visualization: copied})

	require.Len(t, s.Visualizations, 2)
	assert.Equal(t, "v2", s.Visualizations[1].ID)
	assert.Equal(t, "h", s.Visualizations[1].Properties["data.orientation"])

	s = DeleteVisualization(s, model.IDReq{ID: "v1"})
	require.Len(t, s.Visualizations, 1)
	assert.Equal(t, "v2", s.Visualizations[0].ID)
}

func TestChangeSectionAttributeAndLayout(t *testing.T) {
	s := factory.NewSection("s1")
	s = ChangeSectionAttribute(s, model.ChangeSectionAttributeReq{Attribute: model.SectionTitle, Value: "Overview"})
	s = ChangeSectionAttribute(s, model.ChangeSectionAttributeReq{Attribute: model.SectionColSpan, Value: 4})
	s = ChangeSectionAttribute(s, model.ChangeSectionAttributeReq{Attribute: model.SectionCarousel, Value: true})
	assert.Equal(t, "Overview", s.Title)
	assert.Equal(t, 4, s.ColSpan)
	assert.True(t, s.Carousel)

	before := s
	s = ChangeSectionLayout(s, model.ChangeSectionLayoutReq{
		Breakpoint: model.BreakpointLG,
		Layout:     model.Layout{X: 1, Y: 2, W: 3, H: 4, Static: true},
	})
	assert.Equal(t, model.Layout{I: "s1", X: 1, Y: 2, W: 3, H: 4, Static: true}, s.Layouts[model.BreakpointLG])
	assert.Equal(t, 0, before.Layouts[model.BreakpointLG].X)
}

func TestAddImageIsDeterministic(t *testing.T) {
	s := factory.NewSection("s1")
	req := model.AddImageReq{ID: "img", Src: "logo.png", Alignment: model.AlignTopLeft}

	first := AddImage(s, req)
	second := AddImage(s, req)
	assert.Equal(t, first, second)
	assert.Equal(t, "img", first.Images[0].ID)
}
