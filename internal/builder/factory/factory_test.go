package factory

import (
	"testing"

	"dashbuilder/internal/builder/idgen"
	"dashbuilder/internal/builder/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewDashboardDefaults(t *testing.T) {
	restore := idgen.Use(idgen.Sequence("id"))
	defer restore()

	d := NewDashboard()
	assert.Equal(t, "id1", d.ID)
	assert.Equal(t, "New Dashboard", d.Name)
	assert.Equal(t, model.DefaultCategoryID, d.Category)
	assert.Equal(t, 24, d.Rows)
	assert.Equal(t, 24, d.Columns)
	assert.Equal(t, "off", d.Refresh)
	assert.Equal(t, "dynamic", d.Type)
	assert.False(t, d.Published)
	assert.NotNil(t, d.Sections)
	assert.Empty(t, d.Sections)
	assert.NotNil(t, d.Categorization)
	assert.Nil(t, d.BottomSection)

	assert.Equal(t, "x", NewDashboard("x").ID)
	assert.Equal(t, "id2", NewDashboard("").ID, "an empty id is replaced")
}

func TestNewSectionDefaults(t *testing.T) {
	s := NewSection("s1")
	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, 1, s.RowSpan)
	assert.Equal(t, 1, s.ColSpan)
	assert.Equal(t, model.DefaultDisplay, s.Display)
	assert.Empty(t, s.Visualizations)

	require.Len(t, s.Layouts, 4)
	for _, bp := range []string{"lg", "md", "sm", "xs"} {
		l, ok := s.Layouts[bp]
		require.True(t, ok, bp)
		assert.Equal(t, "s1", l.I)
		assert.Equal(t, 0, l.X)
		assert.Equal(t, 0, l.Y)
	}
}

func TestNewEntityDefaults(t *testing.T) {
	v := NewVisualization("v1")
	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, model.DefaultChartType, v.Type)
	assert.NotNil(t, v.Properties)
	assert.NotNil(t, v.Overrides)

	ds := NewDataSource("ds1")
	assert.Equal(t, model.DataSourceTypeDHIS2, ds.Type)

	i := NewIndicator("i1")
	assert.Equal(t, "i1", i.ID)
	assert.Equal(t, model.DefaultFactor, i.Factor)
	require.NotNil(t, i.Numerator)
	require.NotNil(t, i.Denominator)
	assert.NotEqual(t, i.Numerator.ID, i.Denominator.ID)
	assert.Equal(t, model.ExpressionTypeAnalytics, i.Numerator.Type)

	app := NewAppState(model.UserContext{SystemID: "sys_1", IsAdmin: true})
	assert.Equal(t, "sys_1", app.SystemID)
	assert.True(t, app.IsAdmin)
	assert.True(t, app.ShowSider)
	assert.NotNil(t, app.Organisation.Levels)
}

func sampleDashboard() model.Dashboard {
	v := NewVisualization("v1")
	v.Properties["colors"] = []any{"red", "green"}
	section := NewSection("s1")
	section.Visualizations = append(section.Visualizations, v)
	section.Images = []model.Image{{ID: "si1", Src: "a.png", Alignment: model.AlignTopLeft}}
	bottom := NewSection("bottom")

	d := NewDashboard("d1")
	d.Name = "ANC"
	d.Published = true
	d.Sections = []model.Section{section}
	d.BottomSection = &bottom
	d.Categorization = map[string][]model.Option{"age": {{Value: "a1", Label: "<5"}}}
	d.Images = []model.Image{{ID: "di1", Src: "logo.png", Alignment: model.AlignTopRight}}
	return d
}

func TestCopyDashboard(t *testing.T) {
	restore := idgen.Use(idgen.Sequence("new"))
	defer restore()

	original := sampleDashboard()
	c := CopyDashboard(original)

	t.Run("fresh ids everywhere", func(t *testing.T) {
		assert.NotEqual(t, original.ID, c.ID)
		require.Len(t, c.Sections, 1)
		assert.NotEqual(t, "s1", c.Sections[0].ID)
		assert.NotEqual(t, "v1", c.Sections[0].Visualizations[0].ID)
		assert.NotEqual(t, "si1", c.Sections[0].Images[0].ID)
		assert.NotEqual(t, "di1", c.Images[0].ID)
		for _, l := range c.Sections[0].Layouts {
			assert.Equal(t, c.Sections[0].ID, l.I)
		}
	})

	t.Run("bottom section is copied", func(t *testing.T) {
		require.NotNil(t, c.BottomSection)
		assert.NotSame(t, original.BottomSection, c.BottomSection)
		assert.NotEqual(t, "bottom", c.BottomSection.ID)
	})

	t.Run("name and publish state", func(t *testing.T) {
		assert.Equal(t, "ANC (copy)", c.Name)
		assert.False(t, c.Published)
	})

	t.Run("mutating the copy leaves the original alone", func(t *testing.T) {
		c.Categorization["age"][0].Label = "changed"
		c.Categorization["sex"] = nil
		c.Sections[0].Visualizations[0].Properties["colors"].([]any)[0] = "blue"
		c.Sections[0].Layouts["lg"] = model.Layout{I: "x", W: 99}
		c.Images[0].Src = "other.png"

		fresh := sampleDashboard()
		assert.Equal(t, fresh.Categorization, original.Categorization)
		assert.Equal(t, fresh.Sections[0].Visualizations[0].Properties, original.Sections[0].Visualizations[0].Properties)
		assert.Equal(t, fresh.Sections[0].Layouts, original.Sections[0].Layouts)
		assert.Equal(t, "logo.png", original.Images[0].Src)
	})
}

func TestCopyVisualizationClonesLoadedDocuments(t *testing.T) {
	v := NewVisualization("v1")
	v.Properties["colors"] = primitive.A{"red", primitive.M{"shade": "dark"}}
	v.Overrides["axis"] = primitive.D{{Key: "min", Value: primitive.A{0, 1}}}

	c := CopyVisualization(v, "v2")
	assert.Equal(t, "v2", c.ID)

	colors := c.Properties["colors"].(primitive.A)
	colors[0] = "blue"
	colors[1].(primitive.M)["shade"] = "light"
	c.Overrides["axis"].(primitive.D)[0].Value.(primitive.A)[0] = 5

	assert.Equal(t, "red", v.Properties["colors"].(primitive.A)[0])
	assert.Equal(t, "dark", v.Properties["colors"].(primitive.A)[1].(primitive.M)["shade"])
	assert.Equal(t, 0, v.Overrides["axis"].(primitive.D)[0].Value.(primitive.A)[0])
}

func TestCloneValueNilMap(t *testing.T) {
	var m map[string]any
	assert.Equal(t, map[string]any{}, CloneValue(m))
}
