package store

import (
	"testing"

	"dashbuilder/internal/builder/factory"
	"dashbuilder/internal/builder/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardWith(ids ...string) model.Dashboard {
	d := factory.NewDashboard("d1")
	for _, id := range ids {
		d = AddSection(d, factory.NewSection(id))
	}
	return d
}

func sectionIDs(d model.Dashboard) []string {
	ids := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		ids[i] = s.ID
	}
	return ids
}

func TestAddSection(t *testing.T) {
	t.Run("appends new sections", func(t *testing.T) {
		d := dashboardWith("a", "b")
		assert.Equal(t, []string{"a", "b"}, sectionIDs(d))
	})

	t.Run("replaces existing section in place", func(t *testing.T) {
		d := dashboardWith("a", "x", "b")
		updated := factory.NewSection("x")
		updated.Title = "updated"

		next := AddSection(d, updated)
		require.Equal(t, []string{"a", "x", "b"}, sectionIDs(next))
		assert.Equal(t, updated, next.Sections[1])

		count := 0
		for _, s := range next.Sections {
			if s.ID == "x" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("does not modify the previous value", func(t *testing.T) {
		d := dashboardWith("a")
		updated := factory.NewSection("a")
		updated.Title = "changed"

		_ = AddSection(d, updated)
		assert.Equal(t, "", d.Sections[0].Title)
	})

	t.Run("bottom section only sets bottomSection", func(t *testing.T) {
		d := dashboardWith("a", "b")
		bottom := factory.NewSection("bottom")
		bottom.IsBottomSection = true

		next := AddSection(d, bottom)
		assert.Equal(t, []string{"a", "b"}, sectionIDs(next))
		require.NotNil(t, next.BottomSection)
		assert.Equal(t, "bottom", next.BottomSection.ID)

		replacement := factory.NewSection("other")
		replacement.IsBottomSection = true
		next = AddSection(next, replacement)
		assert.Len(t, next.Sections, 2)
		assert.Equal(t, "other", next.BottomSection.ID)
	})

	t.Run("racing upserts for one id keep a single entry", func(t *testing.T) {
		first := factory.NewSection("s")
		first.Title = "first"
		second := factory.NewSection("s")
		second.Title = "second"

		ab := AddSection(AddSection(dashboardWith(), first), second)
		ba := AddSection(AddSection(dashboardWith(), second), first)
		assert.Len(t, ab.Sections, 1)
		assert.Len(t, ba.Sections, 1)
		assert.Equal(t, "second", ab.Sections[0].Title)
		assert.Equal(t, "first", ba.Sections[0].Title)
	})
}

func TestDeleteSection(t *testing.T) {
	d := dashboardWith("a", "b", "c")

	once := DeleteSection(d, model.IDReq{ID: "b"})
	twice := DeleteSection(once, model.IDReq{ID: "b"})
	assert.Equal(t, []string{"a", "c"}, sectionIDs(once))
	assert.Equal(t, once, twice)

	unknown := DeleteSection(d, model.IDReq{ID: "zzz"})
	assert.Equal(t, d, unknown)
	assert.Equal(t, []string{"a", "b", "c"}, sectionIDs(d))
}

func TestDeleteSectionClearsBottom(t *testing.T) {
	bottom := factory.NewSection("bottom")
	bottom.IsBottomSection = true
	d := AddSection(dashboardWith("a"), bottom)

	next := DeleteSection(d, model.IDReq{ID: "bottom"})
	assert.Nil(t, next.BottomSection)
	assert.Equal(t, []string{"a"}, sectionIDs(next))
}

func TestChangeDashboardAttribute(t *testing.T) {
	d := factory.NewDashboard("d1")

	d = ChangeDashboardAttribute(d, model.ChangeDashboardAttributeReq{Attribute: model.DashboardName, Value: "Malaria"})
	d = ChangeDashboardAttribute(d, model.ChangeDashboardAttributeReq{Attribute: model.DashboardRows, Value: 12})
	d = ChangeDashboardAttribute(d, model.ChangeDashboardAttributeReq{Attribute: model.DashboardPublished, Value: true})
	d = ChangeDashboardAttribute(d, model.ChangeDashboardAttributeReq{Attribute: model.DashboardDataSet, Value: "ds1"})

	assert.Equal(t, "Malaria", d.Name)
	assert.Equal(t, 12, d.Rows)
	assert.True(t, d.Published)
	assert.Equal(t, "ds1", d.DataSet)

	// wrong value type is ignored
	same := ChangeDashboardAttribute(d, model.ChangeDashboardAttributeReq{Attribute: model.DashboardRows, Value: "many"})
	assert.Equal(t, 12, same.Rows)
}

func TestSetCategorization(t *testing.T) {
	d := factory.NewDashboard("d1")
	next := SetCategorization(d, model.SetCategorizationReq{
		Category: "A",
		Options:  []model.Option{{Value: "a1", Label: "A1"}},
	})
	assert.Empty(t, d.Categorization)
	assert.Equal(t, []model.Option{{Value: "a1", Label: "A1"}}, next.Categorization["A"])
}

func TestChangeLayouts(t *testing.T) {
	d := dashboardWith("a", "b")
	next := ChangeLayouts(d, model.ChangeLayoutsReq{
		Breakpoint: model.BreakpointMD,
		Layouts: []model.Layout{
			{I: "b", X: 3, Y: 1, W: 6, H: 4},
			{I: "missing", X: 9},
		},
	})

	assert.Equal(t, model.Layout{I: "b", X: 3, Y: 1, W: 6, H: 4}, next.Sections[1].Layouts[model.BreakpointMD])
	assert.Equal(t, d.Sections[0].Layouts, next.Sections[0].Layouts)
	assert.Equal(t, 0, d.Sections[1].Layouts[model.BreakpointMD].X)
	assert.Len(t, next.Sections, 2)
}

func TestDashboardImages(t *testing.T) {
	d := factory.NewDashboard("d1")
	d = AddDashboardImage(d, model.AddImageReq{ID: "i1", Src: "one.png", Alignment: model.AlignTopLeft})
	d = AddDashboardImage(d, model.AddImageReq{ID: "i2", Src: "two.png", Alignment: model.AlignTopLeft})
	require.Len(t, d.Images, 1)
	assert.Equal(t, model.Image{ID: "i1", Src: "two.png", Alignment: model.AlignTopLeft}, d.Images[0])

	d = DeleteDashboardImage(d, model.DeleteImageReq{Alignment: model.AlignTopLeft})
	assert.Empty(t, d.Images)
}
