package derive

import (
	"slices"
	"strings"

	"dashbuilder/internal/builder/model"
)

type comboIDs struct {
	id      string
	options []string
}

func projectCombos(combos []model.CategoryOptionCombo) []comboIDs {
	out := make([]comboIDs, len(combos))
	for i, c := range combos {
		ids := make([]string, len(c.CategoryOptions))
		for j, o := range c.CategoryOptions {
			ids[j] = o.ID
		}
		slices.Sort(ids)
		out[i] = comboIDs{id: c.ID, options: ids}
	}
	return out
}

// matchPair returns the id of the combo whose option set equals {a, b}.
func matchPair(combos []comboIDs, a, b string) (string, bool) {
	pair := []string{a, b}
	slices.Sort(pair)
	for _, c := range combos {
		if slices.Equal(c.options, pair) {
			return c.id, true
		}
	}
	return "", false
}

func pairAll(combos []comboIDs, first, second []string) []string {
	out := []string{}
	for _, a := range first {
		for _, b := range second {
			if id, ok := matchPair(combos, a, b); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

func selectedValues(d model.Dashboard, category string) []string {
	options := d.Categorization[category]
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}

// ComputeCategoryOptionCombo pairs the selected options of a dashboard's two
// categories into combo ids.
//
// Current holds the combos for every (first, second) selection in row-major
// order. Prev pairs the option preceding the last first-category selection,
// in that category's full option list, with every second-category
// selection. Pairs without a matching combo are dropped. Dashboards that do
// not have exactly two categories yield an empty result.
func ComputeCategoryOptionCombo(d model.Dashboard) model.CategoryOptionComboPair {
	result := model.CategoryOptionComboPair{Prev: []string{}, Current: []string{}}
	if len(d.AvailableCategories) != 2 {
		return result
	}
	combos := projectCombos(d.AvailableCategoryOptionCombos)
	first := d.AvailableCategories[0]
	category1 := selectedValues(d, first.ID)
	category2 := selectedValues(d, d.AvailableCategories[1].ID)

	result.Current = pairAll(combos, category1, category2)

	if len(category1) == 0 {
		return result
	}
	last := category1[len(category1)-1]
	idx := slices.IndexFunc(first.CategoryOptions, func(o model.NamedItem) bool { return o.ID == last })
	if idx > 0 {
		previous := first.CategoryOptions[idx-1].ID
		result.Prev = pairAll(combos, []string{previous}, category2)
	}
	return result
}

// ComputeTargetCombos maps each selected value of the first category to the
// target combo whose option ids, concatenated in order, spell that value.
// Values without a target are dropped.
func ComputeTargetCombos(d model.Dashboard) []string {
	out := []string{}
	if len(d.AvailableCategories) == 0 || len(d.TargetCategoryOptionCombos) == 0 {
		return out
	}
	keys := make([]string, len(d.TargetCategoryOptionCombos))
	for i, c := range d.TargetCategoryOptionCombos {
		var b strings.Builder
		for _, o := range c.CategoryOptions {
			b.WriteString(o.ID)
		}
		keys[i] = b.String()
	}
	for _, value := range selectedValues(d, d.AvailableCategories[0].ID) {
		if idx := slices.Index(keys, value); idx >= 0 {
			out = append(out, d.TargetCategoryOptionCombos[idx].ID)
		}
	}
	return out
}
