package derive

import (
	"slices"

	"dashbuilder/internal/builder/config"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/period"
)

// ResolvePeriods expands relative keywords and passes every other id
// through verbatim. Duplicates are dropped, keeping first occurrence.
func ResolvePeriods(periods []model.Period, r period.Resolver) []string {
	seen := make(map[string]bool, len(periods))
	out := make([]string, 0, len(periods))
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, p := range periods {
		if r.IsRelative(p.ID) {
			for _, id := range r.Expand(p.ID) {
				add(id)
			}
			continue
		}
		add(p.ID)
	}
	return out
}

// FilterInput is everything the global filter mapping is computed from.
type FilterInput struct {
	App     model.AppState
	DataSet string
	// TargetCategoryCombo is the dashboard's configured target combo, if any.
	TargetCategoryCombo string
	Combos              model.CategoryOptionComboPair
	Targets             []string
}

// ComputeGlobalFilters assembles the filter mapping handed to data fetches.
//
// Periods, level, organisation units and sublevel are always present. Groups
// and the combo entries follow when set. A configured target combo with
// matches ends the mapping there; otherwise the data element selections are
// added.
func ComputeGlobalFilters(in FilterInput, r period.Resolver, keys config.DimensionKeys) model.Filters {
	org := in.App.Organisation
	filters := model.Filters{
		keys.Periods:           ResolvePeriods(in.App.Periods, r),
		keys.Level:             org.MaxLevel(),
		keys.OrganisationUnits: slices.Clone(org.OrganisationUnits),
		keys.Sublevel:          org.MinSublevel,
	}
	if len(org.Groups) > 0 {
		filters[keys.Groups] = slices.Clone(org.Groups)
	}
	if in.DataSet != "" && len(in.Combos.Current) > 0 {
		filters[keys.CategoryOptionCombos] = slices.Clone(in.Combos.Current)
	}
	if in.DataSet != "" && len(in.Combos.Prev) > 0 {
		filters[keys.PreviousCategoryOptionCombos] = slices.Clone(in.Combos.Prev)
	}
	if in.TargetCategoryCombo != "" && len(in.Targets) > 0 {
		filters[keys.TargetCategoryOptionCombos] = slices.Clone(in.Targets)
		return filters
	}
	if len(in.App.DataElements) > 0 {
		filters[keys.DataElements] = slices.Clone(in.App.DataElements)
	}
	if len(in.App.DataElementGroups) > 0 {
		filters[keys.DataElementGroups] = slices.Clone(in.App.DataElementGroups)
	}
	if len(in.App.DataElementGroupSets) > 0 {
		filters[keys.DataElementGroupSets] = slices.Clone(in.App.DataElementGroupSets)
	}
	return filters
}
