package model

// AppState is the global, per-session UI state.
type AppState struct {
	Organisation         OrganisationSelection `json:"organisation"`
	Periods              []Period              `json:"periods"`
	IsAdmin              bool                  `json:"isAdmin"`
	SelectedDashboard    string                `json:"selectedDashboard,omitempty"`
	SelectedCategory     string                `json:"selectedCategory,omitempty"`
	ShowSider            bool                  `json:"showSider"`
	ShowFooter           bool                  `json:"showFooter"`
	IsFullScreen         bool                  `json:"isFullScreen"`
	IsNotDesktop         bool                  `json:"isNotDesktop"`
	SystemID             string                `json:"systemId"`
	SystemName           string                `json:"systemName"`
	Version              string                `json:"version"`
	DataElements         []string              `json:"dataElements"`
	DataElementGroups    []string              `json:"dataElementGroups"`
	DataElementGroupSets []string              `json:"dataElementGroupSets"`
	Pages                map[string]int        `json:"pages"`
}

type OrganisationSelection struct {
	Levels            []int    `json:"levels"`
	Groups            []string `json:"groups"`
	OrganisationUnits []string `json:"organisationUnits"`
	ExpandedKeys      []string `json:"expandedKeys"`
	CheckedKeys       []string `json:"checkedKeys"`
	MinSublevel       int      `json:"minSublevel"`
}

// MaxLevel returns the highest selected level, or 0 when none is selected.
func (o OrganisationSelection) MaxLevel() int {
	highest := 0
	for _, l := range o.Levels {
		if l > highest {
			highest = l
		}
	}
	return highest
}

// Period is either an absolute period code ("202401") or a relative keyword
// ("LAST_12_MONTHS").
type Period struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserContext is the opaque identity handed over by the host application.
type UserContext struct {
	IsAdmin    bool   `json:"is_admin"`
	SystemID   string `json:"system_id" validate:"required,max=100"`
	SystemName string `json:"system_name,omitempty" validate:"max=200"`
	Version    string `json:"version,omitempty" validate:"max=50"`
}
