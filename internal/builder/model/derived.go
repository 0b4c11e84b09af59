package model

// CategoryOptionComboPair holds the combo ids for the current selection and
// for the same second-dimension values paired with the preceding option.
type CategoryOptionComboPair struct {
	Prev    []string `json:"prev"`
	Current []string `json:"current"`
}

// Filters maps a dimension key to its selected value(s).
type Filters map[string]any
