package model

// Dashboard is a categorized grid of sections bound to an optional dataset.
type Dashboard struct {
	ID                            string                `json:"id" bson:"_id"`
	Name                          string                `json:"name" bson:"name"`
	Description                   string                `json:"description,omitempty" bson:"description,omitempty"`
	Category                      string                `json:"category" bson:"category"`
	Sections                      []Section             `json:"sections" bson:"sections"`
	BottomSection                 *Section              `json:"bottomSection,omitempty" bson:"bottomSection,omitempty"`
	Published                     bool                  `json:"published" bson:"published"`
	Rows                          int                   `json:"rows" bson:"rows"`
	Columns                       int                   `json:"columns" bson:"columns"`
	Refresh                       string                `json:"refresh" bson:"refresh"`
	DataSet                       string                `json:"dataSet,omitempty" bson:"dataSet,omitempty"`
	Categorization                map[string][]Option   `json:"categorization" bson:"categorization"`
	AvailableCategories           []CategoryDimension   `json:"availableCategories" bson:"availableCategories"`
	AvailableCategoryOptionCombos []CategoryOptionCombo `json:"availableCategoryOptionCombos" bson:"availableCategoryOptionCombos"`
	TargetCategoryOptionCombos    []CategoryOptionCombo `json:"targetCategoryOptionCombos" bson:"targetCategoryOptionCombos"`
	TargetCategoryCombo           string                `json:"targetCategoryCombo,omitempty" bson:"targetCategoryCombo,omitempty"`
	Bg                            string                `json:"bg,omitempty" bson:"bg,omitempty"`
	Tag                           string                `json:"tag,omitempty" bson:"tag,omitempty"`
	Images                        []Image               `json:"images,omitempty" bson:"images,omitempty"`
	Type                          string                `json:"type" bson:"type"`
}

func (d Dashboard) DocumentID() string { return d.ID }
func (d Dashboard) DocumentName() string { return d.Name }

// SectionIndex returns the position of the section with id in Sections, or -1.
func (d Dashboard) SectionIndex(id string) int {
	for i, s := range d.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// CategoryDimension describes one classification axis of the bound dataset
// together with its full ordered option list.
type CategoryDimension struct {
	ID              string      `json:"id" bson:"id"`
	Name            string      `json:"name,omitempty" bson:"name,omitempty"`
	CategoryOptions []NamedItem `json:"categoryOptions" bson:"categoryOptions"`
}

// CategoryOptionCombo is a combination of option ids across categories.
type CategoryOptionCombo struct {
	ID              string   `json:"id" bson:"id"`
	Name            string   `json:"name,omitempty" bson:"name,omitempty"`
	CategoryOptions []IDOnly `json:"categoryOptions" bson:"categoryOptions"`
}

type IDOnly struct {
	ID string `json:"id" bson:"id"`
}

type NamedItem struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
}

// Option is a {value, label} pair as used by select inputs and by the
// per-category selections in Dashboard.Categorization.
type Option struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// Image is a picture pinned to one of the six alignment slots of a container.
type Image struct {
	ID        string `json:"id" bson:"id"`
	Src       string `json:"src" bson:"src"`
	Alignment string `json:"alignment" bson:"alignment"`
}

// ImageIndex returns the position of the image occupying alignment, or -1.
func ImageIndex(images []Image, alignment string) int {
	for i, img := range images {
		if img.Alignment == alignment {
			return i
		}
	}
	return -1
}
