package model

// Section is a grid cell of a dashboard holding one or more visualizations.
type Section struct {
	ID              string            `json:"id" bson:"id"`
	Title           string            `json:"title" bson:"title"`
	RowSpan         int               `json:"rowSpan" bson:"rowSpan"`
	ColSpan         int               `json:"colSpan" bson:"colSpan"`
	Visualizations  []Visualization   `json:"visualizations" bson:"visualizations"`
	Layouts         map[string]Layout `json:"layouts" bson:"layouts"`
	Display         string            `json:"display" bson:"display"`
	Direction       string            `json:"direction,omitempty" bson:"direction,omitempty"`
	JustifyContent  string            `json:"justifyContent,omitempty" bson:"justifyContent,omitempty"`
	Carousel        bool              `json:"carousel,omitempty" bson:"carousel,omitempty"`
	IsBottomSection bool              `json:"isBottomSection" bson:"isBottomSection"`
	Bg              string            `json:"bg,omitempty" bson:"bg,omitempty"`
	Height          int               `json:"height,omitempty" bson:"height,omitempty"`
	Images          []Image           `json:"images,omitempty" bson:"images,omitempty"`
}

func (s Section) DocumentID() string { return s.ID }

// VisualizationIndex returns the position of the visualization with id, or -1.
func (s Section) VisualizationIndex(id string) int {
	for i, v := range s.Visualizations {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Layout is a grid position for a single breakpoint.
type Layout struct {
	I        string `json:"i" bson:"i"`
	X        int    `json:"x" bson:"x"`
	Y        int    `json:"y" bson:"y"`
	W        int    `json:"w" bson:"w"`
	H        int    `json:"h" bson:"h"`
	AnchorID string `json:"anchorId" bson:"anchorId"`
	Static   bool   `json:"static" bson:"static"`
}

// Visualization binds an indicator to a chart.
type Visualization struct {
	ID         string         `json:"id" bson:"id"`
	Indicator  string         `json:"indicator" bson:"indicator"`
	Type       string         `json:"type" bson:"type"`
	Name       string         `json:"name" bson:"name"`
	Properties map[string]any `json:"properties" bson:"properties"`
	Overrides  map[string]any `json:"overrides" bson:"overrides"`
	Group      string         `json:"group,omitempty" bson:"group,omitempty"`
	Bg         string         `json:"bg,omitempty" bson:"bg,omitempty"`
	Height     int            `json:"height,omitempty" bson:"height,omitempty"`
}

func (v Visualization) DocumentID() string { return v.ID }
func (v Visualization) DocumentName() string { return v.Name }
