package model

// Indicator is a numerator/denominator pair evaluated against a data source.
type Indicator struct {
	ID                   string      `json:"id" bson:"_id"`
	Name                 string      `json:"name" bson:"name"`
	Description          string      `json:"description,omitempty" bson:"description,omitempty"`
	DataSource           string      `json:"dataSource" bson:"dataSource"`
	Numerator            *Expression `json:"numerator,omitempty" bson:"numerator,omitempty"`
	Denominator          *Expression `json:"denominator,omitempty" bson:"denominator,omitempty"`
	Factor               string      `json:"factor" bson:"factor"`
	Query                string      `json:"query,omitempty" bson:"query,omitempty"`
	UseInBuildIndicators bool        `json:"useInBuildIndicators" bson:"useInBuildIndicators"`
	Custom               bool        `json:"custom" bson:"custom"`
}

func (i Indicator) DocumentID() string { return i.ID }
func (i Indicator) DocumentName() string { return i.Name }

// Expression is one half (numerator or denominator) of an indicator.
type Expression struct {
	ID             string                     `json:"id" bson:"id"`
	Type           string                     `json:"type" bson:"type"`
	Name           string                     `json:"name" bson:"name"`
	Description    string                     `json:"description,omitempty" bson:"description,omitempty"`
	Resource       string                     `json:"resource,omitempty" bson:"resource,omitempty"`
	DataDimensions map[string]Dimension       `json:"dataDimensions" bson:"dataDimensions"`
	Expressions    map[string]ExpressionValue `json:"expressions,omitempty" bson:"expressions,omitempty"`
}

// Dimension is a filterable axis attached to an expression.
type Dimension struct {
	ID        string `json:"id" bson:"id"`
	Resource  string `json:"resource" bson:"resource"`
	Type      string `json:"type" bson:"type"`
	Dimension string `json:"dimension" bson:"dimension"`
	Label     string `json:"label,omitempty" bson:"label,omitempty"`
	Prefix    string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty" bson:"suffix,omitempty"`
}

// ExpressionValue is a named query parameter, optionally bound to a global filter.
type ExpressionValue struct {
	Value    string `json:"value" bson:"value"`
	IsGlobal bool   `json:"isGlobal" bson:"isGlobal"`
}
