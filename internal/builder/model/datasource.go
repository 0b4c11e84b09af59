package model

type DataSource struct {
	ID             string         `json:"id" bson:"_id"`
	Name           string         `json:"name,omitempty" bson:"name,omitempty"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	Type           string         `json:"type" bson:"type"`
	Authentication Authentication `json:"authentication" bson:"authentication"`
	IsCurrentDHIS2 bool           `json:"isCurrentDHIS2" bson:"isCurrentDHIS2"`
}

func (d DataSource) DocumentID() string { return d.ID }
func (d DataSource) DocumentName() string { return d.Name }

type Authentication struct {
	URL      string `json:"url" bson:"url"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
}

// ClientDescriptor carries what a caller needs to build an authenticated
// client against a data source.
type ClientDescriptor struct {
	BaseURL  string `json:"baseURL"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Category struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

func (c Category) DocumentID() string { return c.ID }
func (c Category) DocumentName() string { return c.Name }
