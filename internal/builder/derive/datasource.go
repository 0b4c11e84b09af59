package derive

import "dashbuilder/internal/builder/model"

// FindDataSource returns the data source an indicator points at, or nil.
func FindDataSource(i model.Indicator, sources []model.DataSource) *model.DataSource {
	if i.DataSource == "" {
		return nil
	}
	for _, ds := range sources {
		if ds.ID == i.DataSource {
			found := ds
			return &found
		}
	}
	return nil
}

// ClientFor builds a client descriptor for ds. Data sources without an
// authentication url have none.
func ClientFor(ds *model.DataSource) *model.ClientDescriptor {
	if ds == nil || ds.Authentication.URL == "" {
		return nil
	}
	return &model.ClientDescriptor{
		BaseURL:  ds.Authentication.URL,
		Username: ds.Authentication.Username,
		Password: ds.Authentication.Password,
	}
}

type named interface {
	DocumentID() string
	DocumentName() string
}

// Options projects a collection into value/label pairs in source order.
func Options[T named](items []T) []model.Option {
	out := make([]model.Option, len(items))
	for i, item := range items {
		out[i] = model.Option{Value: item.DocumentID(), Label: item.DocumentName()}
	}
	return out
}
