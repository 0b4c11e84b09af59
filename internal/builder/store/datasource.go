package store

import "dashbuilder/internal/builder/model"

func SetDataSource(_ model.DataSource, d model.DataSource) model.DataSource {
	return d
}

func ChangeDataSourceAttribute(d model.DataSource, req model.ChangeDataSourceAttributeReq) model.DataSource {
	switch req.Attribute {
	case model.DataSourceName:
		setString(&d.Name, req.Value)
	case model.DataSourceDescription:
		setString(&d.Description, req.Value)
	case model.DataSourceType:
		setString(&d.Type, req.Value)
	case model.DataSourceIsCurrentDHIS2:
		setBool(&d.IsCurrentDHIS2, req.Value)
	}
	return d
}

func ChangeDataSourceAuth(d model.DataSource, req model.ChangeDataSourceAuthReq) model.DataSource {
	switch req.Attribute {
	case "url":
		d.Authentication.URL = req.Value
	case "username":
		d.Authentication.Username = req.Value
	case "password":
		d.Authentication.Password = req.Value
	}
	return d
}

func SetCategory(_ model.Category, c model.Category) model.Category {
	return c
}

func ChangeCategoryAttribute(c model.Category, req model.ChangeCategoryAttributeReq) model.Category {
	switch req.Attribute {
	case model.CategoryName:
		setString(&c.Name, req.Value)
	case model.CategoryDescription:
		setString(&c.Description, req.Value)
	}
	return c
}
