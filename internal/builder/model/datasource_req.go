package model

import "strings"

type ChangeDataSourceAttributeReq struct {
	Attribute DataSourceAttribute `json:"attribute" validate:"required"`
	Value     any                 `json:"value"`
}

func (r *ChangeDataSourceAttributeReq) Validate() error {
	r.Attribute = DataSourceAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(DataSourceAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

type ChangeDataSourceAuthReq struct {
	Attribute string `json:"attribute" validate:"required,oneof=url username password"`
	Value     string `json:"value"`
}

func (r *ChangeDataSourceAuthReq) Validate() error {
	r.Attribute = strings.TrimSpace(r.Attribute)
	return validateStruct(r)
}

type ChangeCategoryAttributeReq struct {
	Attribute CategoryAttribute `json:"attribute" validate:"required"`
	Value     any               `json:"value"`
}

func (r *ChangeCategoryAttributeReq) Validate() error {
	r.Attribute = CategoryAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(CategoryAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}
