package model

import "strings"

type ChangeIndicatorAttributeReq struct {
	Attribute IndicatorAttribute `json:"attribute" validate:"required"`
	Value     any                `json:"value"`
}

func (r *ChangeIndicatorAttributeReq) Validate() error {
	r.Attribute = IndicatorAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(IndicatorAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

// ChangeDimensionReq edits a numerator or denominator dimension. Remove
// drops the dimension by id; Replace drops every dimension sharing the
// incoming resource before inserting; otherwise the dimension is merged by id.
type ChangeDimensionReq struct {
	Dimension Dimension `json:"dimension"`
	Remove    bool      `json:"remove"`
	Replace   bool      `json:"replace"`
}

func (r *ChangeDimensionReq) Validate() error {
	r.Dimension.ID = strings.TrimSpace(r.Dimension.ID)
	r.Dimension.Resource = strings.TrimSpace(r.Dimension.Resource)
	if r.Dimension.ID == "" {
		return badRequest("dimension id is required")
	}
	if r.Remove && r.Replace {
		return badRequest("remove and replace are mutually exclusive")
	}
	return nil
}

type ChangeExpressionAttributeReq struct {
	Attribute ExpressionAttribute `json:"attribute" validate:"required"`
	Value     any                 `json:"value"`
}

func (r *ChangeExpressionAttributeReq) Validate() error {
	r.Attribute = ExpressionAttribute(strings.TrimSpace(string(r.Attribute)))
	if err := validateStruct(r); err != nil {
		return err
	}
	v, err := coerceAttribute(ExpressionAttributes, r.Attribute, r.Value)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

// ChangeExpressionValueReq sets (or with Remove, deletes) a named query
// parameter of a numerator or denominator.
type ChangeExpressionValueReq struct {
	Attribute string `json:"attribute" validate:"required,max=200"`
	Value     string `json:"value"`
	IsGlobal  bool   `json:"isGlobal"`
	Remove    bool   `json:"remove"`
}

func (r *ChangeExpressionValueReq) Validate() error {
	r.Attribute = strings.TrimSpace(r.Attribute)
	return validateStruct(r)
}
