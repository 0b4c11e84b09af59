package store

import (
	"maps"

	"dashbuilder/internal/builder/model"
)

func SetIndicator(_ model.Indicator, i model.Indicator) model.Indicator {
	return i
}

func ChangeIndicatorAttribute(i model.Indicator, req model.ChangeIndicatorAttributeReq) model.Indicator {
	switch req.Attribute {
	case model.IndicatorName:
		setString(&i.Name, req.Value)
	case model.IndicatorDescription:
		setString(&i.Description, req.Value)
	case model.IndicatorDataSource:
		setString(&i.DataSource, req.Value)
	case model.IndicatorFactor:
		setString(&i.Factor, req.Value)
	case model.IndicatorQuery:
		setString(&i.Query, req.Value)
	case model.IndicatorUseInBuildIndicators:
		setBool(&i.UseInBuildIndicators, req.Value)
	case model.IndicatorCustom:
		setBool(&i.Custom, req.Value)
	}
	return i
}

func ChangeNumeratorDimension(i model.Indicator, req model.ChangeDimensionReq) model.Indicator {
	i.Numerator = changeDimension(i.Numerator, req)
	return i
}

func ChangeDenominatorDimension(i model.Indicator, req model.ChangeDimensionReq) model.Indicator {
	i.Denominator = changeDimension(i.Denominator, req)
	return i
}

func ChangeNumeratorAttribute(i model.Indicator, req model.ChangeExpressionAttributeReq) model.Indicator {
	i.Numerator = changeExpressionAttribute(i.Numerator, req)
	return i
}

func ChangeDenominatorAttribute(i model.Indicator, req model.ChangeExpressionAttributeReq) model.Indicator {
	i.Denominator = changeExpressionAttribute(i.Denominator, req)
	return i
}

func ChangeNumeratorExpressionValue(i model.Indicator, req model.ChangeExpressionValueReq) model.Indicator {
	i.Numerator = changeExpressionValue(i.Numerator, req)
	return i
}

func ChangeDenominatorExpressionValue(i model.Indicator, req model.ChangeExpressionValueReq) model.Indicator {
	i.Denominator = changeExpressionValue(i.Denominator, req)
	return i
}

// changeDimension returns e with its dimensions edited in one of three modes:
// remove by id, replace every dimension on the same resource, or merge by id.
// A nil half stays nil.
func changeDimension(e *model.Expression, req model.ChangeDimensionReq) *model.Expression {
	if e == nil {
		return nil
	}
	id := req.Dimension.ID
	dims := make(map[string]model.Dimension, len(e.DataDimensions)+1)
	switch {
	case req.Remove:
		if _, ok := e.DataDimensions[id]; !ok {
			return e
		}
		for k, d := range e.DataDimensions {
			if k != id {
				dims[k] = d
			}
		}
	case req.Replace:
		for k, d := range e.DataDimensions {
			if d.Resource != req.Dimension.Resource {
				dims[k] = d
			}
		}
		dims[id] = req.Dimension
	default:
		maps.Copy(dims, e.DataDimensions)
		dims[id] = req.Dimension
	}
	next := *e
	next.DataDimensions = dims
	return &next
}

func changeExpressionAttribute(e *model.Expression, req model.ChangeExpressionAttributeReq) *model.Expression {
	if e == nil {
		return nil
	}
	next := *e
	switch req.Attribute {
	case model.ExpressionName:
		setString(&next.Name, req.Value)
	case model.ExpressionDescription:
		setString(&next.Description, req.Value)
	case model.ExpressionType:
		setString(&next.Type, req.Value)
	case model.ExpressionResource:
		setString(&next.Resource, req.Value)
	}
	return &next
}

func changeExpressionValue(e *model.Expression, req model.ChangeExpressionValueReq) *model.Expression {
	if e == nil {
		return nil
	}
	if req.Remove {
		if _, ok := e.Expressions[req.Attribute]; !ok {
			return e
		}
	}
	expressions := make(map[string]model.ExpressionValue, len(e.Expressions)+1)
	maps.Copy(expressions, e.Expressions)
	if req.Remove {
		delete(expressions, req.Attribute)
	} else {
		expressions[req.Attribute] = model.ExpressionValue{Value: req.Value, IsGlobal: req.IsGlobal}
	}
	next := *e
	next.Expressions = expressions
	return &next
}
