package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// AttributeKind is the Go type an attribute value must coerce to.
type AttributeKind int

const (
	KindString AttributeKind = iota
	KindInt
	KindBool
)

type DashboardAttribute string

const (
	DashboardName                DashboardAttribute = "name"
	DashboardDescription         DashboardAttribute = "description"
	DashboardCategory            DashboardAttribute = "category"
	DashboardPublished           DashboardAttribute = "published"
	DashboardRows                DashboardAttribute = "rows"
	DashboardColumns             DashboardAttribute = "columns"
	DashboardRefresh             DashboardAttribute = "refresh"
	DashboardDataSet             DashboardAttribute = "dataSet"
	DashboardBg                  DashboardAttribute = "bg"
	DashboardTag                 DashboardAttribute = "tag"
	DashboardType                DashboardAttribute = "type"
	DashboardTargetCategoryCombo DashboardAttribute = "targetCategoryCombo"
)

var DashboardAttributes = map[DashboardAttribute]AttributeKind{
	DashboardName:                KindString,
	DashboardDescription:         KindString,
	DashboardCategory:            KindString,
	DashboardPublished:           KindBool,
	DashboardRows:                KindInt,
	DashboardColumns:             KindInt,
	DashboardRefresh:             KindString,
	DashboardDataSet:             KindString,
	DashboardBg:                  KindString,
	DashboardTag:                 KindString,
	DashboardType:                KindString,
	DashboardTargetCategoryCombo: KindString,
}

type SectionAttribute string

const (
	SectionTitle           SectionAttribute = "title"
	SectionRowSpan         SectionAttribute = "rowSpan"
	SectionColSpan         SectionAttribute = "colSpan"
	SectionDisplay         SectionAttribute = "display"
	SectionDirection       SectionAttribute = "direction"
	SectionJustifyContent  SectionAttribute = "justifyContent"
	SectionCarousel        SectionAttribute = "carousel"
	SectionIsBottomSection SectionAttribute = "isBottomSection"
	SectionBg              SectionAttribute = "bg"
	SectionHeight          SectionAttribute = "height"
)

var SectionAttributes = map[SectionAttribute]AttributeKind{
	SectionTitle:           KindString,
	SectionRowSpan:         KindInt,
	SectionColSpan:         KindInt,
	SectionDisplay:         KindString,
	SectionDirection:       KindString,
	SectionJustifyContent:  KindString,
	SectionCarousel:        KindBool,
	SectionIsBottomSection: KindBool,
	SectionBg:              KindString,
	SectionHeight:          KindInt,
}

type VisualizationAttribute string

const (
	VisualizationIndicator VisualizationAttribute = "indicator"
	VisualizationType      VisualizationAttribute = "type"
	VisualizationName      VisualizationAttribute = "name"
	VisualizationGroup     VisualizationAttribute = "group"
	VisualizationBg        VisualizationAttribute = "bg"
	VisualizationHeight    VisualizationAttribute = "height"
)

var VisualizationAttributes = map[VisualizationAttribute]AttributeKind{
	VisualizationIndicator: KindString,
	VisualizationType:      KindString,
	VisualizationName:      KindString,
	VisualizationGroup:     KindString,
	VisualizationBg:        KindString,
	VisualizationHeight:    KindInt,
}

type IndicatorAttribute string

const (
	IndicatorName                 IndicatorAttribute = "name"
	IndicatorDescription          IndicatorAttribute = "description"
	IndicatorDataSource           IndicatorAttribute = "dataSource"
	IndicatorFactor               IndicatorAttribute = "factor"
	IndicatorQuery                IndicatorAttribute = "query"
	IndicatorUseInBuildIndicators IndicatorAttribute = "useInBuildIndicators"
	IndicatorCustom               IndicatorAttribute = "custom"
)

var IndicatorAttributes = map[IndicatorAttribute]AttributeKind{
	IndicatorName:                 KindString,
	IndicatorDescription:          KindString,
	IndicatorDataSource:           KindString,
	IndicatorFactor:               KindString,
	IndicatorQuery:                KindString,
	IndicatorUseInBuildIndicators: KindBool,
	IndicatorCustom:               KindBool,
}

// ExpressionAttribute names the scalar fields of a numerator or denominator.
type ExpressionAttribute string

const (
	ExpressionName        ExpressionAttribute = "name"
	ExpressionDescription ExpressionAttribute = "description"
	ExpressionType        ExpressionAttribute = "type"
	ExpressionResource    ExpressionAttribute = "resource"
)

var ExpressionAttributes = map[ExpressionAttribute]AttributeKind{
	ExpressionName:        KindString,
	ExpressionDescription: KindString,
	ExpressionType:        KindString,
	ExpressionResource:    KindString,
}

type DataSourceAttribute string

const (
	DataSourceName           DataSourceAttribute = "name"
	DataSourceDescription    DataSourceAttribute = "description"
	DataSourceType           DataSourceAttribute = "type"
	DataSourceIsCurrentDHIS2 DataSourceAttribute = "isCurrentDHIS2"
)

var DataSourceAttributes = map[DataSourceAttribute]AttributeKind{
	DataSourceName:           KindString,
	DataSourceDescription:    KindString,
	DataSourceType:           KindString,
	DataSourceIsCurrentDHIS2: KindBool,
}

type CategoryAttribute string

const (
	CategoryName        CategoryAttribute = "name"
	CategoryDescription CategoryAttribute = "description"
)

var CategoryAttributes = map[CategoryAttribute]AttributeKind{
	CategoryName:        KindString,
	CategoryDescription: KindString,
}

// Coerce converts a decoded JSON value to the Go type of kind. Integral
// floats and numeric strings are accepted for KindInt.
func Coerce(kind AttributeKind, v any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, true
		case int32:
			return int(n), true
		case int64:
			return int(n), true
		case float64:
			if n != math.Trunc(n) {
				return nil, false
			}
			return int(n), true
		case json.Number:
			i, err := n.Int64()
			return int(i), err == nil
		case string:
			i, err := strconv.Atoi(n)
			return i, err == nil
		}
	}
	return nil, false
}

func coerceAttribute[K ~string](known map[K]AttributeKind, attr K, value any) (any, error) {
	kind, ok := known[attr]
	if !ok {
		return nil, badRequest("unknown attribute: " + string(attr))
	}
	v, ok := Coerce(kind, value)
	if !ok {
		return nil, badRequest("invalid value for attribute: " + string(attr))
	}
	return v, nil
}
