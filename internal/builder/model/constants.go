package model

// Entity defaults
const (
	DefaultCategoryID    = "uncategorized"
	DefaultDashboardName = "New Dashboard"
	DefaultRefresh       = "off"
	DefaultGridSize      = 24
	DefaultChartType     = "single"
	DefaultDisplay       = "normal"
	DefaultFactor        = "1"
)

// Dashboard types
const (
	DashboardTypeFixed   = "fixed"
	DashboardTypeDynamic = "dynamic"
)

// Expression (numerator/denominator) types
const (
	ExpressionTypeAnalytics     = "ANALYTICS"
	ExpressionTypeSQLView       = "SQL_VIEW"
	ExpressionTypeAPI           = "API"
	ExpressionTypeElasticsearch = "ELASTICSEARCH"
	ExpressionTypeOther         = "OTHER"
)

// Data source types
const (
	DataSourceTypeDHIS2         = "DHIS2"
	DataSourceTypeElasticsearch = "ELASTICSEARCH"
	DataSourceTypeAPI           = "API"
	DataSourceTypeIndexDB       = "INDEX_DB"
)

// Image alignments. A container holds at most one image per alignment.
const (
	AlignTopLeft      = "top-left"
	AlignTopCenter    = "top-center"
	AlignTopRight     = "top-right"
	AlignBottomLeft   = "bottom-left"
	AlignBottomCenter = "bottom-center"
	AlignBottomRight  = "bottom-right"
)

var Alignments = []string{
	AlignTopLeft, AlignTopCenter, AlignTopRight,
	AlignBottomLeft, AlignBottomCenter, AlignBottomRight,
}

// Layout breakpoints
const (
	BreakpointLG = "lg"
	BreakpointMD = "md"
	BreakpointSM = "sm"
	BreakpointXS = "xs"
)

var Breakpoints = []string{BreakpointLG, BreakpointMD, BreakpointSM, BreakpointXS}

// Document collections
const (
	CollectionDashboards     = "dashboards"
	CollectionIndicators     = "indicators"
	CollectionDataSources    = "data-sources"
	CollectionCategories     = "categories"
	CollectionVisualizations = "visualizations"
)

var Collections = []string{
	CollectionDashboards, CollectionIndicators, CollectionDataSources,
	CollectionCategories, CollectionVisualizations,
}

// Pagination resources tracked in AppState.Pages
const (
	PageDashboards     = "dashboards"
	PageIndicators     = "indicators"
	PageDataSources    = "dataSources"
	PageCategories     = "categories"
	PageVisualizations = "visualizations"
)
