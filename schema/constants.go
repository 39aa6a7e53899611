package schema

// Custom string types for type safety.
type (
	// BurndownType represents the scope a burndown covers.
	BurndownType string

	// VelocityPeriod represents the cadence a velocity record covers.
	VelocityPeriod string

	// MetricType represents how task progress is measured.
	MetricType string

	// TrendClass represents the velocity trend classification.
	TrendClass string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history storage.
	DatabaseBackend string
)

// All burndown types supported.
const (
	SprintBurndownType  BurndownType = "sprint" // default
	ReleaseBurndownType BurndownType = "release"
	ProjectBurndownType BurndownType = "project"
	EpicBurndownType    BurndownType = "epic"
)

// All velocity periods supported.
const (
	SprintPeriod  VelocityPeriod = "sprint" // default
	WeekPeriod    VelocityPeriod = "week"
	MonthPeriod   VelocityPeriod = "month"
	QuarterPeriod VelocityPeriod = "quarter"
)

// All progress metric types supported.
const (
	PercentageMetric  MetricType = "percentage"
	CountMetric       MetricType = "count"
	StoryPointsMetric MetricType = "story_points"
	TimeBasedMetric   MetricType = "time_based"
	MilestoneMetric   MetricType = "milestone"
	CustomMetric      MetricType = "custom"
)

// All trend classifications.
const (
	ImprovingTrend        TrendClass = "improving"
	DecliningTrend        TrendClass = "declining"
	StableTrend           TrendClass = "stable"
	InsufficientDataTrend TrendClass = "insufficient_data"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Tolerances and chart defaults.
const (
	// DefaultOnTrackSlack is the fraction by which actual remaining work may
	// exceed the ideal line at the same date while still counting as on track.
	DefaultOnTrackSlack = 0.10

	// DefaultTrendTolerance is the half-width of the band, relative to the
	// earlier-window average, inside which a recent-window velocity average
	// classifies as stable. Matches the on-track slack magnitude so the two
	// signals agree in sensitivity.
	DefaultTrendTolerance = 0.10

	// DefaultChartHeight is the rendered chart height in pixels.
	DefaultChartHeight = 300

	// DefaultChartPadding is the fixed padding on all four chart sides.
	DefaultChartPadding = 40

	// MinTrendPeriods is the minimum velocity history length for a trend;
	// a trend needs at least two comparable points.
	MinTrendPeriods = 2

	// MaxXAxisLabels and MaxYAxisLabels bound the axis label counts.
	MaxXAxisLabels = 7
	MaxYAxisLabels = 6
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidBurndownTypes lists all valid burndown types.
var ValidBurndownTypes = map[BurndownType]struct{}{
	SprintBurndownType:  {},
	ReleaseBurndownType: {},
	ProjectBurndownType: {},
	EpicBurndownType:    {},
}

// ValidVelocityPeriods lists all valid velocity periods.
var ValidVelocityPeriods = map[VelocityPeriod]struct{}{
	SprintPeriod:  {},
	WeekPeriod:    {},
	MonthPeriod:   {},
	QuarterPeriod: {},
}

// ValidMetricTypes lists all valid progress metric types.
var ValidMetricTypes = map[MetricType]struct{}{
	PercentageMetric:  {},
	CountMetric:       {},
	StoryPointsMetric: {},
	TimeBasedMetric:   {},
	MilestoneMetric:   {},
	CustomMetric:      {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
