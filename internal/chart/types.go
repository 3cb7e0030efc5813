package chart

// SeriesKind names how a single series is drawn.
type SeriesKind string

const (
	SeriesLine      SeriesKind = "line"
	SeriesMarker    SeriesKind = "marker"
	SeriesBar       SeriesKind = "bar"
	SeriesArea      SeriesKind = "area"
	SeriesHistogram SeriesKind = "histogram"
	SeriesBox       SeriesKind = "box"
)

// Axis selects the Y scale a series is plotted against.
type Axis string

const (
	AxisPrimary   Axis = "primary"
	AxisSecondary Axis = "secondary"
)

// PanelHeightPerPanel is the height hint contributed by each stacked panel.
const PanelHeightPerPanel = 300

// Source is the read-only view of a dataset the builder needs.
type Source interface {
	// Names returns column names in dataset order.
	Names() []string
	// IsNumeric reports whether the named column holds numeric values.
	IsNumeric(name string) bool
	// Values returns a fresh copy of the named column's cells.
	Values(name string) ([]any, bool)
}

// Series is one plotted trace.
type Series struct {
	Kind  SeriesKind `json:"kind" yaml:"kind"`
	X     []any      `json:"x,omitempty" yaml:"x,omitempty"`
	Y     []any      `json:"y" yaml:"y"`
	Label string     `json:"label" yaml:"label"`
	Axis  Axis       `json:"axis" yaml:"axis"`
	Panel int        `json:"panel" yaml:"panel"`
}

// Layout describes panel arrangement and titles.
type Layout struct {
	Title              string `json:"title" yaml:"title"`
	XAxisTitle         string `json:"x_axis_title,omitempty" yaml:"x_axis_title,omitempty"`
	PrimaryAxisTitle   string `json:"primary_axis_title,omitempty" yaml:"primary_axis_title,omitempty"`
	SecondaryAxisTitle string `json:"secondary_axis_title,omitempty" yaml:"secondary_axis_title,omitempty"`
	PanelCount         int    `json:"panel_count" yaml:"panel_count"`
	// PanelHeight is the total figure height hint; 0 means the renderer decides.
	PanelHeight int `json:"panel_height_hint,omitempty" yaml:"panel_height_hint,omitempty"`
	// Overlay asks the renderer to draw overlapping series translucently in one panel.
	Overlay     bool   `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	SharedX     bool   `json:"shared_x,omitempty" yaml:"shared_x,omitempty"`
	LegendTitle string `json:"legend_title,omitempty" yaml:"legend_title,omitempty"`
}

// Spec is the renderer-agnostic description of a chart.
type Spec struct {
	Series []Series `json:"series" yaml:"series"`
	Layout Layout   `json:"layout" yaml:"layout"`
}

// HasSecondary reports whether any series is drawn against the secondary axis.
func (s *Spec) HasSecondary() bool {
	for _, sr := range s.Series {
		if sr.Axis == AxisSecondary {
			return true
		}
	}
	return false
}
