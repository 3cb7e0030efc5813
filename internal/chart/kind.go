package chart

import (
	"fmt"
	"strings"
)

// Kind is a plot type the builder knows how to lay out.
type Kind int

const (
	Line Kind = iota + 1
	Scatter
	Bar
	Area
	Histogram
	Box
)

// capabilities is consulted by validation and layout instead of comparing kinds ad hoc.
type capabilities struct {
	name         string
	requiresX    bool
	secondary    bool
	subplots     bool
	distribution bool
	series       SeriesKind
}

var kindTable = map[Kind]capabilities{
	Line:      {name: "Line", requiresX: true, secondary: true, subplots: true, series: SeriesLine},
	Scatter:   {name: "Scatter", requiresX: true, secondary: true, subplots: true, series: SeriesMarker},
	Bar:       {name: "Bar", requiresX: true, subplots: true, series: SeriesBar},
	Area:      {name: "Area", requiresX: true, secondary: true, subplots: true, series: SeriesArea},
	Histogram: {name: "Histogram", distribution: true, series: SeriesHistogram},
	Box:       {name: "Box", distribution: true, series: SeriesBox},
}

// Kinds lists every supported plot kind in menu order.
func Kinds() []Kind {
	return []Kind{Line, Scatter, Bar, Area, Histogram, Box}
}

// ParseKind maps one of the literal kind names (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(kindTable[k].name, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if c, ok := kindTable[k]; ok {
		return c.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// RequiresX reports whether the kind plots against an X column.
func (k Kind) RequiresX() bool { return kindTable[k].requiresX }

// SupportsSecondary reports whether series of this kind may use a secondary Y axis.
func (k Kind) SupportsSecondary() bool { return kindTable[k].secondary }

// SupportsSubplots reports whether multiple series may be stacked into panels.
func (k Kind) SupportsSubplots() bool { return kindTable[k].subplots }

// Distribution reports whether the kind plots the distribution of each column (no X).
func (k Kind) Distribution() bool { return kindTable[k].distribution }

// SeriesKind is the kind of trace produced for each selected column.
func (k Kind) SeriesKind() SeriesKind { return kindTable[k].series }
