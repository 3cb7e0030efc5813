// Package render converts chart specifications into documents an external
// renderer understands.
package render

import (
	"fmt"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
)

// SubplotSpacing is the vertical gap between stacked panels, as a fraction of the figure.
const SubplotSpacing = 0.05

// HistogramOpacity keeps overlaid histograms readable.
const HistogramOpacity = 0.75

// Figure is a Plotly figure document.
type Figure struct {
	Data   []Trace        `json:"data" yaml:"data"`
	Layout map[string]any `json:"layout" yaml:"layout"`
}

// Trace is one Plotly trace.
type Trace struct {
	Type    string  `json:"type" yaml:"type"`
	Name    string  `json:"name" yaml:"name"`
	X       []any   `json:"x,omitempty" yaml:"x,omitempty"`
	Y       []any   `json:"y,omitempty" yaml:"y,omitempty"`
	Mode    string  `json:"mode,omitempty" yaml:"mode,omitempty"`
	Fill    string  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Opacity float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	XAxis   string  `json:"xaxis,omitempty" yaml:"xaxis,omitempty"`
	YAxis   string  `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
}

// Plotly maps a Spec onto a Plotly figure.
func Plotly(spec *chart.Spec) Figure {
	fig := Figure{
		Data:   make([]Trace, 0, len(spec.Series)),
		Layout: map[string]any{"title": title(spec.Layout.Title)},
	}
	for _, s := range spec.Series {
		fig.Data = append(fig.Data, trace(s, spec.Layout.PanelCount))
	}

	l := spec.Layout
	if l.Overlay {
		fig.Layout["barmode"] = "overlay"
	}
	if l.LegendTitle != "" {
		fig.Layout["legend"] = map[string]any{"title": title(l.LegendTitle)}
	}
	if l.PanelHeight > 0 {
		fig.Layout["height"] = l.PanelHeight
	}
	if l.PanelCount > 1 {
		stackPanels(fig.Layout, l)
		return fig
	}
	if l.XAxisTitle != "" {
		fig.Layout["xaxis"] = map[string]any{"title": title(l.XAxisTitle)}
	}
	if l.SecondaryAxisTitle != "" {
		fig.Layout["yaxis"] = map[string]any{"title": title(l.PrimaryAxisTitle)}
		fig.Layout["yaxis2"] = map[string]any{
			"title":      title(l.SecondaryAxisTitle),
			"overlaying": "y",
			"side":       "right",
		}
	}
	return fig
}

func trace(s chart.Series, panels int) Trace {
	t := Trace{Name: s.Label, X: s.X, Y: s.Y}
	switch s.Kind {
	case chart.SeriesLine:
		t.Type, t.Mode = "scatter", "lines"
	case chart.SeriesMarker:
		t.Type, t.Mode = "scatter", "markers"
	case chart.SeriesArea:
		t.Type, t.Mode, t.Fill = "scatter", "lines", "tozeroy"
	case chart.SeriesBar:
		t.Type = "bar"
	case chart.SeriesHistogram:
		// samples are binned along x
		t.Type, t.X, t.Y = "histogram", s.Y, nil
		t.Opacity = HistogramOpacity
	case chart.SeriesBox:
		t.Type = "box"
	}
	if s.Axis == chart.AxisSecondary {
		t.YAxis = "y2"
	}
	if panels > 1 && s.Panel > 0 {
		t.XAxis = axisRef("x", s.Panel)
		t.YAxis = axisRef("y", s.Panel)
	}
	return t
}

// stackPanels lays panels out top to bottom with every x axis matching the first.
func stackPanels(layout map[string]any, l chart.Layout) {
	n := l.PanelCount
	h := (1 - SubplotSpacing*float64(n-1)) / float64(n)
	for i := 0; i < n; i++ {
		top := 1 - float64(i)*(h+SubplotSpacing)
		bottom := top - h
		if bottom < 0 {
			bottom = 0
		}
		x := map[string]any{"anchor": axisRef("y", i)}
		if i < n-1 {
			x["showticklabels"] = false
		} else if l.XAxisTitle != "" {
			x["title"] = title(l.XAxisTitle)
		}
		if i > 0 {
			x["matches"] = "x"
		}
		layout[axisRef("xaxis", i)] = x
		layout[axisRef("yaxis", i)] = map[string]any{
			"anchor": axisRef("x", i),
			"domain": []float64{round4(bottom), round4(top)},
		}
	}
}

func title(text string) map[string]any {
	return map[string]any{"text": text}
}

// axisRef numbers an axis id or layout key for panel i: "x", "x2", "yaxis3", ...
func axisRef(prefix string, i int) string {
	if i == 0 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, i+1)
}

func round4(f float64) float64 {
	return float64(int64(f*10000+0.5)) / 10000
}
