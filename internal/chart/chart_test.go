package chart_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
	"github.com/KaramelBytes/csvplot-cli/internal/dataset"
)

func weather(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("weather.csv",
		[]string{"date", "temp", "humidity", "pressure"},
		[][]string{
			{"2024-06-01", "21.5", "40", "1012"},
			{"2024-06-02", "23.0", "38", "1010"},
			{"2024-06-03", "19.8", "55", "1008"},
		}, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	return ds
}

func mustRequest(t *testing.T, kind chart.Kind, x string, y, secondary []string, subplots bool) chart.Request {
	t.Helper()
	req, err := chart.NewRequest(kind, x, y, secondary, subplots)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	return req
}

func TestBuildDistributionKindsIgnoreX(t *testing.T) {
	ds := weather(t)
	for _, kind := range []chart.Kind{chart.Histogram, chart.Box} {
		req := mustRequest(t, kind, "date", []string{"temp", "humidity"}, []string{"humidity"}, true)
		spec, err := chart.Build(ds, req)
		if err != nil {
			t.Fatalf("%s: build: %v", kind, err)
		}
		if len(spec.Series) != 2 {
			t.Fatalf("%s: series = %d, want 2", kind, len(spec.Series))
		}
		for _, s := range spec.Series {
			if s.X != nil {
				t.Fatalf("%s: series %q has x values", kind, s.Label)
			}
			if s.Panel != 0 || s.Axis != chart.AxisPrimary {
				t.Fatalf("%s: series %q placed at panel %d axis %s", kind, s.Label, s.Panel, s.Axis)
			}
			if s.Kind != kind.SeriesKind() {
				t.Fatalf("%s: series kind = %s", kind, s.Kind)
			}
			if len(s.Y) != 3 {
				t.Fatalf("%s: y len = %d, want 3", kind, len(s.Y))
			}
		}
		l := spec.Layout
		if l.PanelCount != 1 || l.XAxisTitle != "" || l.SecondaryAxisTitle != "" {
			t.Fatalf("%s: unexpected layout %+v", kind, l)
		}
		if l.Title != kind.String()+" Plot" {
			t.Fatalf("%s: title = %q", kind, l.Title)
		}
		if l.Overlay != (kind == chart.Histogram) {
			t.Fatalf("%s: overlay = %v", kind, l.Overlay)
		}
	}
}

func TestBuildBoxScenario(t *testing.T) {
	spec, err := chart.Build(weather(t), mustRequest(t, chart.Box, "", []string{"temp", "humidity"}, nil, false))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("series = %d, want 2", len(spec.Series))
	}
	if spec.Series[0].Label != "temp" || spec.Series[1].Label != "humidity" {
		t.Fatalf("labels = %q, %q", spec.Series[0].Label, spec.Series[1].Label)
	}
	if spec.Series[0].Y[0] != 21.5 {
		t.Fatalf("temp[0] = %v, want 21.5", spec.Series[0].Y[0])
	}
}

func TestBuildSubplotsOnePanelPerColumn(t *testing.T) {
	ds := weather(t)
	y := []string{"pressure", "temp", "humidity"}
	for _, kind := range []chart.Kind{chart.Line, chart.Scatter, chart.Bar, chart.Area} {
		spec, err := chart.Build(ds, mustRequest(t, kind, "date", y, nil, true))
		if err != nil {
			t.Fatalf("%s: build: %v", kind, err)
		}
		if spec.Layout.PanelCount != len(y) {
			t.Fatalf("%s: panel count = %d", kind, spec.Layout.PanelCount)
		}
		for i, s := range spec.Series {
			if s.Panel != i || s.Label != y[i] {
				t.Fatalf("%s: series %d = %q panel %d", kind, i, s.Label, s.Panel)
			}
			if s.Axis != chart.AxisPrimary {
				t.Fatalf("%s: series %q on %s axis", kind, s.Label, s.Axis)
			}
			if len(s.X) != 3 || s.X[0] != "2024-06-01" {
				t.Fatalf("%s: x = %v", kind, s.X)
			}
		}
		if spec.Layout.Title != "Subplots" || !spec.Layout.SharedX {
			t.Fatalf("%s: layout = %+v", kind, spec.Layout)
		}
		if spec.Layout.PanelHeight != 3*chart.PanelHeightPerPanel {
			t.Fatalf("%s: panel height = %d", kind, spec.Layout.PanelHeight)
		}
	}
}

func TestBuildSubplotsWinOverSecondary(t *testing.T) {
	req := chart.Request{Kind: chart.Line, X: "date", Y: []string{"temp", "humidity"}, Secondary: []string{"humidity"}, Subplots: true}
	spec, err := chart.Build(weather(t), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if spec.HasSecondary() || spec.Layout.SecondaryAxisTitle != "" {
		t.Fatalf("secondary axis used in subplot mode: %+v", spec.Layout)
	}
	if spec.Layout.PanelCount != 2 {
		t.Fatalf("panel count = %d, want 2", spec.Layout.PanelCount)
	}
}

func TestBuildSecondaryAxisScenario(t *testing.T) {
	req := mustRequest(t, chart.Line, "date", []string{"temp", "humidity"}, []string{"humidity"}, false)
	spec, err := chart.Build(weather(t), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("series = %d, want 2", len(spec.Series))
	}
	want := map[string]chart.Axis{"temp": chart.AxisPrimary, "humidity": chart.AxisSecondary}
	for _, s := range spec.Series {
		if s.Panel != 0 {
			t.Fatalf("%q panel = %d", s.Label, s.Panel)
		}
		if s.Axis != want[s.Label] {
			t.Fatalf("%q axis = %s, want %s", s.Label, s.Axis, want[s.Label])
		}
		if s.Kind != chart.SeriesLine {
			t.Fatalf("%q kind = %s", s.Label, s.Kind)
		}
	}
	l := spec.Layout
	if l.SecondaryAxisTitle == "" || l.PrimaryAxisTitle == "" {
		t.Fatalf("axis titles missing: %+v", l)
	}
	if l.Title != "Line Plot" || l.XAxisTitle != "date" || l.PanelCount != 1 {
		t.Fatalf("layout = %+v", l)
	}
}

func TestBuildOverlayWithoutSecondary(t *testing.T) {
	for _, kind := range []chart.Kind{chart.Scatter, chart.Area} {
		spec, err := chart.Build(weather(t), mustRequest(t, kind, "date", []string{"temp", "humidity"}, nil, false))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if spec.HasSecondary() || spec.Layout.SecondaryAxisTitle != "" || spec.Layout.PrimaryAxisTitle != "" {
			t.Fatalf("%s: unexpected secondary axis: %+v", kind, spec.Layout)
		}
		if spec.Layout.PanelHeight != 0 {
			t.Fatalf("%s: panel height = %d, want unset", kind, spec.Layout.PanelHeight)
		}
	}
}

func TestBuildBarNeverUsesSecondaryAxis(t *testing.T) {
	// bypass NewRequest to prove layout also refuses the hint
	req := chart.Request{Kind: chart.Bar, X: "date", Y: []string{"temp", "humidity"}, Secondary: []string{"humidity"}}
	spec, err := chart.Build(weather(t), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, s := range spec.Series {
		if s.Axis != chart.AxisPrimary || s.Kind != chart.SeriesBar {
			t.Fatalf("bar series %q: axis %s kind %s", s.Label, s.Axis, s.Kind)
		}
	}
	if spec.Layout.SecondaryAxisTitle != "" {
		t.Fatalf("secondary title set for bar")
	}
	_, layout := chart.Compose(req, []chart.Series{{Kind: chart.SeriesBar, Label: "humidity"}})
	if layout.SecondaryAxisTitle != "" {
		t.Fatalf("compose set secondary title for bar")
	}
}

func TestBuildRejectsUnknownColumns(t *testing.T) {
	ds := weather(t)
	cases := []struct {
		name string
		req  chart.Request
		col  string
	}{
		{"x", mustRequest(t, chart.Line, "when", []string{"temp"}, nil, false), "when"},
		{"y", mustRequest(t, chart.Bar, "date", []string{"temp", "wind"}, nil, false), "wind"},
		{"distribution", mustRequest(t, chart.Histogram, "", []string{"rain"}, nil, false), "rain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := chart.Build(ds, tc.req)
			if spec != nil {
				t.Fatalf("expected no spec on error")
			}
			if !errors.Is(err, chart.ErrInvalidColumnReference) {
				t.Fatalf("err = %v, want ErrInvalidColumnReference", err)
			}
			var ce *chart.ColumnError
			if !errors.As(err, &ce) || ce.Name != tc.col {
				t.Fatalf("column error = %#v, want name %q", ce, tc.col)
			}
		})
	}
}

func TestBuildValidatesRawRequests(t *testing.T) {
	ds := weather(t)
	if _, err := chart.Build(ds, chart.Request{Kind: chart.Line, Y: []string{"temp"}}); !errors.Is(err, chart.ErrMissingAxis) {
		t.Fatalf("err = %v, want ErrMissingAxis", err)
	}
	if _, err := chart.Build(ds, chart.Request{Kind: chart.Box}); !errors.Is(err, chart.ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
}

func TestBuildIsDeterministicAndDoesNotAlias(t *testing.T) {
	ds := weather(t)
	req := mustRequest(t, chart.Area, "date", []string{"temp", "humidity"}, []string{"temp"}, false)
	a, err := chart.Build(ds, req)
	if err != nil {
		t.Fatalf("build a: %v", err)
	}
	b, err := chart.Build(ds, req)
	if err != nil {
		t.Fatalf("build b: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("builds differ:\n%+v\n%+v", a, b)
	}

	a.Series[0].Y[0] = -1.0
	a.Series[0].X[0] = "changed"
	if b.Series[0].Y[0] != 21.5 || b.Series[1].X[0] != "2024-06-01" {
		t.Fatalf("specs share value slices")
	}
	vals, _ := ds.Values("temp")
	if vals[0] != 21.5 {
		t.Fatalf("dataset mutated: %v", vals[0])
	}
	if req.Y[0] != "temp" || len(req.Secondary) != 1 {
		t.Fatalf("request mutated: %+v", req)
	}
}

func TestComposeLeavesInputUntouched(t *testing.T) {
	req := mustRequest(t, chart.Scatter, "date", []string{"temp", "humidity"}, nil, true)
	in := []chart.Series{{Kind: chart.SeriesMarker, Label: "temp"}, {Kind: chart.SeriesMarker, Label: "humidity"}}
	out, layout := chart.Compose(req, in)
	if in[1].Panel != 0 {
		t.Fatalf("input series modified")
	}
	if out[1].Panel != 1 || layout.PanelCount != 2 {
		t.Fatalf("placement = %d, panels = %d", out[1].Panel, layout.PanelCount)
	}
}

func TestWithPanelHeight(t *testing.T) {
	req := mustRequest(t, chart.Line, "date", []string{"temp", "humidity"}, nil, true)
	spec, err := chart.NewBuilder(chart.WithPanelHeight(250)).Build(weather(t), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if spec.Layout.PanelHeight != 500 {
		t.Fatalf("panel height = %d, want 500", spec.Layout.PanelHeight)
	}
	spec, err = chart.NewBuilder(chart.WithPanelHeight(0)).Build(weather(t), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if spec.Layout.PanelHeight != 2*chart.PanelHeightPerPanel {
		t.Fatalf("panel height = %d, want default", spec.Layout.PanelHeight)
	}
}

func TestSeriesKindPerPlotKind(t *testing.T) {
	want := map[chart.Kind]chart.SeriesKind{
		chart.Line:      chart.SeriesLine,
		chart.Scatter:   chart.SeriesMarker,
		chart.Bar:       chart.SeriesBar,
		chart.Area:      chart.SeriesArea,
		chart.Histogram: chart.SeriesHistogram,
		chart.Box:       chart.SeriesBox,
	}
	ds := weather(t)
	for kind, sk := range want {
		spec, err := chart.Build(ds, mustRequest(t, kind, "date", []string{"temp"}, nil, false))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got := spec.Series[0].Kind; got != sk {
			t.Fatalf("%s: series kind = %s, want %s", kind, got, sk)
		}
	}
}
