package chart

import "fmt"

// Compose places series into panels and axes and derives the layout. Exactly
// one strategy applies, checked in order: distribution, subplots, overlay.
// The input slice is not modified.
func Compose(req Request, series []Series) ([]Series, Layout) {
	return compose(req, series, PanelHeightPerPanel)
}

func compose(req Request, series []Series, panelHeight int) ([]Series, Layout) {
	placed := make([]Series, len(series))
	copy(placed, series)

	switch {
	case req.Kind.Distribution():
		return placed, distributionLayout(req, placed)
	case req.Subplots:
		return placed, subplotLayout(req, placed, panelHeight)
	default:
		return placed, overlayLayout(req, placed)
	}
}

func distributionLayout(req Request, placed []Series) Layout {
	for i := range placed {
		placed[i].X = nil
		placed[i].Axis = AxisPrimary
		placed[i].Panel = 0
	}
	return Layout{
		Title:       plotTitle(req.Kind),
		PanelCount:  1,
		Overlay:     req.Kind == Histogram,
		LegendTitle: "Columns",
	}
}

func subplotLayout(req Request, placed []Series, panelHeight int) Layout {
	for i := range placed {
		placed[i].Axis = AxisPrimary
		placed[i].Panel = i
	}
	n := len(placed)
	return Layout{
		Title:       "Subplots",
		XAxisTitle:  req.X,
		PanelCount:  n,
		PanelHeight: panelHeight * n,
		SharedX:     true,
	}
}

func overlayLayout(req Request, placed []Series) Layout {
	secondary := false
	for i := range placed {
		placed[i].Panel = 0
		placed[i].Axis = AxisPrimary
		if req.Kind.SupportsSecondary() && req.IsSecondary(placed[i].Label) {
			placed[i].Axis = AxisSecondary
			secondary = true
		}
	}
	l := Layout{
		Title:      plotTitle(req.Kind),
		XAxisTitle: req.X,
		PanelCount: 1,
	}
	if secondary {
		l.PrimaryAxisTitle = "Primary"
		l.SecondaryAxisTitle = "Secondary"
	}
	return l
}

func plotTitle(k Kind) string {
	return fmt.Sprintf("%s Plot", k)
}
