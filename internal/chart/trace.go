package chart

// BuildSeries produces one series per selected Y column, in selection order.
// Every column reference is resolved before any series is built. Placement
// (axis and panel) is left at primary/0; Compose assigns it.
func BuildSeries(src Source, req Request) ([]Series, error) {
	if !req.Kind.Valid() {
		return nil, &ValidationError{Field: "kind", Err: ErrUnknownKind}
	}
	if err := checkColumns(src, req); err != nil {
		return nil, err
	}

	sk := req.Kind.SeriesKind()
	var x []any
	if req.Kind.RequiresX() {
		x, _ = src.Values(req.X)
	}

	series := make([]Series, 0, len(req.Y))
	for _, name := range req.Y {
		y, _ := src.Values(name)
		s := Series{
			Kind:  sk,
			Y:     y,
			Label: name,
			Axis:  AxisPrimary,
		}
		if x != nil {
			// each series gets its own copy so no two series alias one slice
			s.X = append([]any(nil), x...)
		}
		series = append(series, s)
	}
	return series, nil
}

func checkColumns(src Source, req Request) error {
	known := make(map[string]bool)
	for _, n := range src.Names() {
		known[n] = true
	}
	if req.Kind.RequiresX() && !known[req.X] {
		return &ColumnError{Name: req.X, Role: "x"}
	}
	for _, name := range req.Y {
		if !known[name] {
			return &ColumnError{Name: name, Role: "y"}
		}
	}
	return nil
}
