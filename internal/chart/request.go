package chart

// Request is a validated plot selection. Build it with NewRequest.
type Request struct {
	Kind      Kind
	X         string   // empty when Kind does not use an X axis
	Y         []string // selection order drives series and panel order
	Secondary []string // subset of Y drawn on the secondary axis
	Subplots  bool
}

// NewRequest validates raw selections and normalizes the options that do not
// apply to the chosen kind. Inputs are copied, never retained.
//
// Secondary selections survive only for kinds that support a second axis and
// when more than one column is plotted; subplots likewise need several columns
// and a non-distribution kind. When both survive, subplots win.
func NewRequest(kind Kind, x string, y, secondary []string, subplots bool) (Request, error) {
	if !kind.Valid() {
		return Request{}, &ValidationError{Field: "kind", Err: ErrUnknownKind}
	}
	if len(y) == 0 {
		return Request{}, &ValidationError{Field: "y", Err: ErrEmptySelection}
	}
	if kind.RequiresX() && x == "" {
		return Request{}, &ValidationError{Field: "x", Err: ErrMissingAxis}
	}

	req := Request{
		Kind: kind,
		Y:    append([]string(nil), y...),
	}
	if kind.RequiresX() {
		req.X = x
	}
	req.Subplots = subplots && len(y) > 1 && kind.SupportsSubplots()
	if !req.Subplots && kind.SupportsSecondary() && len(y) > 1 {
		req.Secondary = restrictTo(secondary, y)
	}
	return req, nil
}

// IsSecondary reports whether the named Y column was assigned to the secondary axis.
func (r Request) IsSecondary(name string) bool {
	for _, s := range r.Secondary {
		if s == name {
			return true
		}
	}
	return false
}

// restrictTo returns the members of sel that appear in set, in set order, without duplicates.
func restrictTo(sel, set []string) []string {
	if len(sel) == 0 {
		return nil
	}
	want := make(map[string]bool, len(sel))
	for _, s := range sel {
		want[s] = true
	}
	var out []string
	for _, s := range set {
		if want[s] {
			out = append(out, s)
			delete(want, s)
		}
	}
	return out
}
