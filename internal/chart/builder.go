// Package chart turns a dataset and a plot selection into a renderer-agnostic
// chart specification.
package chart

// Option configures a Builder.
type Option func(*Builder)

// WithPanelHeight overrides the per-panel height used for stacked subplots.
// Non-positive values keep the default.
func WithPanelHeight(h int) Option {
	return func(b *Builder) {
		if h > 0 {
			b.panelHeight = h
		}
	}
}

// Builder assembles Specs. The zero value is not usable; call NewBuilder.
type Builder struct {
	panelHeight int
}

// NewBuilder returns a Builder with default settings adjusted by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{panelHeight: PanelHeightPerPanel}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build validates req against src and returns the chart specification.
// It never mutates src or req and returns no partial Spec on error.
func (b *Builder) Build(src Source, req Request) (*Spec, error) {
	norm, err := NewRequest(req.Kind, req.X, req.Y, req.Secondary, req.Subplots)
	if err != nil {
		return nil, err
	}
	series, err := BuildSeries(src, norm)
	if err != nil {
		return nil, err
	}
	placed, layout := compose(norm, series, b.panelHeight)
	return &Spec{Series: placed, Layout: layout}, nil
}

// Build is NewBuilder().Build(src, req).
func Build(src Source, req Request) (*Spec, error) {
	return NewBuilder().Build(src, req)
}
