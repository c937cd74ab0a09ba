package glide

import "math"

// Document is the scrollable content the engine drives.
type Document interface {
	// ScrollHeight is the full content extent along the scroll axis.
	ScrollHeight() float64
	// ClientHeight is the visible viewport extent.
	ClientHeight() float64
	// ScrollTop is the current native scroll offset.
	ScrollTop() float64
	// SetScrollTop moves the native scroll offset.
	SetScrollTop(y float64)
}

// AnchorResolver is implemented by documents with named scroll targets.
type AnchorResolver interface {
	Anchor(name string) (float64, bool)
}

// limitOf returns the maximum scroll offset of d.
func limitOf(d Document) float64 {
	if d == nil {
		return 0
	}
	return math.Max(0, d.ScrollHeight()-d.ClientHeight())
}

// Page is an in-memory Document with named anchors.
type Page struct {
	height   float64
	viewport float64
	top      float64
	anchors  map[string]float64
}

// NewPage creates a page with the given content and viewport heights.
func NewPage(height, viewport float64) *Page {
	return &Page{height: height, viewport: viewport, anchors: make(map[string]float64)}
}

// ScrollHeight returns the content height.
func (p *Page) ScrollHeight() float64 { return p.height }

// ClientHeight returns the viewport height.
func (p *Page) ClientHeight() float64 { return p.viewport }

// ScrollTop returns the scroll offset.
func (p *Page) ScrollTop() float64 { return p.top }

// SetScrollTop moves the scroll offset, clamped to the scrollable range.
func (p *Page) SetScrollTop(y float64) {
	p.top = clamp(y, 0, limitOf(p))
}

// Resize changes the content and viewport heights and re-clamps the offset.
func (p *Page) Resize(height, viewport float64) {
	p.height = height
	p.viewport = viewport
	p.SetScrollTop(p.top)
}

// SetAnchor registers a named offset, such as a section start.
func (p *Page) SetAnchor(name string, y float64) {
	p.anchors[name] = y
}

// Anchor resolves a named offset.
func (p *Page) Anchor(name string) (float64, bool) {
	y, ok := p.anchors[name]
	return y, ok
}

// Viewport returns the visible span of the page.
func (p *Page) Viewport() Span {
	return Span{Start: p.top, Size: p.viewport}
}
