package grid

import "fmt"

// PropertyLayer is a named sheet of per-cell float64 data sized to a grid. It
// carries environmental state (terrain, fuel, resources) separately from
// agent occupancy, so models can read and write cell properties without
// touching the space itself.
type PropertyLayer struct {
	name   string
	width  int
	height int
	values []float64
}

// NewPropertyLayer creates a width x height layer with every value set to
// initial.
func NewPropertyLayer(name string, width, height int, initial float64) *PropertyLayer {
	values := make([]float64, width*height)
	if initial != 0 {
		for i := range values {
			values[i] = initial
		}
	}
	return &PropertyLayer{name: name, width: width, height: height, values: values}
}

// Name returns the layer's name.
func (l *PropertyLayer) Name() string { return l.name }

// Width returns the number of columns.
func (l *PropertyLayer) Width() int { return l.width }

// Height returns the number of rows.
func (l *PropertyLayer) Height() int { return l.height }

func (l *PropertyLayer) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.height && c.Col >= 0 && c.Col < l.width
}

// Set writes the value at the given coordinate. Coordinates outside the layer
// are ignored.
func (l *PropertyLayer) Set(c Coord, v float64) {
	if l.inBounds(c) {
		l.values[c.Row*l.width+c.Col] = v
	}
}

// Value reads the value at the given coordinate; coordinates outside the
// layer read as 0.
func (l *PropertyLayer) Value(c Coord) float64 {
	if !l.inBounds(c) {
		return 0
	}
	return l.values[c.Row*l.width+c.Col]
}

// Apply sets every value to fn(coord, current). Useful for seeding a layer
// from a generator (noise, distance fields) in one pass.
func (l *PropertyLayer) Apply(fn func(c Coord, v float64) float64) {
	for row := 0; row < l.height; row++ {
		for col := 0; col < l.width; col++ {
			i := row*l.width + col
			l.values[i] = fn(Coord{Row: row, Col: col}, l.values[i])
		}
	}
}

// AttachLayer registers a property layer on the grid. It fails if a layer
// with the same name is already attached or the layer's dimensions do not
// match the grid's.
func (g *Grid) AttachLayer(layer *PropertyLayer) error {
	if _, exists := g.layers[layer.Name()]; exists {
		return fmt.Errorf("property layer %q already attached", layer.Name())
	}
	if layer.Width() != g.width || layer.Height() != g.height {
		return fmt.Errorf("property layer %q is %dx%d, grid is %dx%d",
			layer.Name(), layer.Width(), layer.Height(), g.width, g.height)
	}
	g.layers[layer.Name()] = layer
	return nil
}

// RemoveLayer detaches the named property layer. It fails if no such layer is
// attached.
func (g *Grid) RemoveLayer(name string) error {
	if _, exists := g.layers[name]; !exists {
		return fmt.Errorf("property layer %q not attached", name)
	}
	delete(g.layers, name)
	return nil
}

// Layer returns the named property layer.
func (g *Grid) Layer(name string) (*PropertyLayer, bool) {
	layer, ok := g.layers[name]
	return layer, ok
}

// LayerValue reads the named layer at the given coordinate. Missing layers
// read as 0.
func (g *Grid) LayerValue(name string, c Coord) float64 {
	layer, ok := g.layers[name]
	if !ok {
		return 0
	}
	return layer.Value(c)
}
