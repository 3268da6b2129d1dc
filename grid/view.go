package grid

// View is a square sensor snapshot centered on an agent. The side length is
// always 2*Radius+1. Cells that fall outside the true grid are reported as
// TerrainObstacle by the environment, so a view never contains unknown cells.
type View struct {
	// Radius is the sensing radius the view was captured with.
	Radius int

	// Cells is indexed [row][column], row 0 being Radius cells above the
	// agent and column 0 being Radius cells to its left.
	Cells [][]Terrain
}

// NewView allocates an empty view of the given radius.
func NewView(radius int) View {
	side := 2*radius + 1
	cells := make([][]Terrain, side)
	for i := range cells {
		cells[i] = make([]Terrain, side)
	}
	return View{Radius: radius, Cells: cells}
}

// Side returns the side length of the view.
func (v View) Side() int {
	return 2*v.Radius + 1
}

// At returns the terrain at offset (dx, dy) from the view center, where both
// offsets range over [-Radius, Radius].
func (v View) At(dx, dy int) Terrain {
	return v.Cells[dy+v.Radius][dx+v.Radius]
}

// Set writes the terrain at offset (dx, dy) from the view center.
func (v View) Set(dx, dy int, t Terrain) {
	v.Cells[dy+v.Radius][dx+v.Radius] = t
}
