package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, in the order the random walk partitions its samples
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// DirectionFromSample maps a uniform sample in [0,1) onto one of the four
// directions using equal quartiles: North, East, South, West.
// Samples outside the range are clamped into the first or last quartile.
func DirectionFromSample(sample float64) Direction {
	switch {
	case sample < 0.25:
		return North
	case sample < 0.5:
		return East
	case sample < 0.75:
		return South
	default:
		return West
	}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}


// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Stride returns the offsets of a move of n cells in this direction
func (d Direction) Stride(n int) (rowDelta, colDelta int) {
	rowDelta, colDelta = d.Delta()
	return rowDelta * n, colDelta * n
}
