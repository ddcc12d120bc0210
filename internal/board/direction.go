package board

// Direction is a ray or step direction, valued as the square-index delta of
// one step.
type Direction int8

const (
	NoDirection Direction = 0

	North Direction = 8
	South Direction = -8
	East  Direction = 1
	West  Direction = -1

	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West

	// Double steps, used for pawn double pushes.
	NorthNorth Direction = 2 * North
	SouthSouth Direction = 2 * South
	EastEast   Direction = 2 * East
	WestWest   Direction = 2 * West
)

var (
	// Directions lists the twelve step directions.
	Directions = [12]Direction{
		North, South, East, West,
		NorthEast, NorthWest, SouthEast, SouthWest,
		NorthNorth, SouthSouth, EastEast, WestWest,
	}

	// RayDirections are the eight directions a slider can travel.
	RayDirections = [8]Direction{
		North, South, East, West,
		NorthEast, NorthWest, SouthEast, SouthWest,
	}

	RookDirections   = [4]Direction{North, South, East, West}
	BishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
)

// IsIncreasing reports whether a step in d moves toward higher square indices.
func (d Direction) IsIncreasing() bool {
	return d > 0
}

// IsOrthogonal reports whether d runs along a rank or file.
func (d Direction) IsOrthogonal() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// IsDiagonal reports whether d runs along a diagonal.
func (d Direction) IsDiagonal() bool {
	switch d {
	case NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	}
	return false
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	case NorthNorth:
		return "NN"
	case SouthSouth:
		return "SS"
	case EastEast:
		return "EE"
	case WestWest:
		return "WW"
	}
	return "-"
}
