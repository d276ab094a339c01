package engine

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindJ
	KindL
	KindS
	KindZ
	KindT
)

// NumKinds is the size of one bag.
const NumKinds = 7

// CellsPerPiece is the number of cells in every kind.
const CellsPerPiece = 4

// canonical layouts at rotation 0, relative to the pivot.
var canonical = [NumKinds][CellsPerPiece]Point{
	KindI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindJ: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	KindL: {{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	KindS: {{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
	KindZ: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
}

var orientations = [NumKinds]int{
	KindI: 2,
	KindO: 1,
	KindJ: 4,
	KindL: 4,
	KindS: 2,
	KindZ: 2,
	KindT: 4,
}

var kindColors = [NumKinds]Color{
	KindI: RGB(0, 240, 240),
	KindO: RGB(240, 240, 0),
	KindJ: RGB(0, 80, 240),
	KindL: RGB(240, 160, 0),
	KindS: RGB(0, 220, 0),
	KindZ: RGB(240, 0, 0),
	KindT: RGB(160, 0, 240),
}

var kindNames = [NumKinds]string{"I", "O", "J", "L", "S", "Z", "T"}

// offsetTable[kind][rotation] is filled once from the canonical layouts.
var offsetTable [NumKinds][4][CellsPerPiece]Point

func init() {
	for k := range NumKinds {
		cells := canonical[k]
		for r := range 4 {
			offsetTable[k][r] = cells
			for i := range cells {
				// Clockwise quarter turn with Y pointing down.
				cells[i] = Point{X: -cells[i].Y, Y: cells[i].X}
			}
		}
	}
}

// AllKinds returns every kind in cycle order.
func AllKinds() []Kind {
	return []Kind{KindI, KindO, KindJ, KindL, KindS, KindZ, KindT}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() Color {
	if !k.Valid() {
		return Empty
	}
	return kindColors[k]
}

// Orientations returns how many distinct rotations the kind has.
func (k Kind) Orientations() int {
	if !k.Valid() {
		return 1
	}
	return orientations[k]
}

// NormalizeRotation reduces rotation modulo the kind's orientation count.
// Negative indices wrap.
func (k Kind) NormalizeRotation(rotation int) int {
	n := k.Orientations()
	return ((rotation % n) + n) % n
}

// Offsets returns the four pivot-relative cells of kind at rotation.
func Offsets(kind Kind, rotation int) [CellsPerPiece]Point {
	if !kind.Valid() {
		return [CellsPerPiece]Point{}
	}
	return offsetTable[kind][kind.NormalizeRotation(rotation)]
}

// Bounds returns the min and max corner of the kind's cells at rotation.
func Bounds(kind Kind, rotation int) (lo, hi Point) {
	cells := Offsets(kind, rotation)
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi
}
