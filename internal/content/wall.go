package content

// WallColumns is the width of the portfolio image wall.
const WallColumns = 3

// Tile is a picture placed on the portfolio wall.
type Tile struct {
	Picture
	Index int
	Row   int
	Col   int
	// Center is hidden behind the zoom overlay until the intro finishes.
	Center bool
	// Drifts marks the middle column, which slides down while scrolling.
	Drifts bool
}

// Wall lays pics out row by row on a WallColumns wide grid.
func Wall(pics []Picture) []Tile {
	if len(pics) == 0 {
		return nil
	}
	rows := (len(pics) + WallColumns - 1) / WallColumns
	centerRow, centerCol := rows/2, WallColumns/2
	tiles := make([]Tile, len(pics))
	for i, p := range pics {
		row, col := i/WallColumns, i%WallColumns
		tiles[i] = Tile{
			Picture: p,
			Index:   i,
			Row:     row,
			Col:     col,
			Center:  row == centerRow && col == centerCol,
			Drifts:  col == centerCol,
		}
	}
	return tiles
}
