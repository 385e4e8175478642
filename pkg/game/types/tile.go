package types

// TileType is a map cell symbol.
type TileType string

const (
	TileWall  TileType = "#"
	TileBrick TileType = "."
	TileEmpty TileType = " "
	TileSpawn TileType = "p"
)

// ParseTileType maps unknown symbols to TileEmpty.
func ParseTileType(symbol string) TileType {
	switch TileType(symbol) {
	case TileWall, TileBrick, TileEmpty, TileSpawn:
		return TileType(symbol)
	default:
		return TileEmpty
	}
}

// Grid is the parsed map, indexed [row][col].
type Grid [][]TileType

func ParseGrid(symbols [][]string) Grid {
	grid := make(Grid, 0, len(symbols))
	for _, row := range symbols {
		tiles := make([]TileType, len(row))
		for i, symbol := range row {
			tiles[i] = ParseTileType(symbol)
		}
		grid = append(grid, tiles)
	}
	return grid
}

func (g Grid) Rows() int {
	return len(g)
}

// Cols is the width of the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}
