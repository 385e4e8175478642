package game

import (
	"image"
	"image/color"

	"github.com/cbodonnell/bomberman/client/fonts"
	gametypes "github.com/cbodonnell/bomberman/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	wallColor      = color.RGBA{90, 90, 100, 255}
	brickColor     = color.RGBA{150, 90, 50, 255}
	floorColor     = color.RGBA{40, 60, 40, 255}
	spawnColor     = color.RGBA{50, 75, 50, 255}
	bombColor      = color.RGBA{10, 10, 10, 255}
	fuseColor      = color.RGBA{255, 80, 0, 255}
	explosionColor = color.RGBA{255, 170, 0, 255}
	deadTint       = 0.35
)

// Board maps grid cells to screen pixels. The layout is recomputed when the
// map dimensions change or after Reset.
type Board struct {
	width, height int
	rows, cols    int
	tile          float32
	offsetX       float32
	offsetY       float32
}

func NewBoard(width, height int) *Board {
	return &Board{width: width, height: height}
}

// Reset forces the next Layout to recompute.
func (b *Board) Reset() {
	b.rows, b.cols = 0, 0
}

func (b *Board) Layout(grid gametypes.Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows == b.rows && cols == b.cols {
		return
	}
	b.rows, b.cols = rows, cols
	if rows == 0 || cols == 0 {
		b.tile = 0
		return
	}
	b.tile = min(float32(b.width)/float32(cols), float32(b.height)/float32(rows))
	b.offsetX = (float32(b.width) - b.tile*float32(cols)) / 2
	b.offsetY = (float32(b.height) - b.tile*float32(rows)) / 2
}

// Bounds is the board area on a screen with top pixels reserved for the HUD.
func (b *Board) Bounds(top int) image.Rectangle {
	return image.Rect(0, top, b.width, top+b.height)
}

func (b *Board) cell(x, y int) (float32, float32) {
	return b.offsetX + float32(x)*b.tile, b.offsetY + float32(y)*b.tile
}

func (b *Board) origin(dst *ebiten.Image) (float32, float32) {
	p := dst.Bounds().Min
	return float32(p.X), float32(p.Y)
}

func (b *Board) DrawTiles(dst *ebiten.Image, grid gametypes.Grid) {
	ox, oy := b.origin(dst)
	for y, row := range grid {
		for x, tile := range row {
			var c color.Color
			switch tile {
			case gametypes.TileWall:
				c = wallColor
			case gametypes.TileBrick:
				c = brickColor
			case gametypes.TileSpawn:
				c = spawnColor
			default:
				c = floorColor
			}
			px, py := b.cell(x, y)
			vector.DrawFilledRect(dst, ox+px, oy+py, b.tile, b.tile, c, false)
		}
	}
}

func (b *Board) DrawBombs(dst *ebiten.Image, bombs []gametypes.Bomb) {
	ox, oy := b.origin(dst)
	drawn := make(map[string]struct{}, len(bombs))
	for _, bomb := range bombs {
		if _, ok := drawn[bomb.Key()]; ok {
			continue
		}
		drawn[bomb.Key()] = struct{}{}
		px, py := b.cell(bomb.X, bomb.Y)
		cx, cy := ox+px+b.tile/2, oy+py+b.tile/2
		vector.DrawFilledCircle(dst, cx, cy, b.tile*0.35, bombColor, true)
		vector.DrawFilledCircle(dst, cx+b.tile*0.2, cy-b.tile*0.25, b.tile*0.08, fuseColor, true)
	}
}

// DrawExplosion fades the cells out as remaining goes from 1 to 0.
func (b *Board) DrawExplosion(dst *ebiten.Image, cells []gametypes.Coordinate, remaining float32) {
	ox, oy := b.origin(dst)
	c := explosionColor
	c.A = uint8(255 * remaining)
	for _, cell := range cells {
		px, py := b.cell(cell.X, cell.Y)
		vector.DrawFilledRect(dst, ox+px, oy+py, b.tile, b.tile, c, false)
	}
}

func (b *Board) DrawPlayers(dst *ebiten.Image, players []gametypes.Player, localID string) {
	ox, oy := b.origin(dst)
	for _, p := range players {
		c := color.RGBA{255, 255, 255, 255}
		if p.Color != nil {
			r, g, bl := p.Color.RGBA8()
			c = color.RGBA{r, g, bl, 255}
		}
		if !p.Alive {
			c = color.RGBA{uint8(float64(c.R) * deadTint), uint8(float64(c.G) * deadTint), uint8(float64(c.B) * deadTint), 255}
		}

		px, py := b.cell(p.X, p.Y)
		inset := b.tile * 0.15
		vector.DrawFilledRect(dst, ox+px+inset, oy+py+inset, b.tile-2*inset, b.tile-2*inset, c, false)
		if p.ID == localID {
			vector.StrokeRect(dst, ox+px+inset, oy+py+inset, b.tile-2*inset, b.tile-2*inset, 2, color.White, false)
		}
		text.Draw(dst, p.Name, fonts.SmallFont, int(ox+px), int(oy+py)-2, color.White)
	}
}
