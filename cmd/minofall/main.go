package main

import (
	"image/color"
	"math/rand/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/minofall/catalog"
	"github.com/plus3/minofall/mino"
	"github.com/plus3/minofall/pile"
)

const (
	BoardWidth   = 10
	BoardHeight  = 20
	CellSize     = 30
	BoardOffsetX = 40
	BoardOffsetY = 40
	ScreenWidth  = BoardOffsetX*2 + BoardWidth*CellSize + 200
	ScreenHeight = BoardOffsetY*2 + BoardHeight*CellSize

	fallInterval = 0.5
	softInterval = 0.05
	repeatDelay  = 0.2
	repeatRate   = 0.05
)

var colours = map[mino.Colour]color.RGBA{
	mino.ColourCyan:   {80, 199, 239, 255},
	mino.ColourYellow: {247, 211, 8, 255},
	mino.ColourPurple: {173, 77, 156, 255},
	mino.ColourGreen:  {66, 182, 66, 255},
	mino.ColourRed:    {239, 98, 77, 255},
	mino.ColourBlue:   {90, 101, 173, 255},
	mino.ColourOrange: {239, 121, 33, 255},
}

// Game runs a playable demo of the mino core: the board, bag, gravity and
// input all live out here, the piece logic stays in the library.
type Game struct {
	board *pile.Board
	defs  []mino.PieceDef
	rng   *rand.Rand

	active *mino.Shape
	bag    []int

	fallTimer float32
	leftTime  float32
	rightTime float32
	downTime  float32

	piecesLocked int
	linesCleared int
	gameOver     bool

	imguiBackend *ebitenbackend.EbitenBackend
}

func NewGame(backend *ebitenbackend.EbitenBackend) *Game {
	return &Game{
		board:        pile.New(BoardWidth, BoardHeight),
		defs:         catalog.Default(),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		imguiBackend: backend,
	}
}

func (g *Game) reset() {
	g.board.Reset()
	g.active = nil
	g.bag = g.bag[:0]
	g.fallTimer = 0
	g.piecesLocked = 0
	g.linesCleared = 0
	g.gameOver = false
}

// nextDef draws from a shuffled bag so every piece kind appears once per
// cycle.
func (g *Game) nextDef() mino.PieceDef {
	if len(g.bag) == 0 {
		g.bag = make([]int, len(g.defs))
		for i := range g.bag {
			g.bag[i] = i
		}
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	def := g.defs[g.bag[0]]
	g.bag = g.bag[1:]
	return def
}

func (g *Game) spawn() {
	def := g.nextDef()
	origin := mino.Point{Row: 0, Col: spawnCol(def, BoardWidth)}
	s := def.Spawn(g.board, origin)

	for i := 0; i < s.Len(); i++ {
		if g.board.Occupant(s.Block(i).Position()) != mino.NoShape {
			g.gameOver = true
			return
		}
	}

	s.OnLock(func(locked *mino.Shape) {
		g.board.Absorb(locked)
		g.piecesLocked++
		g.linesCleared += g.board.ClearFull()
	})
	g.active = s
	g.fallTimer = 0
}

// spawnCol centers the piece horizontally.
func spawnCol(def mino.PieceDef, width int) int {
	minCol, maxCol := def.Cells[0].Col, def.Cells[0].Col
	for _, c := range def.Cells[1:] {
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return (width-(maxCol-minCol+1))/2 - minCol
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.imguiBackend.BeginFrame()
	g.renderDebugUI()
	g.imguiBackend.EndFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if g.gameOver {
		return nil
	}

	if g.active == nil || g.active.State() == mino.Joined {
		g.spawn()
		if g.gameOver {
			return nil
		}
	}

	const dt = 1.0 / 60.0
	g.handleInput(dt)
	if g.active.State() == mino.Joined {
		return nil
	}

	g.fallTimer += dt
	if g.fallTimer >= fallInterval {
		g.fallTimer = 0
		g.active.MoveDown()
	}
	return nil
}

func (g *Game) handleInput(dt float32) {
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.leftTime = 0
		g.active.MoveLeft()
	} else if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.leftTime += dt
		if g.leftTime > repeatDelay {
			g.leftTime -= repeatRate
			g.active.MoveLeft()
		}
	} else {
		g.leftTime = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.rightTime = 0
		g.active.MoveRight()
	} else if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.rightTime += dt
		if g.rightTime > repeatDelay {
			g.rightTime -= repeatRate
			g.active.MoveRight()
		}
	} else {
		g.rightTime = 0
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.downTime += dt
		if g.downTime > softInterval {
			g.downTime = 0
			g.active.MoveDown()
		}
	} else {
		g.downTime = 0
	}

	if g.active.State() == mino.Joined {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.active.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.active.Drop()
	}
}

// ghostDistance returns how many rows the active shape would fall if hard
// dropped right now. Pure board queries; the shape itself is not touched.
func (g *Game) ghostDistance() int {
	dist := 0
	for {
		for i := 0; i < g.active.Len(); i++ {
			p := g.active.Block(i).Position()
			p.Row += dist + 1
			if !g.board.InBounds(p) || g.board.Occupant(p) != mino.NoShape {
				return dist
			}
		}
		dist++
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 18, 24, 255})

	vector.StrokeRect(screen,
		BoardOffsetX-2, BoardOffsetY-2,
		BoardWidth*CellSize+4, BoardHeight*CellSize+4,
		2, color.RGBA{120, 120, 130, 255}, false)

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cell, ok := g.board.At(mino.Point{Row: row, Col: col})
			if !ok {
				continue
			}
			g.drawCell(screen, row, col, colours[cell.Colour])
		}
	}

	if g.active != nil && g.active.State() == mino.Active {
		ghost := g.ghostDistance()
		for i := 0; i < g.active.Len(); i++ {
			blk := g.active.Block(i)
			p := blk.Position()
			if ghost > 0 {
				g.drawCell(screen, p.Row+ghost, p.Col, color.RGBA{60, 60, 60, 60})
			}
			g.drawCell(screen, p.Row, p.Col, colours[blk.Colour()])
		}
	}

	if g.gameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart",
			BoardOffsetX+40, BoardOffsetY+BoardHeight*CellSize/2)
	}

	g.imguiBackend.Draw(screen)
}

func (g *Game) drawCell(screen *ebiten.Image, row, col int, c color.RGBA) {
	x := float32(BoardOffsetX + col*CellSize)
	y := float32(BoardOffsetY + row*CellSize)
	vector.DrawFilledRect(screen, x, y, CellSize-1, CellSize-1, c, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("minofall", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	if err := ebiten.RunGame(NewGame(imguiBackend)); err != nil {
		panic(err)
	}
}
