package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/minofall/mino"
)

// renderDebugUI draws the Dear ImGui overlay with board and piece state.
// Called between the backend's BeginFrame and EndFrame.
func (g *Game) renderDebugUI() {
	imgui.SetNextWindowPosV(imgui.NewVec2(float32(BoardOffsetX+BoardWidth*CellSize+20), BoardOffsetY),
		imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(170, 220), imgui.CondOnce)

	if imgui.BeginV("Board", nil, 0) {
		imgui.Text(fmt.Sprintf("Pieces: %d", g.piecesLocked))
		imgui.Text(fmt.Sprintf("Lines: %d", g.linesCleared))
		imgui.Text(fmt.Sprintf("Settled: %d", g.board.Len()))
		imgui.Separator()

		if g.active != nil && g.active.State() == mino.Active {
			imgui.Text(fmt.Sprintf("State: %s", g.active.State()))
			imgui.Text(fmt.Sprintf("Rotation: %d", g.active.Rotation()))
			origin := g.active.Block(0).Position()
			imgui.Text(fmt.Sprintf("Block 0: r%d c%d", origin.Row, origin.Col))
			imgui.Text(fmt.Sprintf("Ghost: %d rows", g.ghostDistance()))
		} else if g.gameOver {
			imgui.Text("Game over")
		}

		imgui.End()
	}
}
