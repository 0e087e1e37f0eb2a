package engine

import (
	"math/rand"
	"strings"
	"testing"

	"minewalk/board"
	"minewalk/board/boardtest"
	"minewalk/player"
	"minewalk/types"
)

type mockRenderer struct {
	title  string
	width  int
	height int
	clears int
	draws  int
	lines  []types.Line
}

func (m *mockRenderer) SetTitle(title string) { m.title = title }

func (m *mockRenderer) SquareGlyph(status types.Status) string {
	switch status {
	case types.Mine:
		return "<>"
	case types.Debris:
		return "XX"
	}
	return "  "
}

func (m *mockRenderer) Size() (int, int) { return m.width, m.height }

func (m *mockRenderer) Clear() { m.clears++ }

func (m *mockRenderer) Draw(lines []types.Line) {
	m.draws++
	m.lines = lines
}

func (m *mockRenderer) text() string {
	var sb strings.Builder
	for _, l := range m.lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newTestEngine(src rand.Source, difficulty float64, lives, row int) (*GameEngine, *mockRenderer) {
	out := &mockRenderer{width: 120, height: 35}
	e := New(out, board.New(src), player.New())
	e.Init(GameConfig{
		Title:            "JUST FOR FUN :)",
		DifficultyFactor: difficulty,
		StartLives:       lives,
		StartRow:         row,
	})
	return e, out
}

// mined returns an engine on a 16x16 field with mines at the given squares.
func mined(lives, row int, mines ...types.Position) (*GameEngine, *mockRenderer) {
	return newTestEngine(boardtest.Layout(BoardSize, BoardSize, mines...), boardtest.Difficulty, lives, row)
}

func TestInitResetsGame(t *testing.T) {
	e, out := newTestEngine(rand.NewSource(1), 0.1, 5, 1)
	if e.MoveCounter() != 0 {
		t.Fatalf("MoveCounter = %d, want 0", e.MoveCounter())
	}
	if e.LivesRemaining() != 5 {
		t.Fatalf("LivesRemaining = %d, want 5", e.LivesRemaining())
	}
	if e.State() != types.NotStarted {
		t.Fatalf("State = %v, want not started", e.State())
	}
	if e.Position() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, want (0,0)", e.Position())
	}
	if e.DesiredStartRow() != "1" {
		t.Fatalf("DesiredStartRow = %q, want 1", e.DesiredStartRow())
	}
	if out.title != "JUST FOR FUN :)" {
		t.Fatalf("title = %q", out.title)
	}
	if out.draws != 1 || out.clears != 1 {
		t.Fatalf("draws = %d clears = %d, want 1 each", out.draws, out.clears)
	}
}

func TestMoveBeforeStartIgnored(t *testing.T) {
	e, out := newTestEngine(rand.NewSource(1), 0, 5, 1)
	draws := out.draws
	if e.TryMove(types.East) {
		t.Fatal("move before start should not be permitted")
	}
	if e.MoveCounter() != 0 {
		t.Fatalf("MoveCounter = %d, want 0", e.MoveCounter())
	}
	if out.draws != draws {
		t.Fatal("ignored move should not redraw")
	}
}

func TestCrossEmptyField(t *testing.T) {
	e, _ := newTestEngine(rand.NewSource(1), 0, 5, 1)

	e.ConfirmDesiredStartPosition()
	if e.State() != types.FreeMovement {
		t.Fatalf("State = %v, want playing", e.State())
	}
	if e.Position() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, want (0,0)", e.Position())
	}
	if e.MoveCounter() != 1 {
		t.Fatalf("MoveCounter = %d, want 1", e.MoveCounter())
	}

	for i := 0; i < 15; i++ {
		if !e.TryMove(types.East) {
			t.Fatalf("move %d east rejected", i+1)
		}
	}
	if e.Position() != (types.Position{X: 15, Y: 0}) {
		t.Fatalf("Position = %+v, want (15,0)", e.Position())
	}
	if e.State() != types.Winner {
		t.Fatalf("State = %v, want winner", e.State())
	}
	if e.MoveCounter() != 16 {
		t.Fatalf("MoveCounter = %d, want 16", e.MoveCounter())
	}

	// the game is over
	if e.TryMove(types.West) {
		t.Fatal("move after winning should not be permitted")
	}
}

func TestAllMinesLoseOnEntry(t *testing.T) {
	e, _ := newTestEngine(rand.NewSource(1), 1, 1, 1)

	e.ConfirmDesiredStartPosition()
	if e.State() != types.Loser {
		t.Fatalf("State = %v, want loser", e.State())
	}
	if e.LivesRemaining() != 0 {
		t.Fatalf("LivesRemaining = %d, want 0", e.LivesRemaining())
	}
	if e.MoveCounter() != 1 {
		t.Fatalf("MoveCounter = %d, want 1", e.MoveCounter())
	}
	if e.Position() != (types.Position{X: -1, Y: -1}) {
		t.Fatalf("Position = %+v, want (-1,-1)", e.Position())
	}
}

func TestEntryOntoMineBouncesBack(t *testing.T) {
	e, _ := mined(3, 4, types.Position{X: 0, Y: 3})

	e.ConfirmDesiredStartPosition()
	if e.State() != types.FreeMovement {
		t.Fatalf("State = %v, want playing", e.State())
	}
	if e.Position() != (types.Position{X: -1, Y: -1}) {
		t.Fatalf("Position = %+v, want (-1,-1)", e.Position())
	}
	if e.LivesRemaining() != 2 {
		t.Fatalf("LivesRemaining = %d, want 2", e.LivesRemaining())
	}
	if e.MoveCounter() != 1 {
		t.Fatalf("MoveCounter = %d, want 1", e.MoveCounter())
	}
	if e.DesiredStartRow() != "" {
		t.Fatalf("DesiredStartRow = %q, want it cleared", e.DesiredStartRow())
	}

	// nothing can move from the sentinel
	for _, d := range []types.Direction{types.North, types.East, types.South, types.West} {
		if e.TryMove(d) {
			t.Fatalf("move %v from sentinel should be rejected", d)
		}
	}

	// retry on the same row: debris sends the player back again, for free
	e.AppendStartRowDigit('4')
	e.ConfirmDesiredStartPosition()
	if e.Position() != (types.Position{X: -1, Y: -1}) {
		t.Fatalf("Position = %+v, want (-1,-1)", e.Position())
	}
	if e.LivesRemaining() != 2 || e.MoveCounter() != 1 {
		t.Fatalf("lives = %d moves = %d, want 2 and 1", e.LivesRemaining(), e.MoveCounter())
	}

	// another row works
	e.AppendStartRowDigit('5')
	e.ConfirmDesiredStartPosition()
	if e.Position() != (types.Position{X: 0, Y: 4}) {
		t.Fatalf("Position = %+v, want (0,4)", e.Position())
	}
	if e.MoveCounter() != 2 {
		t.Fatalf("MoveCounter = %d, want 2", e.MoveCounter())
	}
}

func TestMineHitOnBoard(t *testing.T) {
	e, _ := mined(3, 1, types.Position{X: 1, Y: 0})
	e.ConfirmDesiredStartPosition()

	if !e.TryMove(types.East) {
		t.Fatal("mine hit while on the board should be a permitted move")
	}
	if e.Position() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, player should stay put", e.Position())
	}
	if e.LivesRemaining() != 2 {
		t.Fatalf("LivesRemaining = %d, want 2", e.LivesRemaining())
	}
	if e.MoveCounter() != 2 {
		t.Fatalf("MoveCounter = %d, want 2", e.MoveCounter())
	}

	// stepping onto the debris is free and leaves the player in place
	if !e.TryMove(types.East) {
		t.Fatal("move onto debris should be permitted")
	}
	if e.Position() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, want (0,0)", e.Position())
	}
	if e.MoveCounter() != 2 || e.LivesRemaining() != 2 {
		t.Fatalf("moves = %d lives = %d, want 2 and 2", e.MoveCounter(), e.LivesRemaining())
	}

	// going round the debris counts as usual
	e.TryMove(types.North)
	e.TryMove(types.East)
	if e.Position() != (types.Position{X: 1, Y: 1}) {
		t.Fatalf("Position = %+v, want (1,1)", e.Position())
	}
	if e.MoveCounter() != 4 || e.LivesRemaining() != 2 {
		t.Fatalf("moves = %d lives = %d, want 4 and 2", e.MoveCounter(), e.LivesRemaining())
	}
	if !e.TryMove(types.South) || e.Position() != (types.Position{X: 1, Y: 1}) {
		t.Fatalf("Position = %+v, debris from the north should leave the player at (1,1)", e.Position())
	}
}

func TestDebrisInLastColumnDoesNotWin(t *testing.T) {
	e, _ := mined(3, 1, types.Position{X: BoardSize - 1, Y: 0})
	e.ConfirmDesiredStartPosition()
	for i := 1; i < BoardSize-1; i++ {
		if !e.TryMove(types.East) {
			t.Fatalf("step %d east should be permitted", i)
		}
	}
	if e.Position() != (types.Position{X: BoardSize - 2, Y: 0}) {
		t.Fatalf("Position = %+v, want (%d,0)", e.Position(), BoardSize-2)
	}

	if !e.TryMove(types.East) {
		t.Fatal("mine hit while on the board should be a permitted move")
	}
	if !e.TryMove(types.East) {
		t.Fatal("move onto debris should be permitted")
	}
	if e.Position() != (types.Position{X: BoardSize - 2, Y: 0}) {
		t.Fatalf("Position = %+v, want (%d,0)", e.Position(), BoardSize-2)
	}
	if e.State() != types.FreeMovement {
		t.Fatalf("State = %v, want playing", e.State())
	}
	if e.LivesRemaining() != 2 || e.MoveCounter() != BoardSize {
		t.Fatalf("lives = %d moves = %d, want 2 and %d", e.LivesRemaining(), e.MoveCounter(), BoardSize)
	}

	// the last column is still reachable around the debris
	e.TryMove(types.North)
	e.TryMove(types.East)
	if e.State() != types.Winner {
		t.Fatalf("State = %v, want winner", e.State())
	}
}

func TestBoundaryMoveRejected(t *testing.T) {
	e, out := newTestEngine(rand.NewSource(1), 0, 5, 1)
	e.ConfirmDesiredStartPosition()
	draws := out.draws

	if e.TryMove(types.South) {
		t.Fatal("move off the south edge should be rejected")
	}
	if e.TryMove(types.West) {
		t.Fatal("move off the west edge should be rejected")
	}
	if e.Position() != (types.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, want (0,0)", e.Position())
	}
	if e.MoveCounter() != 1 || e.State() != types.FreeMovement {
		t.Fatalf("moves = %d state = %v, want 1 and playing", e.MoveCounter(), e.State())
	}
	if out.draws != draws {
		t.Fatal("rejected move should not redraw")
	}

	if !e.TryMove(types.North) {
		t.Fatal("move north should be permitted")
	}
	if e.Position() != (types.Position{X: 0, Y: 1}) {
		t.Fatalf("Position = %+v, want (0,1)", e.Position())
	}
}

func TestLastLifeLost(t *testing.T) {
	e, _ := mined(2, 1, types.Position{X: 1, Y: 0}, types.Position{X: 0, Y: 1})
	e.ConfirmDesiredStartPosition()

	e.TryMove(types.East)
	if e.State() != types.FreeMovement || e.LivesRemaining() != 1 {
		t.Fatalf("state = %v lives = %d, want playing and 1", e.State(), e.LivesRemaining())
	}

	e.TryMove(types.North)
	if e.State() != types.Loser {
		t.Fatalf("State = %v, want loser", e.State())
	}
	if e.LivesRemaining() != 0 {
		t.Fatalf("LivesRemaining = %d, want 0", e.LivesRemaining())
	}
	if e.Position() != (types.Position{X: -1, Y: -1}) {
		t.Fatalf("Position = %+v, want (-1,-1)", e.Position())
	}
	if e.TryMove(types.East) {
		t.Fatal("move after losing should not be permitted")
	}
	e.AppendStartRowDigit('1')
	e.ConfirmDesiredStartPosition()
	if e.State() != types.Loser {
		t.Fatal("confirming a row after losing should do nothing")
	}
}

func TestConfirmInvalidRow(t *testing.T) {
	for _, row := range []string{"", "0", "17", "99"} {
		e, _ := newTestEngine(rand.NewSource(1), 0, 5, 0)
		for _, r := range row {
			e.AppendStartRowDigit(r)
		}
		e.ConfirmDesiredStartPosition()
		if e.State() != types.NotStarted {
			t.Errorf("row %q: State = %v, want not started", row, e.State())
		}
		if e.MoveCounter() != 0 {
			t.Errorf("row %q: MoveCounter = %d, want 0", row, e.MoveCounter())
		}
	}
}

func TestStartRowEditing(t *testing.T) {
	e, _ := newTestEngine(rand.NewSource(1), 0, 5, 0)

	if e.AppendStartRowDigit('x') {
		t.Fatal("non digit accepted")
	}
	e.AppendStartRowDigit('1')
	e.AppendStartRowDigit('2')
	if e.AppendStartRowDigit('3') {
		t.Fatal("third digit accepted")
	}
	if e.DesiredStartRow() != "12" {
		t.Fatalf("DesiredStartRow = %q, want 12", e.DesiredStartRow())
	}
	e.DeleteStartRowDigit()
	if e.DesiredStartRow() != "1" {
		t.Fatalf("DesiredStartRow = %q, want 1", e.DesiredStartRow())
	}
	e.AppendStartRowDigit('6')

	e.ConfirmDesiredStartPosition()
	if e.Position() != (types.Position{X: 0, Y: 15}) {
		t.Fatalf("Position = %+v, want (0,15)", e.Position())
	}

	// on the field the row cannot be changed or re-confirmed
	if e.AppendStartRowDigit('1') || e.DeleteStartRowDigit() {
		t.Fatal("start row edited while on the field")
	}
	e.TryMove(types.East)
	e.ConfirmDesiredStartPosition()
	if e.Position() != (types.Position{X: 1, Y: 15}) {
		t.Fatalf("Position = %+v, confirm should not move the player", e.Position())
	}
}

func TestResetAfterGameOver(t *testing.T) {
	e, _ := newTestEngine(rand.NewSource(1), 1, 1, 1)
	e.ConfirmDesiredStartPosition()
	if e.State() != types.Loser {
		t.Fatalf("State = %v, want loser", e.State())
	}
	id := e.GameID()

	e.Reset()
	if e.State() != types.NotStarted {
		t.Fatalf("State = %v, want not started", e.State())
	}
	if e.LivesRemaining() != 1 || e.MoveCounter() != 0 {
		t.Fatalf("lives = %d moves = %d, want 1 and 0", e.LivesRemaining(), e.MoveCounter())
	}
	if e.GameID() == id {
		t.Fatal("reset should start a new game id")
	}
}

func TestViewWhilePlaying(t *testing.T) {
	e, out := mined(5, 3, types.Position{X: 4, Y: 4})
	e.ConfirmDesiredStartPosition()

	// 4 title lines + 16 rows + 2 borders + 2 legends
	if len(out.lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(out.lines))
	}
	if !strings.Contains(out.lines[1].String(), "<> JUST FOR FUN :) <>") {
		t.Fatalf("title line = %q", out.lines[1].String())
	}
	if out.lines[1][len(out.lines[1])-1].Color != types.ColorTitle {
		t.Fatal("title should use the title colour")
	}

	text := out.text()
	for _, want := range []string{
		"Navigate from West to East using the arrow keys",
		"Position: A3",
		"Lives remaining: 5",
		"Moves: 1",
		"|>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("view is missing %q", want)
		}
	}
	if strings.Count(text, "<>") != 2 {
		t.Error("mines should be hidden while playing")
	}

	// rows 16 down to 10 have two digit legends on both sides
	for i := 6; i <= 12; i++ {
		if out.lines[i].Width() != out.lines[6].Width() {
			t.Errorf("line %d width %d, want %d", i, out.lines[i].Width(), out.lines[6].Width())
		}
	}
	if out.lines[4].Width() != out.lines[23].Width() {
		t.Errorf("legend lines differ in width: %d and %d", out.lines[4].Width(), out.lines[23].Width())
	}
}

func TestViewShowsMinesWhenOver(t *testing.T) {
	e, out := mined(1, 1, types.Position{X: 1, Y: 0}, types.Position{X: 7, Y: 7})
	e.ConfirmDesiredStartPosition()
	e.TryMove(types.East)
	if e.State() != types.Loser {
		t.Fatalf("State = %v, want loser", e.State())
	}

	text := out.text()
	for _, want := range []string{"GAME OVER", "Press ESC to quit", "Mines on the field: 2", "<>", "XX"} {
		if !strings.Contains(text, want) {
			t.Errorf("view is missing %q", want)
		}
	}
	if strings.Contains(text, "Lives remaining") {
		t.Error("lives should not be shown after the game")
	}
}

func TestViewPromptsForRow(t *testing.T) {
	e, out := newTestEngine(rand.NewSource(1), 0, 5, 0)
	e.AppendStartRowDigit('7')
	if !strings.Contains(out.text(), "Starting row (1-16), then Enter: 7_") {
		t.Fatalf("view is missing the start row prompt:\n%s", out.text())
	}
}

func TestViewNarrowViewport(t *testing.T) {
	out := &mockRenderer{width: 10, height: 10}
	e := New(out, board.New(rand.NewSource(1)), player.New())
	e.Init(DefaultConfig())
	if len(out.lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(out.lines))
	}
}

func TestCenterText(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"abcdef", 4, "abcd"},
		{"", 3, "   "},
	}
	for _, c := range cases {
		if got := centerText(c.text, c.width); got != c.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", c.text, c.width, got, c.want)
		}
	}
}

type wideRenderer struct {
	mockRenderer
}

func (w *wideRenderer) SquareGlyph(status types.Status) string {
	if status == types.Debris {
		return "⬛"
	}
	return w.mockRenderer.SquareGlyph(status)
}

func TestViewAlignsWideGlyphs(t *testing.T) {
	out := &wideRenderer{mockRenderer{width: 120, height: 35}}
	e := New(out, board.New(boardtest.Layout(BoardSize, BoardSize, types.Position{X: 1, Y: 0})), player.New())
	e.Init(GameConfig{Title: "wide", DifficultyFactor: boardtest.Difficulty, StartLives: 1, StartRow: 1})
	e.ConfirmDesiredStartPosition()
	e.TryMove(types.East)
	if e.State() != types.Loser {
		t.Fatalf("State = %v, want game over", e.State())
	}

	// row 1 holds the debris, row 2 is plain
	if !strings.Contains(out.lines[21].String(), "⬛") {
		t.Fatalf("row 1 = %q, want debris glyph", out.lines[21].String())
	}
	if out.lines[21].Width() != out.lines[20].Width() {
		t.Errorf("row widths differ: %d and %d", out.lines[21].Width(), out.lines[20].Width())
	}
}
