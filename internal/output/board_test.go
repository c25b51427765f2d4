package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func monoTheme(t *testing.T) Theme {
	t.Helper()
	theme, err := ThemeByName("mono")
	if err != nil {
		t.Fatal(err)
	}
	return theme
}

func TestRenderBoard_Mono(t *testing.T) {
	board := chess.NewBoard()
	var buf bytes.Buffer
	err := RenderBoard(&buf, &board, RenderOptions{Theme: monoTheme(t), Coordinates: true})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 9)
	testutil.AssertEqual(t, lines[0], "8  r  n  b  q  k  b  n  r ")
	testutil.AssertEqual(t, lines[4], "4  .  .  .  .  .  .  .  . ")
	testutil.AssertEqual(t, lines[7], "1  R  N  B  Q  K  B  N  R ")
	testutil.AssertEqual(t, lines[8], "   a  b  c  d  e  f  g  h ")
}

func TestRenderBoard_Flip(t *testing.T) {
	board := chess.NewBoard()
	var buf bytes.Buffer
	err := RenderBoard(&buf, &board, RenderOptions{Theme: monoTheme(t), Coordinates: true, Flip: true})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "1  R  N  B  K  Q  B  N  R ")
	testutil.AssertEqual(t, lines[8], "   h  g  f  e  d  c  b  a ")
}

func TestRenderGame_HighlightsLastMove(t *testing.T) {
	g := engine.NewGame()
	g.Move(testutil.Pos(t, "e2"), testutil.Pos(t, "e4"))

	var buf bytes.Buffer
	if err := RenderGame(&buf, g, RenderOptions{Theme: monoTheme(t)}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[4], " .  .  .  . [P] .  .  . ")
	testutil.AssertEqual(t, lines[6], " P  P  P  P [.] P  P  P ")
}

func TestRenderBoard_Colour(t *testing.T) {
	theme, err := ThemeByName("classic")
	if err != nil {
		t.Fatal(err)
	}
	board := chess.NewBoard()

	var coloured bytes.Buffer
	if err := RenderBoard(&coloured, &board, RenderOptions{Theme: theme.WithColor(true)}); err != nil {
		t.Fatal(err)
	}
	testutil.AssertTrue(t, strings.Contains(coloured.String(), "\x1b["), "escape sequences when colour is on")

	var plain bytes.Buffer
	if err := RenderBoard(&plain, &board, RenderOptions{Theme: theme.WithColor(false)}); err != nil {
		t.Fatal(err)
	}
	testutil.AssertFalse(t, strings.Contains(plain.String(), "\x1b["), "no escapes when colour is off")
	testutil.AssertEqual(t, strings.Split(plain.String(), "\n")[0], " r  n  b  q  k  b  n  r ")
	testutil.AssertEqual(t, strings.Split(plain.String(), "\n")[3], "                        ")
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"classic", "green", "mono"} {
		theme, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q): %v", name, err)
		}
		testutil.AssertEqual(t, theme.Name, name)
	}

	_, err := ThemeByName("neon")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
