package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not flip the colour")
	}
	if White.PawnDirection() != -1 || Black.PawnDirection() != 1 {
		t.Error("PawnDirection() wrong")
	}
	if White.HomeRow() != 7 || Black.HomeRow() != 0 {
		t.Error("HomeRow() wrong")
	}
	if White.LastRow() != Black.HomeRow() || Black.LastRow() != White.HomeRow() {
		t.Error("LastRow() should be the opponent's home row")
	}
}

func TestPieceTypeValue(t *testing.T) {
	want := map[PieceType]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0, NoPiece: 0}
	for pt, v := range want {
		if got := pt.Value(); got != v {
			t.Errorf("%v.Value() = %d; want %d", pt, got, v)
		}
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		id      string
		want    Piece
		wantErr bool
	}{
		{id: "WR7", want: Piece{ID: "WR7", Type: Rook, Colour: White}},
		{id: "BP0", want: Piece{ID: "BP0", Type: Pawn, Colour: Black}},
		{id: "BK4", want: Piece{ID: "BK4", Type: King, Colour: Black}},
		{id: "WNc3", want: Piece{ID: "WNc3", Type: Knight, Colour: White}},
		{id: "WR", wantErr: true},
		{id: "GR1", wantErr: true},
		{id: "WX1", wantErr: true},
		{id: "Wq1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParsePiece(tt.id)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidPiece) {
					t.Errorf("ParsePiece(%q) error = %v; want ErrInvalidPiece", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePiece(%q) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("ParsePiece(%q) = %+v; want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestPositionArithmetic(t *testing.T) {
	a := Position{X: 4, Y: 6}
	b := Position{X: 4, Y: 4}

	d := b.Sub(a)
	if d != (Delta{X: 0, Y: -2}) {
		t.Errorf("Sub() = %v; want {0 -2}", d)
	}
	if a.Add(d) != b {
		t.Errorf("Add(Sub()) = %v; want %v", a.Add(d), b)
	}
	if (Position{X: 8, Y: 0}).InBounds() || !(Position{X: 7, Y: 7}).InBounds() {
		t.Error("InBounds() wrong at the edge")
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{in: "a8", want: Position{X: 0, Y: 0}},
		{in: "h1", want: Position{X: 7, Y: 7}},
		{in: "e2", want: Position{X: 4, Y: 6}},
		{in: "E4", want: Position{X: 4, Y: 4}},
		{in: "i1", wantErr: true},
		{in: "a9", wantErr: true},
		{in: "a", wantErr: true},
		{in: "a10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParsePosition(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPositionStringRoundTrip(t *testing.T) {
	for _, pos := range AllPositions() {
		got, err := ParsePosition(pos.String())
		if err != nil || got != pos {
			t.Errorf("ParsePosition(%q) = %v, %v; want %v", pos.String(), got, err, pos)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr error
	}{
		{in: "e2e4", want: Move{From: MustParsePosition("e2"), To: MustParsePosition("e4")}},
		{in: "e2-e4", want: Move{From: MustParsePosition("e2"), To: MustParsePosition("e4")}},
		{in: " g1f3 ", want: Move{From: MustParsePosition("g1"), To: MustParsePosition("f3")}},
		{in: "a7a8n", want: Move{From: MustParsePosition("a7"), To: MustParsePosition("a8"), Promotion: Knight}},
		{in: "e7e8Q", want: Move{From: MustParsePosition("e7"), To: MustParsePosition("e8"), Promotion: Queen}},
		{in: "e7e8k", wantErr: chesserrors.ErrInvalidPromotion},
		{in: "e2", wantErr: chesserrors.ErrIllegalMove},
		{in: "z2e4", wantErr: chesserrors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseMove(%q) error = %v; want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: MustParsePosition("b7"), To: MustParsePosition("b8"), Promotion: Rook}
	if got := m.String(); got != "b7b8r" {
		t.Errorf("String() = %q; want b7b8r", got)
	}
	if got := m.Reverse().String(); got != "b8b7" {
		t.Errorf("Reverse().String() = %q; want b8b7", got)
	}
	if !m.SameSquares(Move{From: m.From, To: m.To}) {
		t.Error("SameSquares() ignores promotion: want true")
	}
}
