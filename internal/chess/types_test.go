package chess

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

func TestColour(t *testing.T) {
	tests := []struct {
		colour       Colour
		wantOpposite Colour
		wantForward  int
		wantHome     int
		wantPawn     int
		wantPromote  int
	}{
		{White, Black, -1, 7, 6, 0},
		{Black, White, 1, 0, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Opposite(); got != tt.wantOpposite {
				t.Errorf("Opposite() = %v; want %v", got, tt.wantOpposite)
			}
			if got := tt.colour.Forward(); got != tt.wantForward {
				t.Errorf("Forward() = %d; want %d", got, tt.wantForward)
			}
			if got := tt.colour.HomeRow(); got != tt.wantHome {
				t.Errorf("HomeRow() = %d; want %d", got, tt.wantHome)
			}
			if got := tt.colour.PawnRow(); got != tt.wantPawn {
				t.Errorf("PawnRow() = %d; want %d", got, tt.wantPawn)
			}
			if got := tt.colour.PromotionRow(); got != tt.wantPromote {
				t.Errorf("PromotionRow() = %d; want %d", got, tt.wantPromote)
			}
		})
	}
}

func TestColourText(t *testing.T) {
	var c Colour
	for _, text := range []string{"white", "W", "White"} {
		if err := c.UnmarshalText([]byte(text)); err != nil || c != White {
			t.Errorf("UnmarshalText(%q) = %v, %v; want White", text, c, err)
		}
	}
	if err := c.UnmarshalText([]byte("green")); !errors.Is(err, errors.ErrParseFailure) {
		t.Errorf("UnmarshalText(green) error = %v; want ErrParseFailure", err)
	}
}

func TestPieceKindLetters(t *testing.T) {
	tests := []struct {
		kind   PieceKind
		letter byte
		name   string
		choice bool
	}{
		{NoKind, ' ', "None", false},
		{Pawn, 'P', "Pawn", false},
		{Knight, 'N', "Knight", true},
		{Bishop, 'B', "Bishop", true},
		{Rook, 'R', "Rook", true},
		{Queen, 'Q', "Queen", true},
		{King, 'K', "King", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q; want %q", got, tt.letter)
			}
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.kind.IsPromotionChoice(); got != tt.choice {
				t.Errorf("IsPromotionChoice() = %v; want %v", got, tt.choice)
			}
		})
	}
}

func TestParsePieceKind(t *testing.T) {
	tests := []struct {
		text    string
		want    PieceKind
		wantErr bool
	}{
		{"", NoKind, false},
		{"q", Queen, false},
		{"N", Knight, false},
		{"rook", Rook, false},
		{"BISHOP", Bishop, false},
		{"x", NoKind, true},
		{"dragon", NoKind, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParsePieceKind(tt.text)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrParseFailure) {
					t.Errorf("ParsePieceKind(%q) error = %v; want ErrParseFailure", tt.text, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePieceKind(%q) = %v, %v; want %v", tt.text, got, err, tt.want)
			}
		})
	}
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		text string
		want Square
	}{
		{"a8", Square{Row: 0, Col: 0}},
		{"h1", Square{Row: 7, Col: 7}},
		{"e4", Square{Row: 4, Col: 4}},
		{"d6", Square{Row: 2, Col: 3}},
		{"E2", Square{Row: 6, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("%v should be valid", got)
			}
		})
	}

	if got := (Square{Row: 4, Col: 4}).String(); got != "e4" {
		t.Errorf("String() = %q; want e4", got)
	}
}

func TestSquareErrors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"", errors.ErrParseFailure},
		{"e10", errors.ErrParseFailure},
		{"i1", errors.ErrInvalidPosition},
		{"a9", errors.ErrInvalidPosition},
		{"a0", errors.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if _, err := ParseSquare(tt.text); !errors.Is(err, tt.want) {
				t.Errorf("ParseSquare(%q) error = %v; want %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestSquareValid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Square{0, 0}, true},
		{Square{7, 7}, true},
		{Square{-1, 0}, false},
		{Square{0, 8}, false},
		{Square{8, 3}, false},
	}

	for _, tt := range tests {
		if got := tt.sq.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestPieceStateJSON(t *testing.T) {
	p := RestorePiece(7, Black, Knight, true)
	p.position = MustParseSquare("f6")

	data, err := json.Marshal(p.State())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":7,"colour":"black","kind":"knight","square":"f6","moved":true}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestSquaresSorted(t *testing.T) {
	ss := Squares{MustParseSquare("a1"), MustParseSquare("h8"), MustParseSquare("c3")}
	got := ss.Sorted().Strings()
	want := []string{"h8", "c3", "a1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
	if ss[0] != MustParseSquare("a1") {
		t.Error("Sorted must not reorder the receiver")
	}
}
