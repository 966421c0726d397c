package floodit

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"S", ModeShapes},
		{"s", ModeShapes},
		{"C", ModeColors},
		{" c\n", ModeColors},
		{"b", ModeBoth},
		{"both", ModeBoth},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.input)
		if err != nil || got != tc.want {
			t.Errorf("ParseMode(%q) = (%q, %v), expected %q", tc.input, got, err, tc.want)
		}
	}

	for _, bad := range []string{"", "x", "SC", "q"} {
		if _, err := ParseMode(bad); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error = %v, expected ErrInvalidMode", bad, err)
		}
	}
}

func TestParseMoveColors(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"R", Red}, {"g", Green}, {"B", Blue}, {"y", Yellow}, {"C", Cyan}, {"m\n", Magenta},
	}
	for _, tc := range tests {
		m, err := ParseMove(ModeColors, tc.input)
		if err != nil {
			t.Errorf("ParseMove(colors, %q) failed: %v", tc.input, err)
			continue
		}
		if !m.ByColor || m.Color != tc.want {
			t.Errorf("ParseMove(colors, %q) = %+v, expected color %v", tc.input, m, tc.want)
		}
	}
}

func TestParseMoveShapes(t *testing.T) {
	tests := []struct {
		input string
		want  Shape
	}{
		{"H", Heart}, {"t", Triangle}, {"D", Diamond}, {"b", Ball}, {"C", Club}, {"s", Spade},
	}
	for _, mode := range []Mode{ModeShapes, ModeBoth} {
		for _, tc := range tests {
			m, err := ParseMove(mode, tc.input)
			if err != nil {
				t.Errorf("ParseMove(%s, %q) failed: %v", mode, tc.input, err)
				continue
			}
			if m.ByColor || m.Shape != tc.want {
				t.Errorf("ParseMove(%s, %q) = %+v, expected shape %v", mode, tc.input, m, tc.want)
			}
		}
	}
}

func TestParseMoveRejectsOtherModeLetters(t *testing.T) {
	if _, err := ParseMove(ModeColors, "H"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("colors mode accepted a shape letter: %v", err)
	}
	if _, err := ParseMove(ModeShapes, "R"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("shapes mode accepted a color letter: %v", err)
	}
	if _, err := ParseMove(ModeBoth, ""); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("empty input accepted: %v", err)
	}
}

func TestParseMoveQuit(t *testing.T) {
	for _, mode := range Modes() {
		if _, err := ParseMove(mode, "q"); !errors.Is(err, ErrQuit) {
			t.Errorf("ParseMove(%s, q) error = %v, expected ErrQuit", mode, err)
		}
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		mode Mode
		keys string
	}{
		{ModeColors, "RGBYCMQ"},
		{ModeShapes, "HTDBCSQ"},
		{ModeBoth, "HTDBCSQ"},
	}
	for _, tc := range tests {
		var keys []rune
		for _, o := range Options(tc.mode) {
			keys = append(keys, o.Key)
		}
		if string(keys) != tc.keys {
			t.Errorf("Options(%s) keys = %q, expected %q", tc.mode, string(keys), tc.keys)
		}
	}
}

func TestMoveTile(t *testing.T) {
	if ColorMove(Yellow).Tile() != TileForShape(Ball) {
		t.Error("ColorMove(Yellow) should paint the Ball tile")
	}
	if ShapeMove(Club).Tile() != TileForColor(Cyan) {
		t.Error("ShapeMove(Club) should paint the Cyan tile")
	}
	if ShapeMove(Club).String() != "Club" || ColorMove(Red).String() != "Red" {
		t.Error("unexpected move names")
	}
}

func TestModeDisplay(t *testing.T) {
	if !ModeBoth.ShowsShapes() || !ModeBoth.ShowsColors() {
		t.Error("both mode should show shapes and colors")
	}
	if ModeShapes.ShowsColors() || ModeColors.ShowsShapes() {
		t.Error("single modes should hide the other attribute")
	}
	if ModeBoth.PicksColors() {
		t.Error("both mode picks by shape")
	}
}

func TestModeOptions(t *testing.T) {
	opts := ModeOptions()
	if len(opts) != 3 {
		t.Fatalf("ModeOptions() has %d entries, expected 3", len(opts))
	}
	for i, want := range []rune{'S', 'C', 'B'} {
		if opts[i].Key != want {
			t.Errorf("ModeOptions()[%d].Key = %q, expected %q", i, opts[i].Key, want)
		}
		mode, err := ParseMode(string(opts[i].Key))
		if err != nil || mode != Modes()[i] {
			t.Errorf("ParseMode(%q) = %q, %v", opts[i].Key, mode, err)
		}
	}
}
