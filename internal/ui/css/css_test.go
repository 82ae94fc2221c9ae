package css

import (
	"errors"
	"image/color"
	"testing"
)

const sheet = `
/* panel */
.panel { background: #101024e6; width: 420px; left: 50%; top: 40; }
.title { color: #7ef6ff; font-size: 28px; }
#close { border: #ff6fd8; padding: 6 }
div .nested { color: #000000; }
.title { color: #ffffff; }
`

func TestParseAndResolve(t *testing.T) {
	s, err := Parse(sheet)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Rules) != 4 {
		t.Fatalf("len(Rules) = %d; want 4 (combinator rule skipped)", len(s.Rules))
	}

	panel := s.Resolve("panel", "")
	if panel.Background != (color.RGBA{0x10, 0x10, 0x24, 0xe6}) {
		t.Errorf("background = %v", panel.Background)
	}
	if panel.Width != 420 || panel.LeftPct != 50 || panel.TopPct != -1 || panel.Top != 40 {
		t.Errorf("panel geometry = %+v", panel)
	}

	title := s.Resolve("title", "")
	if title.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("later rule should win, color = %v", title.Color)
	}
	if title.FontSize != 28 {
		t.Errorf("font-size = %d", title.FontSize)
	}

	btn := s.Resolve("button", "close")
	if !btn.HasBorder || btn.Padding != 6 {
		t.Errorf("close = %+v", btn)
	}
}

func TestResolveUnmatchedIsDefault(t *testing.T) {
	s, _ := Parse(sheet)
	if got := s.Resolve("nope", ""); got != DefaultStyle() {
		t.Fatalf("Resolve(nope) = %+v", got)
	}
	var nilSheet *Stylesheet
	if got := nilSheet.Resolve("panel", ""); got != DefaultStyle() {
		t.Fatalf("nil sheet Resolve = %+v", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{".a { color: #fff;", "/* open", ".a color: red"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = nil error", in)
		}
	}
	if _, err := Parse(".a { x: 1"); !errors.Is(err, ErrUnterminated) {
		t.Errorf("err = %v; want ErrUnterminated", err)
	}
}

func TestParseValues(t *testing.T) {
	if c, ok := ParseColor("transparent"); !ok || c.A != 0 {
		t.Errorf("transparent = %v, %v", c, ok)
	}
	if _, ok := ParseColor("#zzzzzz"); ok {
		t.Error("ParseColor accepted #zzzzzz")
	}
	if _, ok := ParseColor("#112233zz"); ok {
		t.Error("ParseColor accepted bad alpha")
	}
	if n, ok := ParsePx(" 12px "); !ok || n != 12 {
		t.Errorf("ParsePx = %d, %v", n, ok)
	}
	if _, ok := ParsePct("101%"); ok {
		t.Error("ParsePct accepted 101%")
	}
}
