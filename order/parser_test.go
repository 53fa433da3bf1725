package order

import (
	"errors"
	"testing"
)

func collectProvinces(s string) [][2]string {
	var out [][2]string
	for name, rest := range provinces(s) {
		out = append(out, [2]string{name, rest})
	}
	return out
}

func TestProvincesShortestFirst(t *testing.T) {
	got := collectProvinces("Eastern Mediterranean Sea ")
	want := [][2]string{
		{"Eastern", " Mediterranean Sea "},
		{"Eastern Mediterranean", " Sea "},
		{"Eastern Mediterranean Sea", " "},
	}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = (%q, %q), want (%q, %q)",
				i, got[i][0], got[i][1], want[i][0], want[i][1])
		}
	}
}

func TestProvincesFinalCandidateConsumesAll(t *testing.T) {
	got := collectProvinces("brest h")
	want := [][2]string{
		{"brest", " h"},
		{"brest h", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProvincesPunctuation(t *testing.T) {
	got := collectProvinces("spain (sc)")
	want := [][2]string{
		{"spain", " (sc)"},
		{"spain (sc)", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProvincesNoNameRunes(t *testing.T) {
	if got := collectProvinces(""); len(got) != 0 {
		t.Errorf("empty input enumerated %d candidates, want 0", len(got))
	}
	if got := collectProvinces("   "); len(got) != 0 {
		t.Errorf("all-space input enumerated %d candidates, want 0: %v", len(got), got)
	}
}

func TestParseUnit(t *testing.T) {
	unit, rest, ok := parseUnit("army ruhr")
	if !ok || unit != Army || rest != " ruhr" {
		t.Errorf("parseUnit(%q) = (%v, %q, %v)", "army ruhr", unit, rest, ok)
	}
	unit, rest, ok = parseUnit("fleet kiel")
	if !ok || unit != Fleet || rest != " kiel" {
		t.Errorf("parseUnit(%q) = (%v, %q, %v)", "fleet kiel", unit, rest, ok)
	}
	if _, _, ok := parseUnit("brest"); ok {
		t.Error("parseUnit recognized a unit in \"brest\"")
	}
}

func TestRequireSpace(t *testing.T) {
	if _, ok := requireSpace("army"); ok {
		t.Error("requireSpace accepted input with no leading whitespace")
	}
	rest, ok := requireSpace("  army")
	if !ok || rest != "army" {
		t.Errorf("requireSpace(%q) = (%q, %v)", "  army", rest, ok)
	}
	if _, ok := requireSpace(""); ok {
		t.Error("requireSpace accepted empty input")
	}
}

func TestParseHold(t *testing.T) {
	h, err := ParseHold("a brest h")
	if err != nil {
		t.Fatalf("ParseHold: %v", err)
	}
	if h.Unit != Army || h.Place != "brest" {
		t.Errorf("ParseHold = %+v, want Army brest", h)
	}

	h, err = ParseHold("fleet eastern med holds")
	if err != nil {
		t.Fatalf("ParseHold: %v", err)
	}
	if h.Unit != Fleet || h.Place != "eastern med" {
		t.Errorf("ParseHold = %+v, want Fleet eastern med", h)
	}

	h, err = ParseHold("western med sea holds")
	if err != nil {
		t.Fatalf("ParseHold: %v", err)
	}
	if h.Unit != NoUnit || h.Place != "western med sea" {
		t.Errorf("ParseHold = %+v, want no unit, western med sea", h)
	}
}

func TestParseHoldRejectsGluedUnit(t *testing.T) {
	// "a" is recognized as a unit token, and a recognized token must be
	// followed by whitespace: no silent fallback to an a-initial province.
	if _, err := ParseHold("armenia holds"); err == nil {
		t.Error("ParseHold accepted a unit token glued to a province")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("a brest - paris")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Unit != Army || m.Source != "brest" || m.Dest != "paris" {
		t.Errorf("ParseMove = %+v", m)
	}

	m, err = ParseMove("a brest-paris")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Unit != Army || m.Source != "brest" || m.Dest != "paris" {
		t.Errorf("ParseMove = %+v", m)
	}

	m, err = ParseMove("paris-burgundy")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Unit != NoUnit || m.Source != "paris" || m.Dest != "burgundy" {
		t.Errorf("ParseMove = %+v", m)
	}

	m, err = ParseMove("f western med to spain (sc)")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Unit != Fleet || m.Source != "western med" || m.Dest != "spain (sc)" {
		t.Errorf("ParseMove = %+v", m)
	}
}

func TestParseSupport(t *testing.T) {
	s, err := ParseSupport("a brest s a paris h")
	if err != nil {
		t.Fatalf("ParseSupport: %v", err)
	}
	if s.Unit != Army || s.Place != "brest" {
		t.Errorf("ParseSupport = %+v, want Army brest", s)
	}
	if s.Target.Unit != Army || s.Target.Source != "paris" || s.Target.Dest != "paris" {
		t.Errorf("supported hold target = %+v, want Army paris->paris", s.Target)
	}

	s, err = ParseSupport("a brest s paris-burgundy")
	if err != nil {
		t.Fatalf("ParseSupport: %v", err)
	}
	if s.Target.Unit != NoUnit || s.Target.Source != "paris" || s.Target.Dest != "burgundy" {
		t.Errorf("supported move target = %+v, want paris->burgundy", s.Target)
	}
}

func TestParseConvoy(t *testing.T) {
	c, err := ParseConvoy("f brest convoys paris-burgundy")
	if err != nil {
		t.Fatalf("ParseConvoy: %v", err)
	}
	if c.Unit != Fleet || c.Place != "brest" {
		t.Errorf("ParseConvoy = %+v, want Fleet brest", c)
	}
	if c.Target.Source != "paris" || c.Target.Dest != "burgundy" {
		t.Errorf("convoy target = %+v, want paris->burgundy", c.Target)
	}
}

func TestParseConvoyRejectsHold(t *testing.T) {
	if _, err := ParseConvoy("f brest convoys paris h"); err == nil {
		t.Error("ParseConvoy accepted a held target; only moves can be convoyed")
	}
}

func TestRuleFailuresLeaveInputUntouched(t *testing.T) {
	// A rule reapplied to the line it just rejected must fail identically.
	line := "a"
	for range 2 {
		if _, err := ParseHold(line); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("ParseHold(%q) = %v, want ErrUnparseable", line, err)
		}
		if _, err := ParseMove(line); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("ParseMove(%q) = %v, want ErrUnparseable", line, err)
		}
		if _, err := ParseSupport(line); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("ParseSupport(%q) = %v, want ErrUnparseable", line, err)
		}
		if _, err := ParseConvoy(line); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("ParseConvoy(%q) = %v, want ErrUnparseable", line, err)
		}
	}
}

func TestEveryRuleRejectsEmptyInput(t *testing.T) {
	if _, err := ParseHold(""); err == nil {
		t.Error("ParseHold accepted empty input")
	}
	if _, err := ParseMove(""); err == nil {
		t.Error("ParseMove accepted empty input")
	}
	if _, err := ParseSupport(""); err == nil {
		t.Error("ParseSupport accepted empty input")
	}
	if _, err := ParseConvoy(""); err == nil {
		t.Error("ParseConvoy accepted empty input")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse accepted empty input")
	}
}

func TestParseDispatch(t *testing.T) {
	o, err := Parse("a brest h")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h, ok := o.(Hold); !ok || h.Place != "brest" {
		t.Errorf("Parse = %#v, want Hold at brest", o)
	}

	o, err = Parse("f kiel to denmark")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m, ok := o.(Move); !ok || m.Source != "kiel" || m.Dest != "denmark" {
		t.Errorf("Parse = %#v, want Move kiel->denmark", o)
	}

	if _, err := Parse("!!!"); !errors.Is(err, ErrUnparseable) {
		t.Errorf("Parse(!!!) = %v, want ErrUnparseable", err)
	}
}

func TestParseDispatchPriority(t *testing.T) {
	// Hold is tried before support, so a multi-word place can absorb an
	// embedded support clause; rejecting the bogus place is resolution's
	// job, not the grammar's.
	o, err := Parse("a brest s a paris h")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h, ok := o.(Hold); !ok || h.Place != "brest s a paris" {
		t.Errorf("Parse = %#v, want greedy Hold", o)
	}
}

func TestOrderProvince(t *testing.T) {
	cases := []struct {
		order Order
		want  string
	}{
		{Hold{Unit: Army, Place: "brest"}, "brest"},
		{Move{Unit: Fleet, Source: "kiel", Dest: "denmark"}, "kiel"},
		{Support{Place: "munich", Target: Move{Source: "kiel", Dest: "berlin"}}, "munich"},
		{Convoy{Unit: Fleet, Place: "north sea", Target: Move{Source: "london", Dest: "norway"}}, "north sea"},
	}
	for _, c := range cases {
		if got := c.order.Province(); got != c.want {
			t.Errorf("%#v.Province() = %q, want %q", c.order, got, c.want)
		}
	}
}
