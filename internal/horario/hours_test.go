package horario

import "testing"

func TestParseHoursCommaSeparator(t *testing.T) {
	if got := ParseHours(" 2,5 "); got != 2.5 {
		t.Fatalf("ParseHours(\" 2,5 \") = %v, want 2.5", got)
	}
	if got := ParseHours("3.75"); got != 3.75 {
		t.Fatalf("ParseHours(\"3.75\") = %v, want 3.75", got)
	}
}

func TestParseHoursMalformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "1,2,3", "NaN", "Inf", "-Inf"} {
		if got := ParseHours(raw); got != 0 {
			t.Fatalf("ParseHours(%q) = %v, want 0", raw, got)
		}
	}
}

func TestParseHoursKeepsSign(t *testing.T) {
	if got := ParseHours("-1,5"); got != -1.5 {
		t.Fatalf("ParseHours(\"-1,5\") = %v, want -1.5", got)
	}
}

func TestFormatHoursNoTrailingZeros(t *testing.T) {
	if got := FormatHours(2); got != "2" {
		t.Fatalf("FormatHours(2) = %q, want \"2\"", got)
	}
	if got := FormatHours(2.5); got != "2.5" {
		t.Fatalf("FormatHours(2.5) = %q, want \"2.5\"", got)
	}
	if got := FormatHours(2.125); got != "2.13" {
		t.Fatalf("FormatHours(2.125) = %q, want \"2.13\"", got)
	}
}

func TestFormatHoursRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 2, 2.5, 2.005, 7.123456, 1.0 / 3.0, 41.999} {
		once := FormatHours(x)
		again := FormatHours(ParseHours(once))
		if once != again {
			t.Fatalf("round trip unstable for %v: %q then %q", x, once, again)
		}
	}
}

func TestRound2SumsOnce(t *testing.T) {
	if got := Round2(0.1 + 0.2); got != 0.3 {
		t.Fatalf("Round2(0.1+0.2) = %v, want 0.3", got)
	}
}
