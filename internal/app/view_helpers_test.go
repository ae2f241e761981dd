package app

import "testing"

func TestRenderProgressBar(t *testing.T) {
	bar := renderProgressBar(5, 10, 10)
	if bar != "[#####-----]" {
		t.Fatalf("unexpected bar %s", bar)
	}
	if renderProgressBar(0, 0, 10) != "" {
		t.Fatalf("expected empty bar for zero total")
	}
	if renderProgressBar(-1, 10, 5) == "" {
		t.Fatalf("expected bar even when done negative")
	}
	if bar := renderProgressBar(20, 10, 4); bar != "[####]" {
		t.Fatalf("expected full bar when done exceeds total, got %s", bar)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		-5:   "0:00",
		0:    "0:00",
		45:   "0:45",
		720:  "12:00",
		3725: "1:02:05",
	}
	for in, want := range cases {
		if got := formatDuration(in); got != want {
			t.Fatalf("formatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		999:     "999",
		1500:    "1.5K",
		2500000: "2.5M",
	}
	for in, want := range cases {
		if got := formatCount(in); got != want {
			t.Fatalf("formatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Dorphin", 10); got != "Dorphin" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("Dorphin", 4); got != "Dor…" {
		t.Fatalf("unexpected %q", got)
	}
}
