package majors

import "testing"

func TestParseStripsOrdinalsAndBullets(t *testing.T) {
	got := Parse(`1. Biology, 2) Chemistry, - Physics, *Math*`)
	want := []string{"Biology", "Chemistry", "Physics", "Math"}

	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseAcceptsNewlineDelimitedLists(t *testing.T) {
	got := Parse("• Computer Science\n• Software Engineering\n• Data Science\n• Information Systems")
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d: %v", len(got), got)
	}
	if got[0] != "Computer Science" {
		t.Fatalf("unexpected first item: %q", got[0])
	}
}

func TestParseDropsPreambleLines(t *testing.T) {
	got := Parse("Here are some options you could consider:\nEconomics\nFinance\nAccounting\nMarketing")
	if len(got) != 4 {
		t.Fatalf("expected 4 items after dropping the preamble, got %d: %v", len(got), got)
	}
	if got[0] != "Economics" {
		t.Fatalf("expected preamble line to be discarded, got %q first", got[0])
	}
}

func TestParsePreambleOnlyInputYieldsNothing(t *testing.T) {
	if got := Parse("Here are some options: Economics"); len(got) != 0 {
		t.Fatalf("expected preamble-only candidate to be discarded, got %v", got)
	}
}

func TestParseKeepsMajorsStartingWithStopwordAsWholeWordOnly(t *testing.T) {
	got := Parse("Theatre Studies, Theology, Philosophy, History")
	if len(got) != 4 {
		t.Fatalf("expected stopwords to match whole words only, got %v", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestParseDropsShortFragments(t *testing.T) {
	got := Parse("a,-, Biology, 12, Chemistry")
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving items, got %v", got)
	}
}

func TestParseTruncatesToFourItems(t *testing.T) {
	got := Parse("Biology, Chemistry, Physics, Math, Astronomy, Geology")
	if len(got) != ListLength {
		t.Fatalf("expected %d items, got %d", ListLength, len(got))
	}
	if got[3] != "Math" {
		t.Fatalf("expected truncation after Math, got %q", got[3])
	}
}
