package hashset

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/pkg/wlerr"
	"github.com/kavanhollis/lexarbor/pkg/word"
)

func TestGrowLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := charmlog.NewWithOptions(&buf, charmlog.Options{Level: charmlog.DebugLevel})
	s := New(WithLogger(l))

	for i := 0; i < initialCapacity; i++ {
		if _, err := s.Add(fmt.Sprintf("word%d", i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if !strings.Contains(buf.String(), "grew capacity") {
		t.Errorf("grow did not log a capacity message; log = %q", buf.String())
	}
}

func TestAddContainsRemove(t *testing.T) {
	s := New()

	outcome, err := s.Add("hello")
	if err != nil || outcome != wlerr.OutcomeAdded {
		t.Fatalf("Add(hello) = %v, %v; want Added, nil", outcome, err)
	}
	if !s.Contains("hello") {
		t.Error("Contains(hello) = false after Add")
	}

	outcome, err = s.Remove("hello")
	if err != nil || outcome != wlerr.OutcomeRemoved {
		t.Fatalf("Remove(hello) = %v, %v; want Removed, nil", outcome, err)
	}
	if s.Contains("hello") {
		t.Error("Contains(hello) = true after Remove")
	}
}

func TestAddDuplicateIsAlreadyPresent(t *testing.T) {
	s := New()
	if _, err := s.Add("hello"); err != nil {
		t.Fatal(err)
	}
	outcome, err := s.Add("hello")
	if err != nil || outcome != wlerr.OutcomeAlreadyPresent {
		t.Errorf("second Add(hello) = %v, %v; want AlreadyPresent, nil", outcome, err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d; want 1", s.Count())
	}
}

func TestAddIsCaseInsensitiveForASCII(t *testing.T) {
	s := New()
	if _, err := s.Add("Hello"); err != nil {
		t.Fatal(err)
	}
	if !s.Contains("hello") {
		t.Error("Contains(hello) = false; case folding did not apply")
	}
	if _, err := s.Add("HELLO"); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d; want 1 (HELLO should fold onto hello)", s.Count())
	}
}

func TestNonASCIINotFolded(t *testing.T) {
	s := New()
	if _, err := s.Add("café"); err != nil {
		t.Fatal(err)
	}
	if !s.Contains("café") {
		t.Error("Contains(café) = false")
	}
	if s.Contains("cafe") {
		t.Error("Contains(cafe) = true; ASCII-only word should not match café")
	}
	if _, err := s.Add("CAFÉ"); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d; want 2 (CAFÉ is not ASCII-folded onto café)", s.Count())
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s := New()
	cases := []string{"", "   ", "a\x00b", strings.Repeat("x", word.MaxBytes+1)}
	for _, c := range cases {
		if _, err := s.Add(c); err == nil {
			t.Errorf("Add(%q) returned nil error; want Invalid", c)
		}
	}
}

func TestRemoveNotFound(t *testing.T) {
	s := New()
	outcome, err := s.Remove("ghost")
	if err != nil || outcome != wlerr.OutcomeNotFound {
		t.Errorf("Remove(ghost) = %v, %v; want NotFound, nil", outcome, err)
	}
}

func TestCountMatchesUniqueCanonicalInserts(t *testing.T) {
	s := New()
	words := []string{"apple", "Apple", "banana", "APPLE", "cherry", "banana"}
	for _, w := range words {
		s.Add(w)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d; want 3", s.Count())
	}
}

func TestGrowthPreservesAllLiveWords(t *testing.T) {
	s := New()
	const n = 5000
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("word%d", i)
		if _, err := s.Add(w); err != nil {
			t.Fatalf("Add(%s): %v", w, err)
		}
	}
	if s.Count() != n {
		t.Fatalf("Count() = %d; want %d", s.Count(), n)
	}
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("word%d", i)
		if !s.Contains(w) {
			t.Errorf("Contains(%s) = false after growth", w)
		}
	}
}

func TestTombstonesDoNotBreakProbeChains(t *testing.T) {
	s := New()
	// "aa", "bh" and "em" share home slot 55 at the initial capacity of 64,
	// so they occupy slots 55, 56 and 57 of one probe chain.
	s.Add("aa")
	s.Add("bh")
	s.Add("em")
	s.Remove("bh")
	if !s.Contains("em") {
		t.Error("Contains(em) = false after removing bh from the same probe chain")
	}
}

func TestIterVisitsEveryLiveWordExactlyOnce(t *testing.T) {
	s := New()
	want := map[string]bool{"apple": true, "banana": true, "cherry": true}
	for w := range want {
		s.Add(w)
	}
	seen := make(map[string]int)
	s.Iter(func(w string) bool {
		seen[w]++
		return true
	})
	if len(seen) != len(want) {
		t.Fatalf("Iter visited %d words; want %d", len(seen), len(want))
	}
	for w, count := range seen {
		if !want[w] || count != 1 {
			t.Errorf("Iter visited %q %d times", w, count)
		}
	}
}
