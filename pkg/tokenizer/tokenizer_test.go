package tokenizer

import "testing"

func spansToStrings(text string, spans []Span) []string {
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = text[sp.Start:sp.End]
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeBasicWords(t *testing.T) {
	text := "Hello, world! Go is fun."
	got := spansToStrings(text, Tokenize(text, DefaultConfig()))
	want := []string{"Hello", "world", "Go", "is", "fun"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeApostrophesIncluded(t *testing.T) {
	cfg := DefaultConfig()
	text := "don't stop it's working"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"don't", "stop", "it's", "working"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeTrimsLeadingTrailingApostrophes(t *testing.T) {
	cfg := DefaultConfig()
	text := "'quoted' word"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"quoted", "word"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeHyphensExcludedByDefault(t *testing.T) {
	cfg := DefaultConfig()
	text := "well-known fact"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"well", "known", "fact"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeHyphensIncludedWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeHyphens = true
	text := "well-known fact"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"well-known", "fact"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeDigitsIncludedByDefault(t *testing.T) {
	cfg := DefaultConfig()
	text := "room101 is here"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"room101", "is", "here"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeDigitsExcludedSplitsWord(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeDigits = false
	text := "room101 here"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"room", "here"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeMinLengthDropsShortSpans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLength = 3
	text := "a an cat"
	got := spansToStrings(text, Tokenize(text, cfg))
	want := []string{"cat"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeMaxLengthSplitsLongSpans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLength = 4
	text := "abcdefgh"
	spans := Tokenize(text, cfg)
	got := spansToStrings(text, spans)
	want := []string{"abcd", "efgh"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeNonASCIILettersAreWordChars(t *testing.T) {
	text := "café münchen"
	got := spansToStrings(text, Tokenize(text, DefaultConfig()))
	want := []string{"café", "münchen"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeMalformedUTF8IsSeparator(t *testing.T) {
	text := "good\xffbye hi"
	got := spansToStrings(text, Tokenize(text, DefaultConfig()))
	want := []string{"good", "bye", "hi"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize() = %v; want %v", got, want)
	}
}

func TestTokenizeEmptyTextReturnsNoSpans(t *testing.T) {
	if got := Tokenize("", DefaultConfig()); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v; want empty", got)
	}
}

func TestTokenizeSpansAreByteAccurate(t *testing.T) {
	text := "  hello  world  "
	spans := Tokenize(text, DefaultConfig())
	if len(spans) != 2 {
		t.Fatalf("got %d spans; want 2", len(spans))
	}
	if text[spans[0].Start:spans[0].End] != "hello" {
		t.Errorf("first span = %q; want hello", text[spans[0].Start:spans[0].End])
	}
	if text[spans[1].Start:spans[1].End] != "world" {
		t.Errorf("second span = %q; want world", text[spans[1].Start:spans[1].End])
	}
}
