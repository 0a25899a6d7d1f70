package chunker

import (
	"regexp"
	"strings"
	"testing"
)

func TestSplit_NumberedHeadings(t *testing.T) {
	text := "1. Alpha\nisi pertama\n2. Beta\nisi kedua\n3. Gamma\nisi ketiga"

	chunks := Split(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %q", len(chunks), chunks)
	}
	for i, prefix := range []string{"1. Alpha", "2. Beta", "3. Gamma"} {
		if !strings.HasPrefix(chunks[i], prefix) {
			t.Errorf("chunk %d should start with %q, got %q", i, prefix, chunks[i])
		}
	}
}

func TestSplit_PreambleMergesIntoFirstSection(t *testing.T) {
	text := "Judul Dokumen\nsub judul\n1. Alpha\nisi\n2. Beta\nisi"

	chunks := Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "Judul Dokumen") {
		t.Errorf("preamble should be folded into the first chunk, got %q", chunks[0])
	}
	if !strings.Contains(chunks[0], "1. Alpha") {
		t.Errorf("first chunk should contain the first heading, got %q", chunks[0])
	}
	if !strings.HasPrefix(chunks[1], "2. Beta") {
		t.Errorf("second chunk should start with the second heading, got %q", chunks[1])
	}
}

func TestSplit_ProfileDocument(t *testing.T) {
	text := "Profil\n1. Info Pribadi\nNama: X\n2. Proyek\nChatbot, Prediksi"

	chunks := Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[0] != "Profil\n\n1. Info Pribadi\nNama: X" {
		t.Errorf("unexpected first chunk: %q", chunks[0])
	}
	if chunks[1] != "2. Proyek\nChatbot, Prediksi" {
		t.Errorf("unexpected second chunk: %q", chunks[1])
	}
}

func TestSplit_Idempotent(t *testing.T) {
	chunk := "2. Proyek\nChatbot, Prediksi Obesitas"

	chunks := Split(chunk)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != chunk {
		t.Errorf("re-chunking a single chunk should be a no-op, got %q", chunks[0])
	}
}

func TestSplit_NoHeadings(t *testing.T) {
	text := "Hanya teks biasa\ntanpa judul bernomor sama sekali."

	chunks := Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected whole text as single chunk, got %q", chunks[0])
	}
}

func TestSplit_DropsEmptySegments(t *testing.T) {
	text := "\n\n1. Alpha\nisi\n\n\n2. Beta\nisi\n\n"

	chunks := Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	for i, c := range chunks {
		if strings.TrimSpace(c) != c || c == "" {
			t.Errorf("chunk %d not trimmed or empty: %q", i, c)
		}
	}
}

func TestSplit_LowercaseAfterNumberIsNotAHeading(t *testing.T) {
	text := "1. Alpha\nlihat bagian 2. dan seterusnya\n2. Beta\nisi"

	chunks := Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "dan seterusnya") {
		t.Errorf("inline numbering should not split, got %q", chunks[0])
	}
}

func TestSplitWithPattern_AlternateNumbering(t *testing.T) {
	// Roman-numeral headings with a custom pattern.
	pattern := regexp.MustCompile(`(?m)^[IVX]+\.\s\p{Lu}`)
	text := "I. Alpha\nisi\nII. Beta\nisi"

	chunks := SplitWithPattern(text, pattern, "I.")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if !strings.HasPrefix(chunks[1], "II. Beta") {
		t.Errorf("unexpected second chunk: %q", chunks[1])
	}
}
