package richdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefghi\x01"), 10)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	data := []byte("# Title\r\n\n\tcode\n- item\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSanitizeDropsControlRunes(t *testing.T) {
	got := string(sanitize([]byte("a\x1bb\tc\nd\x7f")))
	if want := "ab\tc\nd"; got != want {
		t.Fatalf("sanitize = %q, want %q", got, want)
	}
	clean := []byte("plain text\n")
	if got := sanitize(clean); &got[0] != &clean[0] {
		t.Fatalf("sanitize copied clean input")
	}
}

func TestImportRejectsBinary(t *testing.T) {
	_, err := Import(ImportRequest{Reader: bytes.NewReader([]byte{0x00, 0x01, 0x02})})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "import: ") {
		t.Fatalf("unexpected error text %q", err)
	}
}
