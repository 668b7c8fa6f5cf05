package http2

import (
	"testing"

	"github.com/domsolutions/http2/http2utils"
)

func TestCutPadding(t *testing.T) {
	str := []byte{13}
	str = append(str, "8971293nfasv7asnrnqw9bma 237urkf8KifgiMKFG98UIM8fgnb kifgnrA7JKLK"...)

	p, err := http2utils.CutPadding(str, len(str))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(p) != len(str)-13-1 {
		t.Fatalf("unexpected len: %d<>%d", len(p), len(str)-13-1)
	}
}

func TestCutPaddingOutOfRange(t *testing.T) {
	str := []byte{255, 1, 2, 3}

	if _, err := http2utils.CutPadding(str, len(str)); err == nil {
		t.Fatal("expected error for padding larger than payload")
	}
}

func BenchmarkCutPadding(b *testing.B) {
	str := []byte{17}
	str = append(str, "8971293nfasv7asnrnqw9bma 237urkf8KifgiMKFG98UIM8fgnb kifgnrA7JKLK"...)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p, err := http2utils.CutPadding(str, len(str))
		if err != nil || len(p) == 0 {
			b.Fatal("wrong cutting")
		}
	}
}
