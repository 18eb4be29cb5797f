package providers

import (
	"strings"
	"testing"
)

func TestNewNonce(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		nonce := newNonce()

		if len(nonce) != nonceLength {
			t.Fatalf("len(nonce) = %d, want %d", len(nonce), nonceLength)
		}
		for _, c := range nonce {
			if !strings.ContainsRune(nonceCharset, c) {
				t.Fatalf("nonce %q contains %q outside the alphanumeric charset", nonce, c)
			}
		}
		seen[nonce] = true
	}

	if len(seen) < 2 {
		t.Errorf("generated %d distinct nonces out of 100, want at least 2", len(seen))
	}
}
