package providers

import "crypto/rand"

const (
	nonceLength  = 14
	nonceCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// newNonce returns a short alphanumeric value embedded in the forums
// authorization URL. The provider is responsible for replaying it back in
// the identity token; nothing is stored on this side.
func newNonce() string {
	b := make([]byte, nonceLength)
	// crypto/rand.Read never fails as of Go 1.24
	rand.Read(b)
	for i, c := range b {
		b[i] = nonceCharset[int(c)%len(nonceCharset)]
	}
	return string(b)
}
