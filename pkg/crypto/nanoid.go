package crypto

import (
	"crypto/rand"
)

const (
	nanoidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	nanoidSize     = 22 // 22 * 6 = 132 bits of entropy, a shade above uuid4
)

// NanoIDGenerator issues short URL-safe tokens from crypto/rand.
// The 64-character alphabet means masking the low six bits of each
// random byte maps onto it uniformly.
type NanoIDGenerator struct {
	size int
	mask byte
}

// NewNanoID returns a generator producing 22-character tokens over the
// 64-character URL alphabet. size overrides the token length when
// positive.
func NewNanoID(size ...int) *NanoIDGenerator {
	n := &NanoIDGenerator{size: nanoidSize, mask: byte(len(nanoidAlphabet) - 1)}
	if len(size) > 0 && size[0] > 0 {
		n.size = size[0]
	}
	return n
}

func (n *NanoIDGenerator) NewToken() (string, error) {
	buf := make([]byte, n.size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = nanoidAlphabet[b&n.mask]
	}
	return string(buf), nil
}
