package crypto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDSource_Format(t *testing.T) {
	// Act
	token, err := UUIDSource{}.NewToken()

	// Assert
	if err != nil {
		t.Fatalf("NewToken() error = %v", err)
	}
	id, err := uuid.Parse(token)
	if err != nil {
		t.Fatalf("NewToken() = %q, not a UUID: %v", token, err)
	}
	if id.Version() != 4 {
		t.Errorf("NewToken() version = %d, want 4", id.Version())
	}
}

func TestNanoID_Length(t *testing.T) {
	tests := []struct {
		name string
		size []int
		want int
	}{
		{name: "default", size: nil, want: nanoidSize},
		{name: "custom length 12", size: []int{12}, want: 12},
		{name: "custom length 50", size: []int{50}, want: 50},
		{name: "zero uses default", size: []int{0}, want: nanoidSize},
		{name: "negative uses default", size: []int{-5}, want: nanoidSize},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			token, err := NewNanoID(test.size...).NewToken()
			if err != nil {
				t.Fatalf("NewToken() error = %v", err)
			}
			if len(token) != test.want {
				t.Errorf("len(token) = %d, want %d", len(token), test.want)
			}
		})
	}
}

func TestNanoID_Charset(t *testing.T) {
	gen := NewNanoID(200)

	token, err := gen.NewToken()
	if err != nil {
		t.Fatalf("NewToken() error = %v", err)
	}
	for i, char := range token {
		if !strings.ContainsRune(nanoidAlphabet, char) {
			t.Errorf("token[%d] = %q, not in alphabet", i, char)
		}
	}
}

func TestTokenSources_Uniqueness(t *testing.T) {
	sources := map[string]TokenSource{
		"uuid":   UUIDSource{},
		"nanoid": NewNanoID(),
	}

	for name, source := range sources {
		source := source
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool)
			iterations := 10_000

			for i := 0; i < iterations; i++ {
				token, err := source.NewToken()
				if err != nil {
					t.Fatalf("iteration %d: NewToken() error = %v", i, err)
				}
				if seen[token] {
					t.Fatalf("duplicate token generated: %q", token)
				}
				seen[token] = true
			}
		})
	}
}
