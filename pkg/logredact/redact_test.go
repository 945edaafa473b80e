package logredact

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		message   string
		separator string
		want      string
	}{
		{
			name:      "redacts listed fields",
			fields:    []string{"password", "date_of_birth"},
			message:   "name=egg;email=eggmin@eggsample.com;password=eggcellent;date_of_birth=12/12/1986;",
			separator: ";",
			want:      "name=egg;email=eggmin@eggsample.com;password=***;date_of_birth=***;",
		},
		{
			name:      "no listed field present",
			fields:    []string{"password"},
			message:   "name=egg;email=eggmin@eggsample.com;",
			separator: ";",
			want:      "name=egg;email=eggmin@eggsample.com;",
		},
		{
			name:      "alternate separator",
			fields:    []string{"token"},
			message:   "user=bob,token=abc123,role=admin",
			separator: ",",
			want:      "user=bob,token=***,role=admin",
		},
		{
			name:      "empty value",
			fields:    []string{"password"},
			message:   "password=;name=egg;",
			separator: ";",
			want:      "password=***;name=egg;",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := Filter(test.fields, Redaction, test.message, test.separator)
			if got != test.want {
				t.Errorf("Filter() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestWriter_RedactsJSONFields(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := zerolog.New(NewWriter(&buf, "password", "reset_token"))

	// Act
	logger.Info().
		Str("email", "a@x.com").
		Str("password", "pw1").
		Str("reset_token", "488073aa-a1dd-47c9-9770-ec554e1c0b23").
		Msg("login attempt")

	// Assert
	out := buf.String()
	if strings.Contains(out, "pw1") || strings.Contains(out, "488073aa") {
		t.Fatalf("Writer leaked a sensitive value: %s", out)
	}
	if !strings.Contains(out, `"password":"`+Redaction+`"`) {
		t.Errorf("Writer did not redact password: %s", out)
	}
	if !strings.Contains(out, `"email":"a@x.com"`) {
		t.Errorf("Writer should leave other fields alone: %s", out)
	}
}

func TestWriter_ReportsOriginalLength(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "password")

	line := []byte(`{"password":"a-much-longer-secret-value"}` + "\n")
	n, err := w.Write(line)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(line) {
		t.Errorf("Write() = %d, want %d", n, len(line))
	}
}
