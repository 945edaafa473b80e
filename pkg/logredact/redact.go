// Package logredact obfuscates sensitive field values before they
// reach a log sink, so credentials and tokens never land on disk in
// the clear.
package logredact

import (
	"io"
	"regexp"
)

// Redaction is the marker substituted for redacted values.
const Redaction = "***"

// Filter obfuscates the values of the named fields inside a flat
// key=value record such as "name=egg;password=eggcellent;".
func Filter(fields []string, redaction, message, separator string) string {
	for _, field := range fields {
		re := regexp.MustCompile(
			regexp.QuoteMeta(field) + "=[^" + regexp.QuoteMeta(separator) + "]*",
		)
		message = re.ReplaceAllString(message, field+"="+redaction)
	}
	return message
}

// Writer rewrites the JSON values of configured field names to the
// redaction marker before delegating to the wrapped writer. It is
// meant to sit between a zerolog logger and its output.
type Writer struct {
	dst      io.Writer
	patterns []*regexp.Regexp
	repls    [][]byte
}

var _ io.Writer = (*Writer)(nil)

func NewWriter(dst io.Writer, fields ...string) *Writer {
	w := &Writer{dst: dst}
	for _, field := range fields {
		w.patterns = append(w.patterns, regexp.MustCompile(
			`"`+regexp.QuoteMeta(field)+`":"[^"]*"`,
		))
		w.repls = append(w.repls, []byte(`"`+field+`":"`+Redaction+`"`))
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	out := p
	for i, re := range w.patterns {
		out = re.ReplaceAll(out, w.repls[i])
	}
	if _, err := w.dst.Write(out); err != nil {
		return 0, err
	}
	// Report the original length: callers wrote p, not the rewrite.
	return len(p), nil
}
