package main

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
)

func TestReadinessLineIsBare(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	s := New(testConfig(0), newLogger(&buf))
	g.Expect(s.Listen()).To(Succeed())
	t.Cleanup(func() { _ = s.ln.Close() })

	g.Expect(buf.String()).To(MatchRegexp(`^Terraform demo listening on port \d+\n$`))
}

func TestLineFormatterPrefixesNonInfo(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	log := newLogger(&buf)
	log.Info("ready")
	log.Error("boom")

	g.Expect(buf.String()).To(Equal("ready\nERROR boom\n"))
}
