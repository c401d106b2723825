package main

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestDefaultConfig(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	g.Expect(cfg.Port).To(Equal(3000))
	g.Expect(cfg.Greeting).To(Equal("Hello from Terraform demo!"))
	g.Expect(cfg.Addr()).To(Equal(":3000"))

	cfg.Host = "127.0.0.1"
	g.Expect(cfg.Addr()).To(Equal("127.0.0.1:3000"))
}
