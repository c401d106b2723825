package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// lineFormatter writes Info entries as the bare message and prefixes every
// other level with its name, e.g. "FATAL unable to bind :3000: ...".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if e.Level != logrus.InfoLevel {
		b.WriteString(strings.ToUpper(e.Level.String()))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(lineFormatter{})
	return log
}
