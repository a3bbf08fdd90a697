package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.Debug("hidden debug line")
	log.Info("visible info line", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden debug line")
	assert.Contains(t, out, "visible info line")
	assert.Contains(t, out, "count=3")
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Debug: true, Output: &buf})

	log.WithComponent("graph").Debug("request sent")

	out := buf.String()
	assert.Contains(t, out, "request sent")
	assert.Contains(t, out, "component=graph")
}
