package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/radiofree/internal/host"
)

func TestFinalSave_RunsOnLoop(t *testing.T) {
	loop := host.New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	var buf bytes.Buffer
	saved := false
	finalSave(loop, func() { saved = true }, zerolog.New(&buf))

	cancel()
	<-done
	assert.True(t, saved)
	assert.Empty(t, buf.String())
}

func TestFinalSave_LogsClosedLoop(t *testing.T) {
	loop := host.New()
	loop.Close()

	var buf bytes.Buffer
	saved := false
	finalSave(loop, func() { saved = true }, zerolog.New(&buf).Level(zerolog.DebugLevel))

	assert.False(t, saved)
	assert.Contains(t, buf.String(), "final save skipped")
	assert.Contains(t, buf.String(), host.ErrClosed.Error())
}
