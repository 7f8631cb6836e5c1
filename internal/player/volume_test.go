package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVolume_BeforeHandleAppliedOnReady(t *testing.T) {
	p, b, _ := newTestPlayer()
	p.SetVolume(30)
	assert.Equal(t, 30, p.Volume())

	p.SetVideoID("A")
	p.NotifyHostReady()
	b.Ready()
	assert.Equal(t, 30, b.Handle.Volume())
}

func TestSetVolume_AppliesToHandle(t *testing.T) {
	p, b, _ := readyPlayer(t)

	p.SetVolume(70)
	assert.Equal(t, 70, b.Handle.Volume())

	p.SetVolume(-5)
	assert.Equal(t, 0, b.Handle.Volume())
}

func TestAdjustVolume_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"up", 50, 5, 55},
		{"down", 50, -5, 45},
		{"ceiling", 98, 5, 100},
		{"floor", 2, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, b, _ := readyPlayer(t, WithVolume(tt.start))
			assert.Equal(t, tt.want, p.AdjustVolume(tt.delta))
			assert.Equal(t, tt.want, b.Handle.Volume())
		})
	}
}
