//go:build !headless

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

type otoPlayer struct {
	ctx *oto.Context
}

func newAudioPlayer(sampleRate int) (audioPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &otoPlayer{ctx: ctx}, nil
}

// Play blocks until src is drained and the device has played it.
func (p *otoPlayer) Play(src io.Reader) error {
	player := p.ctx.NewPlayer(src)
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

func (p *otoPlayer) Close() error {
	return p.ctx.Suspend()
}
