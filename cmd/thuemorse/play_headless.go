//go:build headless

package main

import (
	"fmt"
	"io"
)

// headlessPlayer renders at full speed and discards the audio.
type headlessPlayer struct{}

func newAudioPlayer(sampleRate int) (audioPlayer, error) {
	return headlessPlayer{}, nil
}

func (headlessPlayer) Play(src io.Reader) error {
	if _, err := io.Copy(io.Discard, src); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

func (headlessPlayer) Close() error { return nil }
