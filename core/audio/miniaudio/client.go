package miniaudio

import (
	"fmt"

	"github.com/claudevoice/claudevoice/core/audio"
	"github.com/gen2brain/malgo"
)

type clientOptions struct {
	encodingInfo audio.EncodingInfo
	gain         float64
	rateFactor   float64
}

type Option func(*clientOptions)

// WithEncodingInfo sets the PCM layout the playback device is opened with.
func WithEncodingInfo(encodingInfo audio.EncodingInfo) Option {
	return func(o *clientOptions) {
		if encodingInfo.IsZero() {
			return
		}
		o.encodingInfo = encodingInfo
	}
}

// WithGain sets a linear gain applied to every sample before it reaches the
// device. 1.0 is unchanged.
func WithGain(gain float64) Option {
	return func(o *clientOptions) {
		if gain < 0 {
			return
		}
		o.gain = gain
	}
}

// WithRateFactor scales the device sample rate relative to the source rate,
// which shifts both speed and pitch. 1.0 plays at the recorded rate.
func WithRateFactor(factor float64) Option {
	return func(o *clientOptions) {
		if factor <= 0 {
			return
		}
		o.rateFactor = factor
	}
}

type Client struct {
	// audioContext is only saved to be able to uninitialize it, it is an
	// ownership thing
	audioContext *malgo.AllocatedContext
	playbackClient
}

func NewClient(opts ...Option) (*Client, error) {
	options := clientOptions{
		encodingInfo: audio.GetDefaultEncodingInfo(),
		gain:         1.0,
		rateFactor:   1.0,
	}
	for _, opt := range opts {
		opt(&options)
	}

	audioCtx, err := malgo.InitContext(
		nil,
		malgo.ContextConfig{},
		func(message string) {},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio context: %w", err)
	}

	client := Client{audioContext: audioCtx}

	if err := client.playbackClient.Init(audioCtx, options); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialize playback client: %w", err)
	}

	if err := client.playbackClient.Start(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to start playback device: %w", err)
	}

	return &client, nil
}

func (c *Client) Close() {
	_ = c.playbackClient.Uninit()
	if c.audioContext != nil {
		_ = c.audioContext.Uninit()
		c.audioContext.Free()
		c.audioContext = nil
	}
}
