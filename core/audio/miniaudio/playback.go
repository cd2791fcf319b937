package miniaudio

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

type playbackClient struct {
	device *malgo.Device
	config malgo.DeviceConfig

	gain      float64
	periodDur time.Duration

	leftoverAudio []byte
	marks         []playbackMark

	mu      sync.Mutex
	audioMu sync.Mutex
	marksMu sync.Mutex
}

type playbackMark struct {
	position int
	callback func()
}

func (c *playbackClient) Init(audioContext *malgo.AllocatedContext, options clientOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sampleRate := uint32(math.Round(float64(options.encodingInfo.SampleRate) * options.rateFactor))
	if sampleRate == 0 {
		return fmt.Errorf("invalid playback sample rate")
	}
	channels := 1
	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * channels

	c.config = malgo.DefaultDeviceConfig(malgo.Playback)
	c.config.SampleRate = sampleRate
	c.config.Playback.Format = format
	c.config.Playback.Channels = uint32(channels)
	c.config.Alsa.NoMMap = 1
	c.config.PeriodSizeInFrames = sampleRate / 10 // ~100ms of audio
	c.config.Periods = 4

	c.gain = options.gain
	c.periodDur = 100 * time.Millisecond

	var err error
	if c.device, err = malgo.InitDevice(
		audioContext.Context,
		c.config,
		malgo.DeviceCallbacks{Data: c.processAudio(bytesPerFrame)},
	); err != nil {
		return err
	}

	return nil
}

func (c *playbackClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	if err := c.device.Start(); err != nil {
		return fmt.Errorf("failed to start playback device: %w", err)
	}

	return nil
}

// Play queues the whole PCM buffer and blocks until the device has consumed
// it, plus the device's own period buffer so the tail is audible.
func (c *playbackClient) Play(ctx context.Context, pcm []byte) error {
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	} else if !c.device.IsStarted() {
		return fmt.Errorf("device not started")
	}

	done := make(chan struct{})

	c.audioMu.Lock()
	c.leftoverAudio = append(c.leftoverAudio, applyGain(pcm, c.gain)...)
	c.marksMu.Lock()
	c.marks = append(c.marks, playbackMark{
		position: len(c.leftoverAudio),
		callback: func() { close(done) },
	})
	c.marksMu.Unlock()
	c.audioMu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		c.clearBuffer()
		return ctx.Err()
	}

	// The mark fires when the callback has copied the last byte out of the
	// queue; the device is still voicing its internal periods.
	time.Sleep(time.Duration(c.config.Periods) * c.periodDur)
	return nil
}

func (c *playbackClient) clearBuffer() {
	c.audioMu.Lock()
	c.marksMu.Lock()
	defer c.audioMu.Unlock()
	defer c.marksMu.Unlock()
	c.leftoverAudio = nil
	c.marks = nil
}

func (c *playbackClient) Uninit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	c.device.Uninit()
	c.device = nil

	return nil
}

func (c *playbackClient) processAudio(bytesPerFrame int) malgo.DataProc {
	return func(pOutput, _ []byte, frameCount uint32) {
		need := int(frameCount) * bytesPerFrame

		c.audioMu.Lock()
		if len(c.leftoverAudio) <= need {
			copy(pOutput, c.leftoverAudio)
			c.leftoverAudio = nil
		} else {
			copy(pOutput, c.leftoverAudio[:need])
			c.leftoverAudio = c.leftoverAudio[need:]
		}
		c.audioMu.Unlock()

		c.processMarks(need)
	}
}

func (c *playbackClient) processMarks(consumed int) {
	c.marksMu.Lock()
	passedMarks := 0
	for i := range c.marks {
		if c.marks[i].position > consumed {
			c.marks[i].position -= consumed
		} else {
			passedMarks++
		}
	}
	toCall := c.marks[:passedMarks:passedMarks]
	c.marks = c.marks[passedMarks:]
	c.marksMu.Unlock()

	if len(toCall) > 0 {
		go func() {
			for _, mark := range toCall {
				mark.callback()
			}
		}()
	}
}

// applyGain scales little-endian signed 16-bit samples, clamping at the int16
// bounds.
func applyGain(pcm []byte, gain float64) []byte {
	if gain == 1.0 {
		return pcm
	}

	out := make([]byte, len(pcm))
	copy(out, pcm)
	for i := 0; i+1 < len(out); i += 2 {
		sample := float64(int16(binary.LittleEndian.Uint16(out[i:]))) * gain
		if sample > math.MaxInt16 {
			sample = math.MaxInt16
		} else if sample < math.MinInt16 {
			sample = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(sample)))
	}
	return out
}
