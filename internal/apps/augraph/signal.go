package augraph

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// Sample is one point of the signal: seconds from the start and the
// amplitude in [-1, 1].
type Sample [2]float64

// ReadFile decodes a PCM WAV file into a mono signal. Channels are averaged
// and amplitudes are normalized by the file's bit depth.
func ReadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid WAV file", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := int(d.NumChans)
	if channels == 0 || d.SampleRate == 0 || d.BitDepth == 0 {
		return nil, errors.New("audio file has no usable format")
	}
	return Mono(buf.Data, channels, int(d.BitDepth), int(d.SampleRate)), nil
}

// Mono averages interleaved samples across channels. A trailing partial frame
// is dropped.
func Mono(data []int, channels, bitDepth, sampleRate int) []Sample {
	scale := math.Exp2(float64(bitDepth - 1))
	frames := len(data) / channels
	out := make([]Sample, frames)
	for i := range frames {
		sum := 0
		for _, v := range data[i*channels : (i+1)*channels] {
			sum += v
		}
		out[i] = Sample{
			float64(i) / float64(sampleRate),
			float64(sum) / float64(channels) / scale,
		}
	}
	return out
}
