// Package audio supplies validated handles to recorded or uploaded audio
// files. The pipeline never creates or deletes audio; capture and cleanup
// belong to the hosting front end.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Handle references a playable audio resource on disk. SampleRate and
// Channels are informational; whisper resamples on its own.
type Handle struct {
	Path       string
	SampleRate int
	Channels   int
}

var ErrEmptyFile = errors.New("audio file is empty")

// Open validates that the file exists and is non-empty, and reads the WAV
// format header when present. Non-WAV files still yield a usable Handle
// with zero SampleRate/Channels.
func Open(path string) (*Handle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat audio file %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("audio file %s: %w", path, ErrEmptyFile)
	}

	h := &Handle{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file %s: %w", path, err)
	}
	defer f.Close()

	sampleRate, channels, err := readWavFormat(f)
	if err == nil {
		h.SampleRate = sampleRate
		h.Channels = channels
	}

	return h, nil
}

// readWavFormat walks the RIFF chunk list and returns the sample rate and
// channel count from the fmt chunk.
func readWavFormat(r io.Reader) (sampleRate, channels int, err error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return 0, 0, err
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return 0, 0, errors.New("not a RIFF/WAVE file")
	}

	for {
		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return 0, 0, err
		}
		chunkID := string(header[0:4])
		chunkSize := binary.LittleEndian.Uint32(header[4:8])

		if chunkID == "fmt " {
			if chunkSize < 16 {
				return 0, 0, errors.New("fmt chunk too small")
			}
			var fmtChunk [16]byte
			if _, err := io.ReadFull(r, fmtChunk[:]); err != nil {
				return 0, 0, err
			}
			channels = int(binary.LittleEndian.Uint16(fmtChunk[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(fmtChunk[4:8]))
			return sampleRate, channels, nil
		}

		// Chunks are word-aligned.
		skip := int64(chunkSize)
		if chunkSize%2 == 1 {
			skip++
		}
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return 0, 0, err
		}
	}
}
