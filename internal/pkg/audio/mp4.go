package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"time"
)

var (
	ErrNoDuration       = errors.New("mp4: movie header not found")
	ErrDurationOverflow = errors.New("mp4: duration out of range")
)

// MP4Duration reads the duration from the moov/mvhd box of an MP4/M4A file.
func MP4Duration(data []byte) (time.Duration, error) {
	moov, ok := findBox(data, "moov")
	if !ok {
		return 0, ErrNoDuration
	}
	mvhd, ok := findBox(moov, "mvhd")
	if !ok || len(mvhd) < 4 {
		return 0, ErrNoDuration
	}

	var timescale, duration uint64
	switch version := mvhd[0]; version {
	case 0:
		// version+flags, creation, modification, timescale, duration
		if len(mvhd) < 20 {
			return 0, ErrNoDuration
		}
		timescale = uint64(binary.BigEndian.Uint32(mvhd[12:16]))
		duration = uint64(binary.BigEndian.Uint32(mvhd[16:20]))
	case 1:
		if len(mvhd) < 32 {
			return 0, ErrNoDuration
		}
		timescale = uint64(binary.BigEndian.Uint32(mvhd[20:24]))
		duration = binary.BigEndian.Uint64(mvhd[24:32])
	default:
		return 0, errors.New("mp4: unsupported mvhd version")
	}
	if timescale == 0 {
		return 0, errors.New("mp4: zero timescale")
	}
	secs, rem := duration/timescale, duration%timescale
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, ErrDurationOverflow
	}
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/timescale), nil
}

// findBox returns the payload of the first box named typ at this level.
func findBox(data []byte, typ string) ([]byte, bool) {
	for len(data) >= 8 {
		size := uint64(binary.BigEndian.Uint32(data[0:4]))
		name := string(data[4:8])
		header := uint64(8)
		switch size {
		case 0:
			size = uint64(len(data))
		case 1:
			if len(data) < 16 {
				return nil, false
			}
			size = binary.BigEndian.Uint64(data[8:16])
			header = 16
		}
		if size < header || size > uint64(len(data)) {
			return nil, false
		}
		if name == typ {
			return data[header:size], true
		}
		data = data[size:]
	}
	return nil, false
}
