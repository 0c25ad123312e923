package audio

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func box(typ string, payload ...[]byte) []byte {
	var body []byte
	for _, p := range payload {
		body = append(body, p...)
	}
	out := make([]byte, 8, 8+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(8+len(body)))
	copy(out[4:8], typ)
	return append(out, body...)
}

func mvhdV0(timescale, duration uint32) []byte {
	p := make([]byte, 20)
	binary.BigEndian.PutUint32(p[12:16], timescale)
	binary.BigEndian.PutUint32(p[16:20], duration)
	return box("mvhd", p)
}

func mvhdV1(timescale uint32, duration uint64) []byte {
	p := make([]byte, 32)
	p[0] = 1
	binary.BigEndian.PutUint32(p[20:24], timescale)
	binary.BigEndian.PutUint64(p[24:32], duration)
	return box("mvhd", p)
}

func TestMP4Duration(t *testing.T) {
	file := append(box("ftyp", []byte("M4A \x00\x00\x00\x00")), box("moov", mvhdV0(44100, 88200))...)
	d, err := MP4Duration(file)
	if err != nil {
		t.Fatalf("MP4Duration returned error: %v", err)
	}
	if d != 2*time.Second {
		t.Errorf("expected 2s, got %v", d)
	}
}

func TestMP4DurationVersion1(t *testing.T) {
	file := box("moov", box("trak"), mvhdV1(1000, 1500))
	d, err := MP4Duration(file)
	if err != nil {
		t.Fatalf("MP4Duration returned error: %v", err)
	}
	if d != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", d)
	}
}

func TestMP4DurationMissingHeader(t *testing.T) {
	if _, err := MP4Duration(box("ftyp", []byte("isom"))); !errors.Is(err, ErrNoDuration) {
		t.Errorf("expected ErrNoDuration, got %v", err)
	}
	if _, err := MP4Duration([]byte{0, 0, 0}); !errors.Is(err, ErrNoDuration) {
		t.Errorf("expected ErrNoDuration for truncated input, got %v", err)
	}
}

func TestMP4DurationLargeVersion1(t *testing.T) {
	// 12e9 units at 1kHz is 12e6 seconds, past the point where units*time.Second overflows.
	d, err := MP4Duration(box("moov", mvhdV1(1000, 12_000_000_500)))
	if err != nil {
		t.Fatalf("MP4Duration returned error: %v", err)
	}
	if want := 12_000_000*time.Second + 500*time.Millisecond; d != want {
		t.Errorf("expected %v, got %v", want, d)
	}
}

func TestMP4DurationOutOfRange(t *testing.T) {
	if _, err := MP4Duration(box("moov", mvhdV1(1, 1<<63))); !errors.Is(err, ErrDurationOverflow) {
		t.Errorf("expected ErrDurationOverflow, got %v", err)
	}
}
