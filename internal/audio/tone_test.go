package audio

import (
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/event"
)

const testRate = 48000

func sampleAt(data []byte, frame int) int16 {
	return int16(binary.LittleEndian.Uint16(data[frame*frameSize:]))
}

func TestSynthesizeLength(t *testing.T) {
	for _, cue := range event.AllCues() {
		stream, err := Synthesize(event.Tones(cue), testRate)
		if err != nil {
			t.Fatalf("Synthesize(%s) error: %v", cue, err)
		}

		var want time.Duration
		for _, tone := range event.Tones(cue) {
			want = max(want, tone.Delay+tone.Duration)
		}
		if got := stream.Duration(); got < want-time.Millisecond || got > want {
			t.Errorf("%s: Duration() = %v, want %v", cue, got, want)
		}
		if stream.Length()%frameSize != 0 {
			t.Errorf("%s: Length() = %d, not a whole number of frames", cue, stream.Length())
		}
	}
}

func TestSynthesizeDelayIsSilent(t *testing.T) {
	tones := []event.Tone{{Frequency: 440, Duration: 50 * time.Millisecond, Delay: 100 * time.Millisecond, Wave: event.WaveSquare}}
	stream, err := Synthesize(tones, testRate)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	data := stream.Bytes()

	silentFrames := framesFor(100*time.Millisecond, testRate)
	for i := 0; i < silentFrames; i += 97 {
		if s := sampleAt(data, i); s != 0 {
			t.Fatalf("frame %d = %d, want silence before the delay", i, s)
		}
	}

	// 淡入结束后方波应达到峰值
	mid := silentFrames + framesFor(10*time.Millisecond, testRate)
	if s := sampleAt(data, mid); s != int16(amplitude) && s != -int16(amplitude) {
		t.Errorf("square wave sample = %d, want ±%d", s, int16(amplitude))
	}
}

func TestSynthesizeStereoChannelsMatch(t *testing.T) {
	stream, err := Synthesize(event.Tones(event.CueShoot), testRate)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	data := stream.Bytes()
	for off := 0; off+frameSize <= len(data); off += frameSize * 31 {
		if data[off] != data[off+2] || data[off+1] != data[off+3] {
			t.Fatalf("left/right differ at byte %d", off)
		}
	}
}

func TestSynthesizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		tones []event.Tone
		rate  int
	}{
		{"zero rate", event.Tones(event.CuePlant), 0},
		{"zero frequency", []event.Tone{{Duration: time.Millisecond}}, testRate},
		{"zero duration", []event.Tone{{Frequency: 100}}, testRate},
		{"negative delay", []event.Tone{{Frequency: 100, Duration: time.Millisecond, Delay: -1}}, testRate},
	}
	for _, tt := range tests {
		if _, err := Synthesize(tt.tones, tt.rate); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestToneStreamReadSeek(t *testing.T) {
	stream, err := Synthesize(event.Tones(event.CueButtonClick), testRate)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	all, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if int64(len(all)) != stream.Length() {
		t.Errorf("read %d bytes, want %d", len(all), stream.Length())
	}

	pos, err := stream.Seek(-frameSize, io.SeekEnd)
	if err != nil || pos != stream.Length()-frameSize {
		t.Errorf("Seek(-frame, End) = %d, %v", pos, err)
	}
	if _, err := stream.Seek(-1, io.SeekStart); err == nil {
		t.Error("negative seek should fail")
	}
	if _, err := stream.Seek(0, 42); err == nil {
		t.Error("invalid whence should fail")
	}
}

func TestOscillateRange(t *testing.T) {
	for _, w := range []event.Waveform{event.WaveSine, event.WaveSquare, event.WaveSawtooth} {
		for i := range 100 {
			v := oscillate(w, float64(i)/100)
			if v < -1 || v > 1 {
				t.Errorf("%s at phase %v = %v, out of range", w, float64(i)/100, v)
			}
		}
	}
}
