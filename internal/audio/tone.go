// Package audio 把提示音的音符序列合成为 16 位立体声 PCM
//
// 输出格式与 Ebitengine audio.Player 要求一致：小端有符号 16 位，左右声道交错
package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gonewx/lanedefense/pkg/event"
)

const (
	channels       = 2
	bytesPerSample = 2
	frameSize      = channels * bytesPerSample

	// amplitude 峰值幅度（约 0.3 * MaxInt16），留出余量避免多个音符叠加时削波
	amplitude = 9830
	// fadeTime 音符首尾的线性淡入淡出，消除爆音
	fadeTime = 5 * time.Millisecond
)

// ToneStream 合成好的 PCM 数据流
type ToneStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// Synthesize 合成音符序列
//
// 参数：
//   - tones: 音符（各自带延迟，可以重叠）
//   - sampleRate: 采样率，必须与 audio.Context 一致
func Synthesize(tones []event.Tone, sampleRate int) (*ToneStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	var total time.Duration
	for _, t := range tones {
		if t.Frequency <= 0 || t.Duration <= 0 || t.Delay < 0 {
			return nil, fmt.Errorf("invalid tone: %+v", t)
		}
		total = max(total, t.Delay+t.Duration)
	}

	frames := framesFor(total, sampleRate)
	mix := make([]float64, frames)
	for _, t := range tones {
		start := framesFor(t.Delay, sampleRate)
		n := framesFor(t.Duration, sampleRate)
		fade := min(framesFor(fadeTime, sampleRate), n/2)
		for i := 0; i < n && start+i < frames; i++ {
			phase := math.Mod(t.Frequency*float64(i)/float64(sampleRate), 1)
			v := oscillate(t.Wave, phase)
			if fade > 0 {
				switch {
				case i < fade:
					v *= float64(i) / float64(fade)
				case i >= n-fade:
					v *= float64(n-1-i) / float64(fade)
				}
			}
			mix[start+i] += v
		}
	}

	data := make([]byte, frames*frameSize)
	for i, v := range mix {
		v = min(max(v, -1), 1)
		s := int16(v * amplitude)
		for ch := range channels {
			off := i*frameSize + ch*bytesPerSample
			data[off] = byte(s)
			data[off+1] = byte(s >> 8)
		}
	}

	return &ToneStream{data: data, sampleRate: sampleRate}, nil
}

// oscillate 单周期波形，phase 取值 [0, 1)，返回 [-1, 1]
func oscillate(w event.Waveform, phase float64) float64 {
	switch w {
	case event.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case event.WaveSawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func framesFor(d time.Duration, sampleRate int) int {
	return int(d.Seconds() * float64(sampleRate))
}

// Bytes 返回完整的 PCM 数据
func (s *ToneStream) Bytes() []byte {
	return s.data
}

// Read 实现 io.Reader
func (s *ToneStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length PCM 数据的字节数
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// Duration 播放时长
func (s *ToneStream) Duration() time.Duration {
	frames := len(s.data) / frameSize
	return time.Duration(frames) * time.Second / time.Duration(s.sampleRate)
}

// SampleRate 采样率
func (s *ToneStream) SampleRate() int {
	return s.sampleRate
}
