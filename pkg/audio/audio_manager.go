// Package audio 合成并播放游戏音效
package audio

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// AudioManager 音频管理器
// 所有音效都是合成的（beep generators），不依赖音频文件
//
// speaker 未初始化（初始化失败或被禁用）时所有播放调用都是空操作。
type AudioManager struct {
	mu              sync.Mutex
	settingsManager *game.SettingsManager // 设置管理器（读取音效开关和音量，可为 nil）
	baseVolume      float64          // 配置文件中的音量偏移（以 2 为底）
	initialized     bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（可为 nil）
//   - baseVolume: 以 2 为底的音量偏移，0 为原始音量
func NewAudioManager(sm *game.SettingsManager, baseVolume float64) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		baseVolume:      baseVolume,
	}
}

// Initialize 初始化扬声器
func (am *AudioManager) Initialize() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	am.initialized = true
	log.Printf("[AudioManager] Speaker initialized at %d Hz", sampleRate)
	return nil
}

// Close 关闭扬声器
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	am.initialized = false
}

// PlaySound 播放音效
func (am *AudioManager) PlaySound(id game.SoundID) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized {
		return
	}

	volume, silent := am.volume()
	if silent {
		return
	}

	streamer, err := buildSound(id)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to build sound %s: %v", id, err)
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volume,
	})
}

// volume 合并配置音量和玩家设置
// 返回以 2 为底的音量值，以及是否应该静音
func (am *AudioManager) volume() (float64, bool) {
	volume := am.baseVolume
	if am.settingsManager == nil {
		return volume, false
	}

	settings := am.settingsManager.GetSettings()
	if !settings.SoundEnabled || settings.SoundVolume <= 0 {
		return 0, true
	}
	return volume + math.Log2(settings.SoundVolume), false
}

// buildSound 合成音效
func buildSound(id game.SoundID) (beep.Streamer, error) {
	switch id {
	case game.SoundPlayerLaser:
		return sweep(1400, 600, 90*time.Millisecond), nil
	case game.SoundEnemyLaser:
		return sweep(700, 300, 70*time.Millisecond), nil
	case game.SoundExplosion:
		return noiseBurst(350 * time.Millisecond), nil
	case game.SoundPlayerHit:
		return beep.Seq(noiseBurst(200*time.Millisecond), sweep(400, 80, 250*time.Millisecond)), nil
	case game.SoundGameOver:
		tones := make([]beep.Streamer, 0, 3)
		for _, freq := range []float64{523.25, 392.0, 261.63} {
			tone, err := generators.SineTone(sampleRate, freq)
			if err != nil {
				return nil, err
			}
			tones = append(tones, beep.Take(sampleRate.N(180*time.Millisecond), tone))
		}
		return beep.Seq(tones...), nil
	default:
		return nil, fmt.Errorf("unknown sound id %d", int(id))
	}
}

// sweep 从 from 频率线性滑到 to 频率的正弦音
func sweep(from, to float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	position := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if position >= total {
				return i, i > 0
			}
			progress := float64(position) / float64(total)
			freq := from + (to-from)*progress
			val := math.Sin(2*math.Pi*phase) * (1 - progress)
			samples[i][0] = val
			samples[i][1] = val

			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)
			position++
		}
		return len(samples), true
	})
}

// noiseBurst 线性衰减的白噪声
func noiseBurst(duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if position >= total {
				return i, i > 0
			}
			envelope := 1 - float64(position)/float64(total)
			val := (rand.Float64()*2 - 1) * envelope
			samples[i][0] = val
			samples[i][1] = val
			position++
		}
		return len(samples), true
	})
}
