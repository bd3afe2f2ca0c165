package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/gravshift/obj"
)

const sampleRate = 44100

var soundFiles = map[string]string{
	obj.SoundShoot:      "shoot.wav",
	obj.SoundHurt:       "hurt.wav",
	obj.SoundEnemyDeath: "enemy_death.wav",
}

// Sounds plays the embedded one-shot samples. It satisfies obj.SoundPlayer.
type Sounds struct {
	players map[string]*audio.Player
	volume  float64
}

// NewSounds decodes every sample. A sample that fails to load is logged and
// stays silent. Only one audio context may exist per process, so call this
// once.
func NewSounds(volume float64) *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	s := &Sounds{players: make(map[string]*audio.Player, len(soundFiles)), volume: volume}
	for name, file := range soundFiles {
		p, err := loadAudioPlayer(ctx, file)
		if err != nil {
			log.Printf("assets: sound %s: %v", name, err)
			continue
		}
		p.SetVolume(volume)
		s.players[name] = p
	}
	return s
}

// Play restarts the named sample from the beginning.
func (s *Sounds) Play(name string) {
	if s == nil {
		return
	}
	p, ok := s.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("assets: rewind %s: %v", name, err)
		return
	}
	p.Play()
}

func (s *Sounds) IsPlaying(name string) bool {
	if s == nil {
		return false
	}
	p, ok := s.players[name]
	return ok && p.IsPlaying()
}

// SetVolume applies to every sample, 0 to 1.
func (s *Sounds) SetVolume(v float64) {
	if s == nil {
		return
	}
	s.volume = v
	for _, p := range s.players {
		p.SetVolume(v)
	}
}
