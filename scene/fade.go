package scene

// fadeFrames is how long a new scene takes to fade in from black.
const fadeFrames = 20

// Fade darkens the screen right after a scene switch and lifts over a few
// frames. It never delays the switch itself.
type Fade struct {
	Active   bool
	Frames   int
	Duration int
}

func NewFade(duration int) *Fade {
	return &Fade{Duration: duration}
}

// Start restarts the fade at full black.
func (f *Fade) Start() {
	if f == nil || f.Duration <= 0 {
		return
	}
	f.Active = true
	f.Frames = 0
}

// Update advances one frame.
func (f *Fade) Update() {
	if f == nil || !f.Active {
		return
	}
	f.Frames++
	if f.Frames >= f.Duration {
		f.Active = false
		f.Frames = 0
	}
}

// Alpha is the opacity of the black overlay, from 1 down to 0.
func (f *Fade) Alpha() float64 {
	if f == nil || !f.Active {
		return 0
	}
	alpha := 1 - float64(f.Frames)/float64(f.Duration)
	if alpha < 0 {
		alpha = 0
	}
	return alpha
}
