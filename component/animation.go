package component

// Clip describes one named animation: how many frames it has, how long each
// frame is shown, and whether it wraps.
type Clip struct {
	Name      string
	Frames    int
	FrameTime float64
	Loop      bool
}

type clipState struct {
	frame    int
	elapsed  float64
	finished bool
}

// Animator tracks per-clip playback for an entity. It only keeps frame
// bookkeeping; renderers decide what a frame looks like.
type Animator struct {
	clips   map[string]Clip
	states  map[string]*clipState
	current string
}

// DefaultFrameTime is used when a clip does not specify one.
const DefaultFrameTime = 0.3

// NewAnimator creates an animator with the given clips. The first clip is
// current.
func NewAnimator(clips ...Clip) *Animator {
	a := &Animator{
		clips:  make(map[string]Clip, len(clips)),
		states: make(map[string]*clipState, len(clips)),
	}
	for i, c := range clips {
		if c.Frames <= 0 {
			c.Frames = 1
		}
		if c.FrameTime <= 0 {
			c.FrameTime = DefaultFrameTime
		}
		a.clips[c.Name] = c
		a.states[c.Name] = &clipState{}
		if i == 0 {
			a.current = c.Name
		}
	}
	return a
}

// Play switches to the named clip, restarting it if it was not already current.
func (a *Animator) Play(name string) {
	if a == nil || a.current == name {
		return
	}
	if _, ok := a.clips[name]; !ok {
		return
	}
	a.current = name
	a.Reset(name)
}

// Update advances the current clip.
func (a *Animator) Update(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	c, ok := a.clips[a.current]
	if !ok {
		return
	}
	st := a.states[a.current]
	if st.finished {
		return
	}
	st.elapsed += dt
	for st.elapsed >= c.FrameTime {
		st.elapsed -= c.FrameTime
		if st.frame < c.Frames-1 {
			st.frame++
			continue
		}
		if c.Loop {
			st.frame = 0
			continue
		}
		st.finished = true
		st.elapsed = 0
		break
	}
}

// ReachedEnd reports whether a non-looping clip has shown its last frame for
// its full duration.
func (a *Animator) ReachedEnd(name string) bool {
	if a == nil {
		return false
	}
	st, ok := a.states[name]
	return ok && st.finished
}

// Reset rewinds the named clip to its first frame.
func (a *Animator) Reset(name string) {
	if a == nil {
		return
	}
	if st, ok := a.states[name]; ok {
		*st = clipState{}
	}
}

// Current returns the name of the clip being played.
func (a *Animator) Current() string {
	if a == nil {
		return ""
	}
	return a.current
}

// Frame returns the frame index of the current clip.
func (a *Animator) Frame() int {
	if a == nil {
		return 0
	}
	if st, ok := a.states[a.current]; ok {
		return st.frame
	}
	return 0
}
