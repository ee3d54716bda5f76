package aml

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// PlayState is the playback state of a binding.
type PlayState uint8

const (
	StateIdle          PlayState = iota // not playing
	StatePendingStart                   // before the scene's start time; holding from values
	StateRunning                        // interpolating between from and to
	StateSceneDone                      // past the scene's end; snapped to to values
	StateChainComplete                  // last scene done; transform release pending
	numPlayStates
)

var playStateNames = [...]string{"Idle", "PendingStart", "Running", "SceneDone", "ChainComplete"}

func (s PlayState) String() string {
	if s < numPlayStates {
		return playStateNames[s]
	}
	return fmt.Sprintf("PlayState(%d)", s)
}

// transitions[from] has bit `to` set when from -> to is allowed. Every state
// may restart at PendingStart (Run) and stop at Idle (target disposed).
var transitions = [numPlayStates]uint8{
	StateIdle:          1<<StatePendingStart | 1<<StateIdle,
	StatePendingStart:  1<<StatePendingStart | 1<<StateRunning | 1<<StateSceneDone | 1<<StateIdle,
	StateRunning:       1<<StatePendingStart | 1<<StateRunning | 1<<StateSceneDone | 1<<StateIdle,
	StateSceneDone:     1<<StatePendingStart | 1<<StateChainComplete | 1<<StateIdle,
	StateChainComplete: 1<<StatePendingStart | 1<<StateIdle,
}

func canTransition(from, to PlayState) bool {
	if from >= numPlayStates || to >= numPlayStates {
		return false
	}
	return transitions[from]&(1<<to) != 0
}

// Channel indexes. Every channel is evaluated independently each tick.
const (
	chX = iota
	chY
	chW
	chH
	chAngleX
	chAngleY
	chAngleZ
	chRed
	chGreen
	chBlue
	chAlpha
	numChannels
)

// channels is one value per animated channel.
type channels [numChannels]float64

// basisFromBounds returns the state a target starts from: its bind-time
// geometry, no rotation, opaque white.
func basisFromBounds(r Rect) channels {
	return channels{
		chX: r.X, chY: r.Y, chW: r.Width, chH: r.Height,
		chRed: 255, chGreen: 255, chBlue: 255, chAlpha: 255,
	}
}

// activeScene holds the absolute endpoints of the scene being played. They
// are resolved once, when the scene starts; the Scene itself is never
// written to.
type activeScene struct {
	scene  *Scene
	from   channels
	to     channels
	curves [numChannels]Curve
}

// activate resolves s against the bind-time basis and the previous scene's
// end state.
func activate(s *Scene, object, current channels) activeScene {
	a := activeScene{scene: s}
	axes := [...]*AxisSpec{chX: &s.X, chY: &s.Y, chW: &s.W, chH: &s.H}
	for i, ax := range axes {
		a.from[i] = Resolve(ax.fromStandard(), object[i], current[i], float64(ax.From))
		a.to[i] = Resolve(ax.toStandard(), object[i], current[i], float64(ax.To))
		a.curves[i] = ax.Curve
	}
	rotations := [...]*RotationSpec{&s.AngleX, &s.AngleY, &s.AngleZ}
	for i, r := range rotations {
		a.from[chAngleX+i] = r.From
		a.to[chAngleX+i] = r.To
		a.curves[chAngleX+i] = r.Curve
	}
	colors := [...]*ColorSpec{&s.Red, &s.Green, &s.Blue, &s.Alpha}
	for i, c := range colors {
		a.from[chRed+i] = float64(c.From)
		a.to[chRed+i] = float64(c.To)
		a.curves[chRed+i] = c.Curve
	}
	return a
}

// at returns the channel values elapsed seconds after the scene became
// active, and the state they put the scene in.
func (a *activeScene) at(elapsed float64) (channels, PlayState) {
	s := a.scene
	switch {
	case s.Degenerate():
		return a.from, StateSceneDone
	case elapsed < s.Start:
		return a.from, StatePendingStart
	case elapsed > s.End, s.Duration() == 0:
		return a.to, StateSceneDone
	}
	progress := (elapsed - s.Start) / s.Duration()
	var v channels
	for i := range v {
		v[i] = a.from[i] + Evaluate(a.curves[i], progress, a.to[i]-a.from[i])
	}
	return v, StateRunning
}

// playback is the transient per-binding state.
type playback struct {
	state      PlayState
	sceneIndex int
	sceneStart time.Duration

	object  channels // bind-time basis for OBJECT
	current channels // end state of the previous scene, basis for CURRENT
	active  activeScene
	values  channels // last values handed to the sink
	applied *Scene   // scene that produced values; nil before the first step

	// engaged is set once the sink has received a transform that has not
	// been released yet.
	engaged bool
}

// stepResult reports what one step did.
type stepResult struct {
	values     channels
	scene      *Scene // scene that produced values; nil when nothing to apply
	degenerate bool
	chained    bool
	completed  bool
}

func (p *playback) setState(to PlayState) bool {
	if !canTransition(p.state, to) {
		return false
	}
	p.state = to
	return true
}

// start rewinds to the first scene.
func (p *playback) start(anim *Animation, now time.Duration) {
	p.setState(StatePendingStart)
	p.sceneIndex = 0
	p.sceneStart = now
	p.current = p.object
	p.values = p.object
	p.applied = nil
	if len(anim.Scenes) > 0 {
		p.active = activate(&anim.Scenes[0], p.object, p.current)
	} else {
		p.active = activeScene{}
	}
}

// step advances playback to now. When the current scene finishes, the
// transition to the next scene (or to the end of the chain) is resolved
// before returning, so callers never see a half-chained binding.
func (p *playback) step(anim *Animation, now time.Duration) stepResult {
	if p.active.scene == nil {
		// Nothing to play: the chain is complete right away.
		p.setState(StateSceneDone)
		p.setState(StateChainComplete)
		return stepResult{completed: true}
	}
	scene := p.active.scene
	values, st := p.active.at((now - p.sceneStart).Seconds())
	res := stepResult{values: values, scene: scene, degenerate: scene.Degenerate()}
	p.values = values
	p.applied = scene
	p.setState(st)
	if st != StateSceneDone {
		return res
	}

	p.current = values
	if p.sceneIndex+1 < len(anim.Scenes) {
		p.sceneIndex++
		p.sceneStart = now
		p.active = activate(&anim.Scenes[p.sceneIndex], p.object, p.current)
		p.setState(StatePendingStart)
		res.chained = true
		return res
	}
	p.setState(StateChainComplete)
	res.completed = true
	return res
}

// Frame is what the sink last received for a binding.
type Frame struct {
	Transform Transform
	Color     color.NRGBA
}

// composeTransform builds the sink transform from channel values. Zoom is
// relative to the bind-time size; a zero-sized target keeps zoom 1.
func composeTransform(v, object channels, center Center, perspective float64) Transform {
	w, h := v[chW], v[chH]
	zoomW, zoomH := 1.0, 1.0
	if object[chW] != 0 {
		zoomW = w / object[chW]
	}
	if object[chH] != 0 {
		zoomH = h / object[chH]
	}
	return Transform{
		X:           v[chX],
		Y:           v[chY],
		Width:       w,
		Height:      h,
		ScaleX:      zoomW,
		ScaleY:      zoomH,
		Angle:       Vec3{v[chAngleX], v[chAngleY], v[chAngleZ]},
		Pivot:       ResolveCenter(center.Attribute, w, h, center.X, center.Y, center.Z),
		Perspective: perspective,
	}
}

// composeColor rounds the color channels to 0-255.
func composeColor(v channels) color.NRGBA {
	return color.NRGBA{
		R: channelByte(v[chRed]),
		G: channelByte(v[chGreen]),
		B: channelByte(v[chBlue]),
		A: channelByte(v[chAlpha]),
	}
}

func channelByte(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(math.Round(f))
}
