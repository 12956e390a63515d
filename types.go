package animbin

// Matrix is a 4x4 transform stored row-major as M11..M14, M21..M24,
// M31..M34, M41..M44. On the wire it is 16 consecutive little-endian
// float32 values in the same order.
type Matrix [16]float32

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given zero-based row and column.
func (m Matrix) At(row, col int) float32 { return m[row*4+col] }

// Keyframe is a sampled pose for one bone at one point in time. Time is an
// opaque ordering/seek key; the format does not define its origin or unit.
type Keyframe struct {
	Transform Matrix
	Time      int64
}

// BoneTrack is the sequence of keyframes animating a single bone. Keyframes
// are assumed to be in ascending Time order but the format does not enforce
// this, and neither does the decoder.
type BoneTrack struct {
	Bone      string
	Keyframes []Keyframe
}

// Animation is a named collection of bone tracks, in the order they were
// decoded.
type Animation struct {
	Name   string
	Tracks []BoneTrack
}

// AnimationSet maps animation names to animations while preserving the
// order in which they were added. It is populated during one decode call
// and not mutated afterward.
type AnimationSet struct {
	names  []string
	byName map[string]*Animation
}

// NewAnimationSet returns an empty set.
func NewAnimationSet() *AnimationSet {
	return &AnimationSet{byName: make(map[string]*Animation)}
}

// Add inserts a under its Name. Adding a name that already exists replaces
// the earlier animation (last write wins) and keeps the original position
// in iteration order.
func (s *AnimationSet) Add(a *Animation) {
	if _, ok := s.byName[a.Name]; !ok {
		s.names = append(s.names, a.Name)
	}
	s.byName[a.Name] = a
}

// Get returns the animation stored under name.
func (s *AnimationSet) Get(name string) (*Animation, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Names returns the animation names in insertion order. The returned slice
// is shared with the set and must not be modified.
func (s *AnimationSet) Names() []string { return s.names }

// Len returns the number of animations in the set.
func (s *AnimationSet) Len() int { return len(s.names) }
