package animbin

import "fmt"

// checkCount rejects negative counts before any loop runs on them.
func checkCount(at int64, what string, n int32) error {
	if n < 0 {
		return &Error{
			Offset: at,
			Kind:   ErrMalformedLength,
			Detail: fmt.Sprintf("negative %s %d", what, n),
		}
	}
	return nil
}

// Decode reads one animation set from r, consuming exactly the bytes the
// declared structure occupies and leaving the cursor just past it. On
// error no partial result is returned and the cursor position is
// unspecified.
func Decode(r *Reader) (*AnimationSet, error) {
	at := r.Offset()
	animationCount, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if err := checkCount(at, "animation count", animationCount); err != nil {
		return nil, err
	}

	set := NewAnimationSet()
	for i := int32(0); i < animationCount; i++ {
		anim, err := decodeAnimation(r)
		if err != nil {
			return nil, err
		}
		set.Add(anim)
	}
	return set, nil
}

func decodeAnimation(r *Reader) (*Animation, error) {
	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	at := r.Offset()
	trackCount, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if err := checkCount(at, "bone track count", trackCount); err != nil {
		return nil, err
	}

	anim := &Animation{Name: name}
	for i := int32(0); i < trackCount; i++ {
		track, err := decodeBoneTrack(r)
		if err != nil {
			return nil, err
		}
		anim.Tracks = append(anim.Tracks, track)
	}
	return anim, nil
}

func decodeBoneTrack(r *Reader) (BoneTrack, error) {
	var track BoneTrack
	bone, err := r.ReadString()
	if err != nil {
		return track, err
	}
	at := r.Offset()
	keyframeCount, err := r.ReadInt32()
	if err != nil {
		return track, err
	}
	if err := checkCount(at, "keyframe count", keyframeCount); err != nil {
		return track, err
	}

	track.Bone = bone
	for i := int32(0); i < keyframeCount; i++ {
		transform, err := r.ReadMatrix()
		if err != nil {
			return track, err
		}
		time, err := r.ReadInt64()
		if err != nil {
			return track, err
		}
		track.Keyframes = append(track.Keyframes, Keyframe{Transform: transform, Time: time})
	}
	return track, nil
}

// Unmarshal decodes data as a complete animation set. Bytes left over
// after the declared structure are treated as a structural error: the
// counts in the stream do not account for the content that is actually
// present.
func Unmarshal(data []byte) (*AnimationSet, error) {
	r := NewReader(data)
	set, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if n := r.Remaining(); n > 0 {
		return nil, &Error{
			Offset: r.Offset(),
			Kind:   ErrStructuralMismatch,
			Detail: fmt.Sprintf("%d trailing bytes after declared structure", n),
		}
	}
	return set, nil
}
