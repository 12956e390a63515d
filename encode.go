package animbin

// Encode writes set to w in the wire format, emitting animations in the
// set's insertion order. Decoding the produced bytes yields a set
// structurally equal to the input.
func Encode(w *Writer, set *AnimationSet) {
	names := set.Names()
	w.WriteInt32(int32(len(names)))
	for _, name := range names {
		anim, _ := set.Get(name)
		w.WriteString(anim.Name)
		w.WriteInt32(int32(len(anim.Tracks)))
		for _, track := range anim.Tracks {
			w.WriteString(track.Bone)
			w.WriteInt32(int32(len(track.Keyframes)))
			for _, kf := range track.Keyframes {
				w.WriteMatrix(kf.Transform)
				w.WriteInt64(kf.Time)
			}
		}
	}
}

// Marshal encodes set into a fresh byte slice.
func Marshal(set *AnimationSet) []byte {
	w := NewWriter()
	Encode(w, set)
	return w.Bytes()
}
