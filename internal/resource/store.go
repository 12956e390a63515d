// Package resource stores packed animation data in a bolt resource file.
// Animations live in the "animations" bucket keyed by name, each encoded
// as a single-entry animation set; the "tags" bucket maps a tag to the
// list of animation names carrying it.
package resource

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jeffhube/animbin"
)

var (
	animationsBucket = []byte("animations")
	tagsBucket       = []byte("tags")
)

// Store is a handle to an open resource file.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the resource file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying resource file.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutSet stores every animation in the set under its own name. Existing
// entries with the same name are overwritten.
func (s *Store) PutSet(set *animbin.AnimationSet) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists(animationsBucket)
		if err != nil {
			return err
		}
		for _, name := range set.Names() {
			anim, _ := set.Get(name)
			single := animbin.NewAnimationSet()
			single.Add(anim)
			if err := buck.Put([]byte(name), animbin.Marshal(single)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Animation loads and decodes the animation stored under name.
func (s *Store) Animation(name string) (*animbin.Animation, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(animationsBucket)
		if buck == nil {
			return fmt.Errorf("the animations bucket not found")
		}
		v := buck.Get([]byte(name))
		if v == nil {
			return fmt.Errorf("animation '%s' not found", name)
		}
		// Bolt-owned memory is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	set, err := animbin.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	anim, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("animation '%s' stored under the wrong name", name)
	}
	return anim, nil
}

// AnimationNames lists the stored animation names in key order.
func (s *Store) AnimationNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(animationsBucket)
		if buck == nil {
			return nil
		}
		return buck.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// PutTag stores the list of animation names carrying tag, encoded with the
// same string codec the animation format uses: an int32 count followed by
// length-prefixed names.
func (s *Store) PutTag(tag string, names []string) error {
	w := animbin.NewWriter()
	w.WriteInt32(int32(len(names)))
	for _, name := range names {
		w.WriteString(name)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists(tagsBucket)
		if err != nil {
			return err
		}
		return buck.Put([]byte(tag), w.Bytes())
	})
}

// Tag loads the list of animation names stored under tag.
func (s *Store) Tag(tag string) ([]string, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(tagsBucket)
		if buck == nil {
			return fmt.Errorf("the tags bucket not found")
		}
		v := buck.Get([]byte(tag))
		if v == nil {
			return fmt.Errorf("tag '%s' not found", tag)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r := animbin.NewReader(data)
	count, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("tag '%s' has negative name count %d", tag, count)
	}
	names := make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Tags lists the stored tag names in key order.
func (s *Store) Tags() ([]string, error) {
	var tags []string
	err := s.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(tagsBucket)
		if buck == nil {
			return nil
		}
		return buck.ForEach(func(k, v []byte) error {
			tags = append(tags, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
