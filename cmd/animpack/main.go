package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/jeffhube/animbin"
	"github.com/jeffhube/animbin/internal/resource"
)

var (
	animationsIndexPath string
	resourceFilePath    string
	validateOnly        bool
	listContents        bool
)

func parseFlags() {
	flag.StringVar(&animationsIndexPath, "animations-meta", "./animations-meta.yml",
		"Path to the file where animation descriptions are stored.")
	flag.StringVar(&resourceFilePath, "out", "./stage.res",
		"Resource file to store animations and tags.")
	flag.BoolVar(&validateOnly, "validate", false,
		"Decode and check every listed animation without writing the resource file.")
	flag.BoolVar(&listContents, "list", false,
		"Print the animations and tags stored in the resource file.")

	flag.Parse()
}

// AnimationMeta is animation metadata read from the YAML index.
type AnimationMeta struct {
	Name string `yaml:"name"`
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

func main() {
	parseFlags()

	if listContents {
		listResourceFile()
		return
	}

	// Read the animation index.
	contents, err := os.ReadFile(animationsIndexPath)
	if err != nil {
		fatalf("read index: %v", err)
	}
	var animationsMeta []AnimationMeta
	if err := yaml.Unmarshal(contents, &animationsMeta); err != nil {
		fatalf("parse index: %v", err)
	}

	// Decode every listed animation file. A decode error means the asset
	// is corrupt and the whole run is rejected.
	packed := animbin.NewAnimationSet()
	animTags := map[string][]string{}
	var tagOrder []string

	for _, animMeta := range animationsMeta {
		data, err := os.ReadFile(animMeta.File)
		if err != nil {
			fatalf("read '%s': %v", animMeta.Name, err)
		}
		set, err := animbin.Unmarshal(data)
		if err != nil {
			fatalf("decode '%s': %v", animMeta.Name, err)
		}
		anim, ok := set.Get(animMeta.Name)
		if !ok {
			fatalf("animation '%s' not found in %s", animMeta.Name, animMeta.File)
		}
		packed.Add(anim)

		if animMeta.Tag == "" {
			continue
		}
		if _, ok := animTags[animMeta.Tag]; !ok {
			tagOrder = append(tagOrder, animMeta.Tag)
		}
		animTags[animMeta.Tag] = append(animTags[animMeta.Tag], animMeta.Name)
	}

	if validateOnly {
		return
	}

	// Save everything.
	store, err := resource.Open(resourceFilePath)
	if err != nil {
		fatalf("open resource file: %v", err)
	}
	defer store.Close()

	if err := store.PutSet(packed); err != nil {
		fatalf("store animations: %v", err)
	}
	for _, tagID := range tagOrder {
		if err := store.PutTag(tagID, animTags[tagID]); err != nil {
			fatalf("store tag '%s': %v", tagID, err)
		}
	}
}

func listResourceFile() {
	store, err := resource.Open(resourceFilePath)
	if err != nil {
		fatalf("open resource file: %v", err)
	}
	defer store.Close()

	names, err := store.AnimationNames()
	if err != nil {
		fatalf("list animations: %v", err)
	}
	for _, name := range names {
		anim, err := store.Animation(name)
		if err != nil {
			fatalf("load '%s': %v", name, err)
		}
		keyframes := 0
		for _, track := range anim.Tracks {
			keyframes += len(track.Keyframes)
		}
		fmt.Printf("%s: %d bone tracks, %d keyframes\n",
			anim.Name, len(anim.Tracks), keyframes)
	}

	tags, err := store.Tags()
	if err != nil {
		fatalf("list tags: %v", err)
	}
	for _, tag := range tags {
		members, err := store.Tag(tag)
		if err != nil {
			fatalf("load tag '%s': %v", tag, err)
		}
		fmt.Printf("tag %s: %v\n", tag, members)
	}
}

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}
