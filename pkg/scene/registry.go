package scene

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSeed drives the random placement in random-spheres when built through Create
const DefaultSeed int64 = 42

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string // Human-readable name
	Description string
}

// builtins maps scene IDs to their constructors
var builtins = map[string]struct {
	description string
	create      func() (*Scene, error)
}{
	"default": {
		description: "Three spheres (diffuse, glass bubble, fuzzy metal) on a large ground sphere",
		create:      infallible(NewDefaultScene),
	},
	"defocus": {
		description: "The default scene with a wide aperture focused on the center sphere",
		create:      infallible(NewDefocusScene),
	},
	"random-spheres": {
		description: "Hundreds of small random spheres around three large ones, on a checker ground",
		create:      infallible(func() *Scene { return NewRandomSpheresScene(DefaultSeed) }),
	},
	"quads": {
		description: "Five colored quads above a checkered floor plane",
		create:      infallible(NewQuadsScene),
	},
	"shapes": {
		description: "A box, a triangle pyramid and a glass sphere on a checkered ground quad",
		create:      NewShapesScene,
	},
	"empty": {
		description: "No geometry; only the sky gradient",
		create:      infallible(NewEmptyScene),
	},
}

// Create builds the named scene, ready to render
func Create(name string) (*Scene, error) {
	entry, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s, err := entry.create()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	s.Name = name
	s.Preprocess()
	return s, nil
}

// infallible adapts a constructor that cannot fail
func infallible(create func() *Scene) func() (*Scene, error) {
	return func() (*Scene, error) { return create(), nil }
}

// Names returns every scene ID accepted by Create, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtins[name].description,
		})
	}
	return scenes
}

// titleCase converts an ID to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
