package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Box struct {
	Min Vec `yaml:"min"`
	Max Vec `yaml:"max"`
}

func (b Box) valid() bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y
}

type Room struct {
	Name string `yaml:"name"`
	Box  `yaml:",inline"`
}

type Spawn struct {
	// Type is player, ghost, patroller, coin or health.
	Type string `yaml:"type"`
	At   Vec    `yaml:"at"`
	Room string `yaml:"room,omitempty"`
}

// Level is a set of rooms, the walls enclosing them and entity spawns, in
// world units with y pointing up.
type Level struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Rooms  []Room  `yaml:"rooms"`
	Walls  []Box   `yaml:"walls"`
	Spawns []Spawn `yaml:"spawns"`
}

// Load reads a level, preferring the on-disk copy under levels/.
func Load(name string) (*Level, error) {
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".yaml"
	}
	data, err := os.ReadFile(filepath.Join("levels", base))
	if err != nil {
		data, err = LevelsFS.ReadFile(base)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Room returns the named room.
func (l *Level) Room(name string) (Room, bool) {
	for _, r := range l.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return Room{}, false
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %q: invalid size %vx%v", l.Name, l.Width, l.Height)
	}
	seen := make(map[string]struct{}, len(l.Rooms))
	for _, r := range l.Rooms {
		if r.Name == "" {
			return fmt.Errorf("level %q: room without a name", l.Name)
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("level %q: duplicate room %q", l.Name, r.Name)
		}
		seen[r.Name] = struct{}{}
		if !r.valid() {
			return fmt.Errorf("level %q: room %q has empty bounds", l.Name, r.Name)
		}
	}
	for i, wall := range l.Walls {
		if !wall.valid() {
			return fmt.Errorf("level %q: wall %d has empty bounds", l.Name, i)
		}
	}
	players := 0
	for i, s := range l.Spawns {
		switch s.Type {
		case "player":
			players++
		case "ghost", "patroller", "coin", "health":
		default:
			return fmt.Errorf("level %q: spawn %d has unknown type %q", l.Name, i, s.Type)
		}
		if s.Room != "" {
			if _, ok := seen[s.Room]; !ok {
				return fmt.Errorf("level %q: spawn %d references unknown room %q", l.Name, i, s.Room)
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("level %q: expected exactly one player spawn, got %d", l.Name, players)
	}
	return nil
}
