package levels

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := Load("manor.yaml")
	if err != nil {
		t.Fatalf("load manor: %v", err)
	}
	if _, ok := lvl.Room("gallery"); !ok {
		t.Fatalf("expected gallery room")
	}
	if len(lvl.Walls) == 0 {
		t.Fatalf("expected walls")
	}

	bare, err := Load("manor")
	if err != nil {
		t.Fatalf("load without extension: %v", err)
	}
	if bare.Name != lvl.Name {
		t.Fatalf("expected %q, got %q", lvl.Name, bare.Name)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "ok",
			yaml: `
name: ok
width: 10
height: 10
rooms: [{name: a, min: {x: 0, y: 0}, max: {x: 5, y: 5}}]
spawns: [{type: player, at: {x: 1, y: 1}}, {type: ghost, at: {x: 2, y: 2}, room: a}]
`,
		},
		{
			name:    "unknown_room",
			yaml:    "name: x\nwidth: 5\nheight: 5\nspawns: [{type: player}, {type: ghost, room: nope}]",
			wantErr: "unknown room",
		},
		{
			name:    "no_player",
			yaml:    "name: x\nwidth: 5\nheight: 5\nspawns: [{type: coin}]",
			wantErr: "exactly one player",
		},
		{
			name:    "empty_room",
			yaml:    "name: x\nwidth: 5\nheight: 5\nrooms: [{name: a, min: {x: 1, y: 1}, max: {x: 1, y: 3}}]\nspawns: [{type: player}]",
			wantErr: "empty bounds",
		},
		{
			name:    "bad_spawn_type",
			yaml:    "name: x\nwidth: 5\nheight: 5\nspawns: [{type: player}, {type: dragon}]",
			wantErr: "unknown type",
		},
		{
			name:    "no_size",
			yaml:    "name: x\nspawns: [{type: player}]",
			wantErr: "invalid size",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}
