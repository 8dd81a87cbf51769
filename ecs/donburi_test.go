package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/softwillow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []softwillow.ModeEvent
	ModeEventType.Subscribe(world, func(w donburi.World, e softwillow.ModeEvent) {
		received = append(received, e)
	})

	store.EmitEvent(softwillow.ModeEvent{
		Event:   softwillow.EventToggleFilled,
		Options: softwillow.RenderOptions{Filled: true},
		Frame:   7,
	})
	store.EmitEvent(softwillow.ModeEvent{Event: softwillow.EventQuit, Frame: 9})

	// Events are queued until processed.
	ModeEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e0 := received[0]; e0.Event != softwillow.EventToggleFilled || !e0.Options.Filled || e0.Frame != 7 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Event != softwillow.EventQuit || e1.Frame != 9 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_FromRenderer(t *testing.T) {
	world := donburi.NewWorld()
	r, err := softwillow.NewRenderer(softwillow.RendererConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	r.SetEventStore(NewDonburiStore(world))

	var count1, count2 int
	ModeEventType.Subscribe(world, func(w donburi.World, e softwillow.ModeEvent) { count1++ })
	ModeEventType.Subscribe(world, func(w donburi.World, e softwillow.ModeEvent) { count2++ })

	r.InjectEvents(softwillow.EventToggleGrid, softwillow.EventNone, softwillow.EventEscape)
	for r.Frame() {
	}
	events.ProcessAllEvents(world)

	if count1 != 2 || count2 != 2 {
		t.Errorf("expected both subscribers called twice, got %d and %d", count1, count2)
	}
}

func TestSpawnAndPopulate(t *testing.T) {
	world := donburi.NewWorld()
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		Spawn(world, softwillow.NewEntity(n, softwillow.NewCubeMesh(1)))
	}

	got := CollectEntities(world)
	if len(got) != len(names) {
		t.Fatalf("expected %d entities, got %d", len(names), len(got))
	}
	for i, e := range got {
		if e.Name != names[i] {
			t.Errorf("entity %d = %s, want %s", i, e.Name, names[i])
		}
	}

	r, err := softwillow.NewRenderer(softwillow.RendererConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := Populate(world, r); err != nil {
		t.Fatal(err)
	}
	if r.Scene().Len() != len(names) {
		t.Errorf("expected %d entities in the scene, got %d", len(names), r.Scene().Len())
	}
}

func TestPopulateRejectsInvalidMesh(t *testing.T) {
	world := donburi.NewWorld()
	Spawn(world, softwillow.NewEntity("bad", &softwillow.Mesh{Indices: []uint32{0, 1}}))

	r, err := softwillow.NewRenderer(softwillow.RendererConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := Populate(world, r); !errors.Is(err, softwillow.ErrInvalidMesh) {
		t.Errorf("expected ErrInvalidMesh, got %v", err)
	}
}
