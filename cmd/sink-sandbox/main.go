// Interactive sandbox for the sink/scene upgrade pipeline
//
// Keys:
//
//	1/2 - stream a new sub-scene linked to sink 1 / sink 2
//	h   - toggle highlight on sink 1 (mutates its derived material in
//	      place; every upgraded node of its scenes recolors at once)
//	d   - destroy sink 1 (later scenes linked to it become orphans)
//	x   - despawn the most recently spawned scene subtree
//	q   - quit
//
// With -palette <file>, edits to that file propagate into every derived
// material while running.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/material"
	"github.com/lixenwraith/scenesink/parameter"
	"github.com/lixenwraith/scenesink/service"
	"github.com/lixenwraith/scenesink/sink"
	"github.com/lixenwraith/scenesink/stream"
)

const demoManifest = `
name = "runway"

[[nodes]]
name = "hull"
surface = true

[[nodes]]
name = "wing-l"
parent = "hull"
surface = true

[[nodes]]
name = "wing-r"
parent = "hull"
surface = true

[[nodes]]
name = "pivot"
parent = "hull"

[[nodes]]
name = "beacon"
parent = "pivot"
surface = true
`

type sandbox struct {
	world  *engine.World
	sched  *engine.TickScheduler
	loader *stream.Loader
	res    engine.Resources

	sink1, sink2 core.Entity
	roots        []core.Entity
	highlighted  bool

	hub *service.Hub
}

func newSandbox(palettePath string) (*sandbox, error) {
	world := engine.NewWorld()
	engine.InstallCoreResources(world, &engine.ConfigResource{
		PropagatePalette: palettePath != "",
		PalettePath:      palettePath,
	})

	res := engine.GetResources(world)

	base := res.Materials.Add(material.Material{
		Name:      "palette",
		Base:      colorful.Color{R: 0.35, G: 0.45, B: 0.85},
		Emissive:  colorful.Color{R: 1.0, G: 0.85, B: 0.2},
		Roughness: 0.4,
	})
	if err := res.Palette.Initialize(base); err != nil {
		return nil, err
	}

	loader := stream.NewLoader(world)
	world.AddSystem(loader)
	world.AddSystem(sink.NewUpgradeSystem(world))
	if palettePath != "" {
		world.AddSystem(sink.NewPaletteSystem(world))
	}

	sched := engine.NewTickScheduler(world, parameter.DefaultTickInterval)
	if palettePath != "" {
		// Reload runs before the propagation system so it sees fresh data
		sched.RegisterEventHandler(&paletteReload{path: palettePath})
	}
	sched.RegisterSystemHandlers()

	hub := service.NewHub()
	if err := hub.Register(loader); err != nil {
		return nil, err
	}
	if palettePath != "" {
		if err := hub.Register(stream.NewWatcher(world)); err != nil {
			return nil, err
		}
	}
	if err := hub.InitAll(); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		return nil, err
	}

	s := &sandbox{
		world:  world,
		sched:  sched,
		loader: loader,
		res:    res,
		sink1:  sink.New(world),
		sink2:  sink.New(world),
		hub:    hub,
	}

	// Tint sink 2 so its scene groups are visually distinct
	if c, ok := world.Components.Sink.Get(s.sink2); ok {
		res.Materials.Mutate(c.Material, func(m *material.Material) {
			m.Base = colorful.Color{R: 0.3, G: 0.75, B: 0.4}
		})
	}

	return s, nil
}

// paletteReload re-reads the palette file into the base material entry
// when the watcher signals a change
type paletteReload struct {
	path string
}

func (h *paletteReload) EventTypes() []event.EventType {
	return []event.EventType{event.EventPaletteChanged}
}

func (h *paletteReload) HandleEvent(w *engine.World, ev event.GameEvent) {
	m, err := material.LoadFile(h.path)
	if err != nil {
		return
	}
	res := engine.GetResources(w)
	base, ok := res.Palette.TryHandle()
	if !ok {
		return
	}
	res.Materials.Mutate(base, func(dst *material.Material) {
		*dst = m
	})
}

func (s *sandbox) spawnScene(target core.Entity) {
	m, err := stream.ParseManifest([]byte(demoManifest))
	if err != nil {
		return
	}
	root := s.world.CreateEntity()
	asset, err := s.loader.LoadParsed(m, root)
	if err != nil {
		return
	}
	sink.Link(s.world, root, target, asset)
	s.roots = append(s.roots, root)
}

func (s *sandbox) toggleHighlight() {
	c, ok := s.world.Components.Sink.Get(s.sink1)
	if !ok {
		return
	}
	s.highlighted = !s.highlighted
	strength := float32(0)
	if s.highlighted {
		strength = 0.7
	}
	base, _ := s.res.Materials.Get(s.res.Palette.Handle())
	s.res.Materials.Mutate(c.Material, func(m *material.Material) {
		*m = base.WithHighlight(strength)
	})
}

func (s *sandbox) despawnScene() {
	if len(s.roots) == 0 {
		return
	}
	last := s.roots[len(s.roots)-1]
	s.roots = s.roots[:len(s.roots)-1]
	s.world.DestroySubtree(last)
}

// nodeStyle picks the cell style and glyph for one node; the glyph
// foreground flips on luminance so the marker stays readable on any
// palette color
func (s *sandbox) nodeStyle(e core.Entity) (tcell.Style, rune) {
	if shared, ok := s.world.Components.Shared.Get(e); ok {
		if m, ok := s.res.Materials.Get(shared.Material); ok {
			r, g, b := m.Base.Clamped().RGB255()
			fg := tcell.ColorBlack
			if m.Luminance() < 0.5 {
				fg = tcell.ColorWhite
			}
			style := tcell.StyleDefault.
				Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
				Foreground(fg)
			return style, '+'
		}
	}
	if s.world.Components.Surface.Has(e) {
		return tcell.StyleDefault.Background(tcell.ColorGray), '-'
	}
	return tcell.StyleDefault.Background(tcell.ColorDarkSlateGray), ' '
}

func (s *sandbox) draw(screen tcell.Screen) {
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault.Bold(true),
		"sink-sandbox  [1/2]=spawn scene  [h]=highlight sink1  [d]=destroy sink1  [x]=despawn scene  [q]=quit")

	statLine := fmt.Sprintf("ticks=%d  materials=%d  pending=%d  roots=%d  metrics=%d",
		s.sched.TickCount(), s.res.Materials.Len(), s.loader.Pending(), len(s.roots),
		s.res.Status.TotalCount())
	drawText(screen, 0, 1, tcell.StyleDefault.Dim(true), statLine)

	y := 3
	for _, root := range s.roots {
		link, ok := s.world.Components.Link.Get(root)
		if !ok {
			continue
		}

		state := "pending"
		switch link.State {
		case component.LinkUpgraded:
			state = "upgraded"
		case component.LinkOrphaned:
			state = "orphaned"
		}
		drawText(screen, 0, y, tcell.StyleDefault,
			fmt.Sprintf("scene %-4d sink %-4d %-9s", root, link.Sink, state))

		x := 32
		for _, e := range s.world.Nodes.Descendants(root) {
			style, glyph := s.nodeStyle(e)
			screen.SetContent(x, y, glyph, nil, style)
			screen.SetContent(x+1, y, ' ', nil, style)
			x += 3
		}
		y++
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func main() {
	palettePath := flag.String("palette", "", "palette file to watch for live propagation")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	s, err := newSandbox(*palettePath)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}
	defer s.hub.StopAll()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(parameter.DefaultTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sched.Tick()
			s.draw(screen)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					return
				case ev.Rune() == '1':
					s.spawnScene(s.sink1)
				case ev.Rune() == '2':
					s.spawnScene(s.sink2)
				case ev.Rune() == 'h':
					s.toggleHighlight()
				case ev.Rune() == 'd':
					s.world.DestroyEntity(s.sink1)
				case ev.Rune() == 'x':
					s.despawnScene()
				}
			}
		}
	}
}
