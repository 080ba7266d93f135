package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sparsecs/ecs"
	"github.com/plus3/sparsecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/sparsecs/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scene        *ecs.Scene
	scheduler    *ecs.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Systems run inside the ImGui frame
	g.imguiBackend.Tick(g.scheduler, 1.0/60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720)

	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)
	scene := ecs.NewScene(ecs.WithRegistry(registry))

	// Spawn entities with ImGui render functions
	_, _ = scene.Spawn(ecs.With(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	}))

	// Inspector panels over the scene itself
	if err := debugui.SpawnDebugUI(scene); err != nil {
		panic(err)
	}

	scheduler := ecs.NewScheduler(scene)
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(&debugui.DebugUISystem{})

	game := &Game{
		scene:        scene,
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
