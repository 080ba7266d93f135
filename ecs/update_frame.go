package ecs

// UpdateFrame is passed to every system during a scheduler tick. Commands
// queued on it are flushed once all systems have run.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Scene     *Scene
}

func newUpdateFrame(dt float64, scene *Scene) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  NewCommands(),
		Scene:     scene,
	}
}
