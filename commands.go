package tesseract

type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit requests the final state at the end of the current frame.
func (cmd *Commands) Exit() {
	cmd.app.changeState(cmd.app.finalState)
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
