package tesseract

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}
