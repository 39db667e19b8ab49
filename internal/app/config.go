package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string // workspace directory, e.g. $HOME/.polyroots
	Verbose bool   // enables debug logging
}
