package cli

import (
	"io"

	"pomodoro/internal/app"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type AppContext struct {
	Build  BuildInfo
	IO     IOStreams
	Config app.Config
}
