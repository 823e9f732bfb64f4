package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"modal-edit/app"
	"modal-edit/app/config"
	"modal-edit/app/debug"
	"modal-edit/app/editor"
	"modal-edit/app/files"
	"modal-edit/tui"
)

func main() {
	// parse flags for stuff like --debug etc.
	flag.Parse()

	if *app.ShowVersion {
		app.PrintVersion()
		return
	}

	debug.SetVerbose(*app.Debug || app.IsDev())

	conf := config.New(configPath())
	debug.LogInfo("settings file", conf.File())

	opts, err := openFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name(), err)
		os.Exit(1)
	}

	model := tui.New(conf.Settings(), opts...)
	fmt.Print(ansi.SetWindowTitle(model.Title()))

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}

	if code, ok := model.ExitCode(); ok {
		os.Exit(code)
	}
}

// configPath returns the settings file given with -config or
// the default one in the config directory
func configPath() string {
	if app.IsFlagPassed("config") {
		return *app.ConfigPath
	}

	path, err := app.ConfigFile()
	if err != nil {
		debug.LogWarn("no config file:", err)
		return ""
	}

	return path
}

// openFile loads the file given on the command line. A path that
// doesn't exist yet becomes the operating file name of an empty buffer.
func openFile(path string) ([]editor.Option, error) {
	if path == "" {
		return nil, nil
	}

	opts := []editor.Option{editor.WithFileName(path)}

	if !files.Exists(path) {
		debug.LogInfo("new file", path)
		return opts, nil
	}

	content, err := files.Read(path)
	if err != nil {
		return nil, err
	}

	return append(opts, editor.WithText(content)), nil
}
