package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"switchboard/internal/config"
	"switchboard/internal/control"
	"switchboard/internal/debug"
	"switchboard/internal/errors"
	"switchboard/internal/ui"
	"switchboard/internal/ui/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme")
	modeFlag := flag.String("mode", config.GetString(config.KeyMode), "Interaction mode (auto, deferred, immediate)")
	maxVisibleFlag := flag.Int("max-visible", config.GetInt(config.KeyMaxVisible), "Dropdown window size")
	copyFlag := flag.Bool("copy-on-commit", config.GetBool(config.KeyCopyOnCommit), "Copy committed values to the clipboard")
	markdownFlag := flag.String("markdown", "dark", "Panel markdown style (dark, light, notty, plain)")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log (or set SWB_DEBUG=1)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := debug.InitFromEnv(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	cfg, err := buildAppConfig(*themeFlag, *modeFlag, *maxVisibleFlag, *copyFlag, *markdownFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := ui.NewApp(cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildAppConfig(themeName, modeName string, maxVisible int, copyOnCommit bool, markdown string) (ui.Config, error) {
	themeName = strings.TrimSpace(themeName)
	if themeName != "" && !theme.SetTheme(themeName) {
		return ui.Config{}, errors.New(errors.CodeUnknownTheme,
			fmt.Sprintf("unknown theme %q (available: %s)", themeName, strings.Join(theme.Available(), ", ")), nil)
	}

	mode, ok := control.ParseMode(modeName, runtime.GOOS)
	if !ok {
		return ui.Config{}, errors.New(errors.CodeUnknownMode,
			fmt.Sprintf("unknown interaction mode %q (want auto, deferred, or immediate)", modeName), nil)
	}
	debug.Logf("starting with theme=%s mode=%s", theme.CurrentName(), mode)

	return ui.Config{
		Version:        Version,
		Mode:           mode,
		MaxVisible:     maxVisible,
		CopyOnCommit:   copyOnCommit,
		MarkdownFormat: strings.TrimSpace(markdown),
	}, nil
}
