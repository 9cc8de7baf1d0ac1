package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sage-engine/sage/internal/platform"
	"golang.org/x/term"
)

func runDoctor(args []string) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "config file path (default ~/.config/sage/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sage doctor [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Report the platform backend, config location and display facts.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "doctor takes no arguments")
		fs.Usage()
		return 2
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	header := func(s string) string { return s }
	label := func(s string) string { return s }
	if styled {
		headerStyle := lipgloss.NewStyle().Bold(true).Underline(true)
		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		header = func(s string) string { return headerStyle.Render(s) }
		label = func(s string) string { return labelStyle.Render(s) }
	}

	backend := platform.New()
	fmt.Println(header("sage doctor"))
	fmt.Printf("%s %s\n", label("backend:"), backend.Name())

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("%s %v\n", label("config:"), err)
		return 1
	}
	configState := "missing (defaults in effect)"
	if _, statErr := os.Stat(res.Path); statErr == nil {
		configState = "loaded"
	}
	fmt.Printf("%s %s (%s)\n", label("config:"), res.Path, configState)
	fmt.Printf("%s %q %dx%d\n", label("window:"),
		res.Config.Window.Title, res.Config.Window.Width, res.Config.Window.Height)

	lines, err := platform.Diagnostics()
	if err != nil {
		fmt.Printf("%s %v\n", label("display:"), err)
		return 1
	}
	for _, line := range lines {
		fmt.Printf("%s %s\n", label("display:"), line)
	}
	return 0
}
