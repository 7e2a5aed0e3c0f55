package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"luckydip/internal/config"
)

func main() {
	if os.Getenv("LUCKYDIP_DEBUG") != "" {
		f, err := tea.LogToFile("luckydip-debug.log", "debug")
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		// Alt-screen apps cannot write to stderr; drop log output unless
		// a debug file is open.
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
