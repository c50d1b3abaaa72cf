package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/demo/tui"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("url", config.GetEnvOrDefault("API_URL", "http://localhost:8080"), "News API URL")
	countries := flag.String("countries", strings.Join(tui.DefaultCountries, ","), "Comma-separated country codes")
	flag.Parse()

	var list []string
	for _, c := range strings.Split(*countries, ",") {
		if c = strings.TrimSpace(c); c != "" {
			list = append(list, c)
		}
	}

	program := tea.NewProgram(tui.NewModel(strings.TrimRight(*apiURL, "/"), list))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
