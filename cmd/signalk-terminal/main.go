package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/signalk-terminal/internal/config"
	"github.com/ngmaloney/signalk-terminal/internal/dashboard"
	"github.com/ngmaloney/signalk-terminal/internal/signalk"
	"github.com/ngmaloney/signalk-terminal/internal/telemetry"
	"github.com/ngmaloney/signalk-terminal/internal/ui"
)

func main() {
	os.Exit(run())
}

// run wires the dashboard and returns the process exit code
func run() int {
	configPath := flag.String("config", "", "Dashboard file (.toml, .yaml or .yml); defaults to the built-in widgets")
	target := flag.String("target", "", "Server preset: local (localhost:3443) or demo (demo.signalk.org)")
	host := flag.String("host", "", "SignalK server host[:port]; overrides -target")
	interval := flag.Duration("interval", 0, "Delay between poll cycles of each widget (default 3s)")
	timeout := flag.Duration("timeout", 0, "Per-request timeout (default 10s)")
	logPath := flag.String("log", "", "Write logs to this file while the dashboard runs")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	once := flag.Bool("once", false, "Poll every widget once, print the readings and exit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	if *target != "" {
		cfg.Target = *target
		cfg.Host = config.Host{}
	}
	if *host != "" {
		cfg.Host.Name = *host
	}
	if *interval > 0 {
		cfg.IntervalStr = interval.String()
		for i := range cfg.Widgets {
			cfg.Widgets[i].IntervalStr = ""
		}
	}
	if *timeout > 0 {
		cfg.TimeoutStr = timeout.String()
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		return 1
	}
	config.Normalize(cfg)

	if *once {
		log.SetOutput(os.Stderr)
	} else if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "signalk")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		// The dashboard owns the terminal
		log.SetOutput(io.Discard)
	}

	client := signalk.NewClient(signalk.BaseURL(cfg.Host.Scheme, cfg.Host.Name), cfg.Timeout)

	ctrl, err := dashboard.FromConfig(cfg, client)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	if *metricsAddr != "" {
		server := telemetry.NewServer(*metricsAddr)
		metrics := telemetry.NewMetrics(server.Registry())
		client.SetObserver(metrics)
		ctrl.SetObserver(metrics)

		if err := server.Start(); err != nil {
			fmt.Printf("Error starting metrics server: %v\n", err)
			return 1
		}
		defer server.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		return runOnce(ctx, ctrl, cfg.Timeout)
	}

	if err := ctrl.Start(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	p := tea.NewProgram(ui.NewModel(ctrl, cfg.Host.Name), tea.WithAltScreen())
	_, runErr := p.Run()
	ctrl.Stop()

	if runErr != nil {
		fmt.Printf("Error running application: %v\n", runErr)
		return 1
	}
	return 0
}

// runOnce polls every widget a single time and prints the readings.
// It returns the process exit code.
func runOnce(ctx context.Context, ctrl *dashboard.Controller, timeout time.Duration) int {
	// Every request is already bounded; this covers slow sequential widgets
	ctx, cancel := context.WithTimeout(ctx, 3*timeout)
	defer cancel()

	err := ctrl.RunOnce(ctx)
	fmt.Println(ui.RenderSimple(ctrl.Snapshots()))
	if err != nil {
		return 1
	}
	return 0
}
