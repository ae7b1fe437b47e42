package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"lead_review/pkg/auth"
	"lead_review/pkg/config"
	"lead_review/pkg/leads"
	"lead_review/pkg/logging"
	"lead_review/pkg/ui"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

const usage = `Usage:
  lead_review [--status <s>] [lead-uuid]
                                 open the review console, optionally with
                                 a status (Hot, Warm, Cold) pre-selected
  lead_review auth set <token>   store the admin API key
  lead_review auth status        show whether an admin API key is available
  lead_review auth clear         remove the stored admin API key
  lead_review version            print version information
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			printVersion(stdout)
			return 0
		case "help", "--help", "-h":
			fmt.Fprint(stdout, usage)
			return 0
		}
	}

	// .env is optional; values already in the environment win
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "Error loading .env: %v\n", err)
		return 1
	}

	configPath := config.GetConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(stderr, "Error in environment: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config %s: %v\n", configPath, err)
		return 1
	}

	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(stderr, "Warning: file logging disabled: %v\n", err)
	}
	slog.Info("lead_review_start", "config_path", configPath, "base_url", cfg.API.BaseURL)

	store := auth.NewStore(authPath(cfg))

	if len(args) > 0 && args[0] == "auth" {
		return runAuth(store, args[1:], stdout, stderr)
	}

	leadID, status, err := parseReviewArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(stderr, "lead_review needs an interactive terminal")
		return 1
	}

	model := ui.NewModel(ui.Options{
		API:           leads.NewClient(cfg.API.BaseURL, cfg.APITimeout()),
		Credentials:   auth.Chain{auth.EnvToken(auth.EnvAdminAPIKey), store},
		BaseURL:       cfg.API.BaseURL,
		BannerTimeout: cfg.BannerTimeout(),
		LeadID:        leadID,
		Status:        status,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		slog.Error("program_error", "error", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	slog.Info("lead_review_exit")
	return 0
}

// parseReviewArgs reads the optional --status flag and lead identifier.
func parseReviewArgs(args []string) (string, leads.Status, error) {
	var (
		leadID string
		status leads.Status
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value, isStatus := "", false
		switch {
		case arg == "--status" || arg == "-s":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("%s needs a value", arg)
			}
			i++
			value, isStatus = args[i], true
		case strings.HasPrefix(arg, "--status="):
			value, isStatus = strings.TrimPrefix(arg, "--status="), true
		case strings.HasPrefix(arg, "-"):
			return "", "", fmt.Errorf("unknown flag %s", arg)
		case leadID != "":
			return "", "", fmt.Errorf("unexpected argument %q", arg)
		default:
			leadID = arg
		}

		if isStatus {
			parsed, ok := leads.ParseStatus(value)
			if !ok {
				return "", "", fmt.Errorf("unknown status %q", value)
			}
			status = parsed
		}
	}
	return leadID, status, nil
}

func authPath(cfg config.Config) string {
	if p := strings.TrimSpace(cfg.AuthFile); p != "" {
		return p
	}
	return auth.DefaultPath()
}

func runAuth(store *auth.Store, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "set":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "Usage: lead_review auth set <token>")
			return 2
		}
		if err := store.Save(auth.AdminAPIKey, args[1]); err != nil {
			fmt.Fprintf(stderr, "Error saving admin API key: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Admin API key saved to %s\n", store.Path())
		return 0

	case "status":
		if v := strings.TrimSpace(os.Getenv(auth.EnvAdminAPIKey)); v != "" {
			fmt.Fprintf(stdout, "Admin API key: %s (from %s)\n", logging.MaskSecret(v), auth.EnvAdminAPIKey)
			return 0
		}
		cred, err := store.Load(auth.AdminAPIKey)
		if err != nil {
			fmt.Fprintln(stdout, "Admin API key: not configured")
			return 1
		}
		fmt.Fprintf(stdout, "Admin API key: %s (saved %s)\n",
			logging.MaskSecret(cred.Token), cred.SavedAt.Local().Format(time.RFC1123))
		return 0

	case "clear":
		if !store.Has(auth.AdminAPIKey) {
			fmt.Fprintln(stdout, "No admin API key stored")
			return 0
		}
		if err := store.Delete(auth.AdminAPIKey); err != nil {
			fmt.Fprintf(stderr, "Error removing admin API key: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "Admin API key removed")
		return 0
	}

	fmt.Fprintf(stderr, "Unknown auth command %q\n\n%s", args[0], usage)
	return 2
}
