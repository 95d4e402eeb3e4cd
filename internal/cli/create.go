package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/prwt/prwt/internal/checkout"
	"github.com/prwt/prwt/internal/config"
	"github.com/prwt/prwt/internal/github"
	"github.com/prwt/prwt/internal/setup"
	"github.com/prwt/prwt/internal/ui"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
)

func runCreate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	interactive, _ := cmd.Flags().GetBool("interactive")

	// Missing PR number without -i is the help path, not an error.
	if len(args) == 0 && !interactive {
		return cmd.Help()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	if len(args) > 0 {
		if err := checkout.ValidatePRNumber(args[0]); err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	var prNumber string
	if len(args) > 0 {
		prNumber = args[0]
	} else {
		prNumber, err = pickPR(cmd, cwd)
		if err != nil {
			if ui.IsAbort(err) {
				return nil
			}
			return err
		}
	}

	target := ""
	if len(args) > 1 {
		target = args[1]
	} else if cfg.WorktreeDir != "" {
		target = filepath.Join(cfg.WorktreeDir, "pr-"+prNumber)
	}

	creator := checkout.NewCreator(cwd, nil, logger)
	opts := checkout.Options{
		TargetDir:            target,
		WarnOnRemoteMismatch: cfg.WarnOnRemoteMismatch,
	}

	var info *checkout.Info
	var createErr error
	run := func() {
		info, createErr = creator.Create(cmd.Context(), prNumber, opts)
	}

	if term.IsTerminal(os.Stdout.Fd()) && !verbose {
		_ = spinner.New().
			Title(fmt.Sprintf("Checking out PR #%s...", prNumber)).
			Action(run).
			Run()
	} else {
		run()
	}
	if createErr != nil {
		return createErr
	}

	number, _ := strconv.Atoi(prNumber)
	if err := config.WriteLocalState(info.Dir, config.LocalState{
		PR:          number,
		Branch:      info.Branch,
		BaseBranch:  info.BaseBranch,
		Remote:      info.Remote,
		RemoteAdded: info.RemoteAdded,
	}); err != nil {
		logger.Warn("could not record worktree state", "err", err)
	}

	if steps := setup.StepsFromConfig(cfg.Setup.Steps, nil); len(steps) > 0 {
		sc := &setup.Context{WorktreePath: info.Dir, Branch: info.Branch, PR: number}
		if err := setup.NewExecutor(steps).Execute(cmd.Context(), sc, setup.Options{Verbose: verbose, Logger: logger}); err != nil {
			return fmt.Errorf("worktree created at %s, but setup failed: %w", info.Dir, err)
		}
	}

	printSummary(info)
	return nil
}

func pickPR(cmd *cobra.Command, cwd string) (string, error) {
	if err := github.CheckDependencies(); err != nil {
		return "", err
	}

	prs, err := github.NewClient(cwd, nil).ListOpenPRs(cmd.Context())
	if err != nil {
		return "", err
	}

	number, err := ui.SelectPR(prs)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(number), nil
}

func printSummary(info *checkout.Info) {
	remote := info.Remote
	if info.RemoteAdded {
		remote += " (added)"
	}

	fmt.Println(successStyle.Render("✓ Worktree created"))
	fmt.Printf("  %s %s\n", labelStyle.Render("Path:  "), info.Dir)
	fmt.Printf("  %s %s\n", labelStyle.Render("Branch:"), info.Branch)
	fmt.Printf("  %s %s\n", labelStyle.Render("Remote:"), remote)
	fmt.Println()
	fmt.Println("Remove later with:")
	fmt.Printf("  git worktree remove %s\n", info.Dir)
	if info.RemoteAdded {
		fmt.Printf("  git remote remove %s\n", info.Remote)
	}
}
