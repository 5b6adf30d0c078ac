package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ebuildkit/internal/atom"
	"ebuildkit/internal/checks"
	"ebuildkit/internal/config"
	"ebuildkit/internal/ebuild"
	"ebuildkit/internal/eclass"
	"ebuildkit/internal/index"
	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
	"ebuildkit/internal/runner"
)

var (
	cfgPath string
	verbose bool

	compatList   string
	outputFormat string

	repoPath   string
	workers    int
	stableDays int
	jsonOut    bool

	stubKeywords string
	stubCompat   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	rootCmd := &cobra.Command{
		Use:   "ebuildkit",
		Short: "Python compatibility metadata for ebuild repositories",
		Long:  "ebuildkit derives interpreter-compatibility declarations for ebuilds and runs QA checks over ebuild repositories.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	declareCmd := &cobra.Command{
		Use:   "declare",
		Short: "Derive the compatibility declaration for a list of interpreters",
		RunE:  runDeclare,
	}
	declareCmd.Flags().StringVarP(&compatList, "compat", "c", "", "Comma-separated interpreter tokens (default from config)")
	declareCmd.Flags().StringVarP(&outputFormat, "format", "o", "ebuild", "Output format: ebuild or json")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Run QA checks over an ebuild repository",
		RunE:  runScan,
	}
	scanCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "Repository path")
	scanCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Scan workers (default from config)")
	scanCmd.Flags().IntVar(&stableDays, "stable-days", 0, "Days before a ~arch version is flagged (default from config)")
	scanCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")

	stubCmd := &cobra.Command{
		Use:   "stub <category/package-version>",
		Short: "Write a stub ebuild into a repository",
		Args:  cobra.ExactArgs(1),
		RunE:  runStub,
	}
	stubCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "Repository path")
	stubCmd.Flags().StringVar(&stubKeywords, "keywords", "", "Space-separated KEYWORDS value")
	stubCmd.Flags().StringVar(&stubCompat, "compat", "", "Comma-separated PYTHON_COMPAT tokens")

	infoCmd := &cobra.Command{
		Use:   "info <category/package>",
		Short: "Show known versions and keywords from packages.gentoo.org",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	rootCmd.AddCommand(declareCmd, scanCmd, stubCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDeclare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}

	tokens := cfg.Targets
	if compatList != "" {
		tokens = strings.Split(compatList, ",")
	}
	logger.Debug("declaring compatibility", "tokens", tokens)

	d, err := eclass.Declare(tokens)
	if err != nil {
		return fmt.Errorf("deriving declaration: %w", err)
	}

	switch outputFormat {
	case "ebuild":
		return ebuild.EmitDeclaration(os.Stdout, tokens, d)
	case "json":
		out := map[string]any{
			"flags":        d.Flags,
			"depend":       d.DepString(),
			"required_use": d.RequiredUseString(),
			"use_dep":      d.UseDep,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if stableDays > 0 {
		cfg.StableDays = stableDays
	}

	r, err := repo.Open(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	logger.Debug("opened repository", "name", r.Name, "masters", r.Masters)

	pkgs, err := r.Packages()
	if err != nil {
		return fmt.Errorf("walking repository: %w", err)
	}
	logger.Debug("collected packages", "count", len(pkgs))

	db := index.NewEclassDB(cfg.EclassIndex, cacheDir())
	if err := db.Load(); err != nil {
		logger.Warn("eclass index refresh failed, using bundled data", "err", err)
	}

	var enabled []checks.Check
	for _, c := range []checks.Check{
		&checks.DeprecatedEclassCheck{DB: db},
		&checks.PythonCompatCheck{},
		checks.NewStableRequestCheck(cfg.StableDays),
	} {
		if cfg.CheckEnabled(c.Name()) {
			enabled = append(enabled, c)
		}
	}

	results := runner.New(cfg.Workers, enabled, logger).Scan(pkgs)

	if jsonOut {
		return report.NewJSONReporter(os.Stdout).Report(results)
	}
	return report.NewTextReporter(os.Stdout).Report(results)
}

func runStub(cmd *cobra.Command, args []string) error {
	cpv, err := atom.ParseCPV(args[0])
	if err != nil {
		return err
	}

	r, err := repo.Open(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	opts := ebuild.StubOptions{GentooHeader: r.Name == "gentoo"}
	if stubKeywords != "" {
		opts.Keywords = strings.Fields(stubKeywords)
	}
	if stubCompat != "" {
		opts.PythonCompat = strings.Split(stubCompat, ",")
		opts.Inherits = []string{"python-r1"}
	}

	path, err := ebuild.WriteStub(r.Path, cpv, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := index.NewPackagesAPI().Lookup(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", info.Atom)
	for _, v := range info.Versions {
		fmt.Printf("  %s %s\n", v.Version, strings.Join(v.Keywords, " "))
	}
	return nil
}

func cacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ebuildkit-cache")
	}
	return filepath.Join(home, ".ebuildkit", "cache")
}
