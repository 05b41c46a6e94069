// Command archlint lints a TypeScript/TSX codebase against the team's
// architecture and testing conventions. It discovers source files, loads
// the per-rule JSON configuration, runs the lint engine over every file and
// exits non-zero when violations are found.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Jawfish/archlint/config"
	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/lint/rules/arch"
	"github.com/Jawfish/archlint/lint/rules/mocks"
	"github.com/Jawfish/archlint/lint/rules/style"
)

// skipDirs are never descended into during file discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	".next":        true,
	".git":         true,
	"dist":         true,
	"build":        true,
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "archlint: %v\n", err)
		os.Exit(2)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	flags := flag.NewFlagSet("archlint", flag.ContinueOnError)
	configDir := flags.String("config", "", "directory holding the rule configuration files")
	format := flags.String("format", "", "output format: text, json or sarif")
	verbose := flags.Bool("v", false, "verbose logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, nil
		}
		return 0, err
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return 0, fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	fsys := osfs.New(".")

	runCfg, err := config.LoadRunConfig(fsys, ".archlint.yml")
	if err != nil {
		return 0, err
	}
	if *configDir != "" {
		runCfg.ConfigDir = *configDir
	}
	if *format != "" {
		runCfg.Format = *format
	}
	outFormat, err := lint.ParseFormat(runCfg.Format)
	if err != nil {
		return 0, err
	}

	linter := lint.New()
	defer linter.Close()
	if err := linter.Init(context.Background()); err != nil {
		return 0, fmt.Errorf("init linter: %w", err)
	}
	if err := registerRules(linter, fsys, runCfg.ConfigDir, logger); err != nil {
		return 0, err
	}
	logger.Debug("rules registered", zap.Strings("rules", linter.RuleNames()))

	roots := flags.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	files, err := discoverFiles(fsys, roots, runCfg.Exclude)
	if err != nil {
		return 0, err
	}
	logger.Debug("files discovered", zap.Int("count", len(files)))

	var issues []lint.Issue
	for _, file := range files {
		source, err := util.ReadFile(fsys, file)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", file, err)
		}
		found, err := linter.Lint(file, source)
		if err != nil {
			return 0, err
		}
		issues = append(issues, found...)
	}

	reporter := lint.NewReporter(os.Stdout, outFormat)
	if err := reporter.Report(issues); err != nil {
		return 0, err
	}
	if len(issues) > 0 {
		logger.Info("violations found", zap.Int("count", len(issues)))
		return 1, nil
	}
	return 0, nil
}

// registerRules wires the fixed-policy rules, then the config-driven rules
// for each configuration file that exists. A missing configuration file
// means the corresponding rule is simply not registered.
func registerRules(linter *lint.Linter, fsys billy.Filesystem, configDir string, logger *zap.Logger) error {
	linter.AddRule(arch.NewUIImportsRule(nil, ""))
	linter.AddRule(mocks.NewNoMockFunctionsRule())
	linter.AddRule(mocks.NewNoMockMembersRule())
	linter.AddRule(style.NewInterfaceNamingRule())

	domainCfg, err := config.LoadDomainDependencies(fsys, filepath.Join(configDir, "domain-dependencies.json"))
	if err != nil {
		return err
	}
	if domainCfg != nil {
		linter.AddRule(arch.NewDomainDependenciesRule(*domainCfg))
	} else {
		logger.Debug("no domain-dependencies.json, rule not registered")
	}

	primitiveCfg, err := config.LoadNoPrimitiveObsession(fsys, filepath.Join(configDir, "no-primitive-obsession.json"))
	if err != nil {
		return err
	}
	if primitiveCfg != nil {
		linter.AddRule(arch.NewPrimitiveObsessionRule(*primitiveCfg))
	} else {
		logger.Debug("no no-primitive-obsession.json, rule not registered")
	}
	return nil
}

// discoverFiles walks the given roots collecting .ts and .tsx files,
// skipping dependency and build directories plus any excluded path
// substring.
func discoverFiles(fsys billy.Filesystem, roots, exclude []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		err := util.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			ext := filepath.Ext(path)
			if ext != ".ts" && ext != ".tsx" {
				return nil
			}
			for _, ex := range exclude {
				if strings.Contains(path, ex) {
					return nil
				}
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

// newLogger builds a console logger for the CLI; verbose enables debug
// output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}
