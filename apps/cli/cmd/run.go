package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/tarpgo/packages/core/config"
	"github.com/abdul-hamid-achik/tarpgo/packages/core/runner"
	"github.com/abdul-hamid-achik/tarpgo/packages/output"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve run profiles and collect coverage",
	Long: `Resolve run profiles and collect coverage via cargo.

Examples:
  tarpgo run
  tarpgo run --branch --exclude-files "target/*"
  tarpgo run --config ci/tarpaulin.toml --debug
  tarpgo run --ignore-config -p my-crate -- --nocapture`,
	RunE: runCommand,
}

var (
	debugFlag        bool
	verboseFlag      bool
	ignoredFlag      bool
	ignoreTestsFlag  bool
	ignorePanicsFlag bool
	forceCleanFlag   bool
	countFlag        bool
	lineFlag         bool
	branchFlag       bool
	forwardFlag      bool

	allFeaturesFlag       bool
	noDefaultFeaturesFlag bool
	allFlag               bool
	workspaceFlag         bool
	releaseFlag           bool
	noRunFlag             bool
	lockedFlag            bool
	frozenFlag            bool
	offlineFlag           bool

	ignoreConfigFlag bool
	configFlag       string
	manifestFlag     string
	rootFlag         string
	outputDirFlag    string
	targetDirFlag    string
	coverallsFlag    string
	ciServerFlag     string
	reportURIFlag    string
	timeoutFlag      time.Duration

	runTypesFlag         []string
	outFlag              []string
	packagesFlag         []string
	excludePackagesFlag  []string
	excludeFilesFlag     []string
	featuresFlag         []string
	unstableFeaturesFlag []string
	varargsFlag          []string

	noColorFlag bool
	dryRunFlag  bool
)

// registerProfileFlags adds the full profile flag surface to a command.
// The config command reuses it so `tarpgo config` accepts the same
// invocation as `tarpgo run`.
func registerProfileFlags(cmd *cobra.Command) {
	// Resolution flags
	cmd.Flags().StringVar(&configFlag, "config", getEnvString("TARPGO_CONFIG", ""), "Path to a tarpaulin.toml config file (env: TARPGO_CONFIG)")
	cmd.Flags().BoolVar(&ignoreConfigFlag, "ignore-config", false, "Ignore any config file and use command-line values only")
	cmd.Flags().StringVar(&manifestFlag, "manifest-path", "", "Path to the project's Cargo.toml")
	cmd.Flags().StringVarP(&rootFlag, "root", "r", getEnvString("TARPGO_ROOT", ""), "Project root directory (env: TARPGO_ROOT)")

	// Coverage flags
	cmd.Flags().BoolVarP(&lineFlag, "line", "l", false, "Collect line coverage (default when branch is off)")
	cmd.Flags().BoolVarP(&branchFlag, "branch", "b", false, "Collect branch coverage")
	cmd.Flags().BoolVar(&countFlag, "count", false, "Record hit counts rather than hit/miss")
	cmd.Flags().BoolVar(&ignoredFlag, "ignored", false, "Also run tests marked with the ignored attribute")
	cmd.Flags().BoolVar(&ignoreTestsFlag, "ignore-tests", false, "Leave test functions out of coverage statistics")
	cmd.Flags().BoolVar(&ignorePanicsFlag, "ignore-panics", false, "Leave panic macros out of coverage statistics")
	cmd.Flags().StringSliceVar(&excludeFilesFlag, "exclude-files", nil, "Exclude files matching these patterns from results (has * wildcard)")
	cmd.Flags().StringSliceVar(&runTypesFlag, "run-types", nil, "Test classes to cover: Tests, Doctests, Benchmarks, Examples")
	cmd.Flags().DurationVarP(&timeoutFlag, "timeout", "t", 0, "How long a test binary may run before it is considered hung")

	// Build flags
	cmd.Flags().BoolVar(&forceCleanFlag, "force-clean", false, "Clean the target project before building")
	cmd.Flags().BoolVar(&releaseFlag, "release", false, "Build in release mode")
	cmd.Flags().BoolVar(&noRunFlag, "no-run", false, "Build the tests without collecting coverage")
	cmd.Flags().BoolVar(&lockedFlag, "locked", false, "Do not update Cargo.lock")
	cmd.Flags().BoolVar(&frozenFlag, "frozen", false, "Do not update Cargo.lock or any caches")
	cmd.Flags().BoolVar(&offlineFlag, "offline", false, "Run without accessing the network")
	cmd.Flags().BoolVar(&allFeaturesFlag, "all-features", false, "Build with all available features")
	cmd.Flags().BoolVar(&noDefaultFeaturesFlag, "no-default-features", false, "Build without default features")
	cmd.Flags().StringSliceVar(&featuresFlag, "features", nil, "Features to include in the build")
	cmd.Flags().StringSliceVar(&unstableFeaturesFlag, "Z", nil, "Unstable cargo features to enable")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Build all packages in the workspace")
	cmd.Flags().BoolVar(&workspaceFlag, "workspace", false, "Alias for --all")
	cmd.Flags().StringSliceVarP(&packagesFlag, "packages", "p", nil, "Packages to include when building")
	cmd.Flags().StringSliceVarP(&excludePackagesFlag, "exclude", "e", nil, "Packages to exclude from testing")
	cmd.Flags().StringVar(&targetDirFlag, "target-dir", "", "Directory for generated build artifacts")
	cmd.Flags().StringSliceVar(&varargsFlag, "args", nil, "Extra arguments forwarded to the test executables")
	cmd.Flags().BoolVar(&forwardFlag, "forward", false, "Forward unexpected signals to the test binaries")

	// Reporting flags
	cmd.Flags().StringSliceVarP(&outFlag, "out", "o", nil, "Report formats to generate: Json, Toml, Stdout, Xml, Html, Lcov")
	cmd.Flags().StringVar(&outputDirFlag, "output-dir", "", "Directory to write report files")
	cmd.Flags().StringVar(&coverallsFlag, "coveralls", getEnvString("TARPGO_COVERALLS", ""), "Coveralls repo token or service key (env: TARPGO_COVERALLS)")
	cmd.Flags().StringVar(&ciServerFlag, "ciserver", getEnvString("TARPGO_CISERVER", ""), "CI service the report is attributed to (env: TARPGO_CISERVER)")
	cmd.Flags().StringVar(&reportURIFlag, "report-uri", "", "Send the coveralls report to this endpoint instead")

	// Output flags
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "Internal debugging output (implies --verbose)")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("TARPGO_NO_COLOR", false), "Disable colored output (env: TARPGO_NO_COLOR)")
}

func init() {
	registerProfileFlags(runCmd)
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show profiles and coverage plans without running cargo")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// buildArgs packs the parsed flag values into the resolution input.
func buildArgs() *config.Args {
	return &config.Args{
		Debug:        debugFlag,
		Verbose:      verboseFlag,
		RunIgnored:   ignoredFlag,
		IgnoreTests:  ignoreTestsFlag,
		IgnorePanics: ignorePanicsFlag,
		ForceClean:   forceCleanFlag,
		Count:        countFlag,
		Line:         lineFlag,
		Branch:       branchFlag,
		Forward:      forwardFlag,

		AllFeatures:       allFeaturesFlag,
		NoDefaultFeatures: noDefaultFeaturesFlag,
		All:               allFlag,
		Workspace:         workspaceFlag,
		Release:           releaseFlag,
		NoRun:             noRunFlag,
		Locked:            lockedFlag,
		Frozen:            frozenFlag,
		Offline:           offlineFlag,

		IgnoreConfig: ignoreConfigFlag,
		ConfigPath:   configFlag,
		ManifestPath: manifestFlag,
		Root:         rootFlag,
		OutputDir:    outputDirFlag,
		TargetDir:    targetDirFlag,
		Coveralls:    coverallsFlag,
		CIServer:     ciServerFlag,
		ReportURI:    reportURIFlag,
		Timeout:      timeoutFlag,

		RunTypes:         runTypesFlag,
		Out:              outFlag,
		Packages:         packagesFlag,
		ExcludePackages:  excludePackagesFlag,
		ExcludeFiles:     excludeFilesFlag,
		Features:         featuresFlag,
		UnstableFeatures: unstableFeaturesFlag,
		Varargs:          varargsFlag,
	}
}

// configureLogging maps the verbosity flags onto log levels.
func configureLogging() {
	switch {
	case debugFlag:
		log.SetLevel(log.DebugLevel)
	case verboseFlag:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)
}

func runCommand(cmd *cobra.Command, args []string) error {
	configureLogging()

	formatter := output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag || debugFlag),
		output.WithNoColor(noColorFlag),
	)
	formatter.FormatHeader(version)

	fsys := afero.NewOsFs()
	set, err := config.Resolve(fsys, buildArgs())
	if err != nil {
		formatter.FormatError(err)
		os.Exit(ExitConfigError)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed := false
	for _, profile := range set {
		formatter.FormatProfile(profile)

		plan, err := runner.BuildPlan(fsys, profile)
		if err != nil {
			formatter.FormatError(err)
			failed = true
			continue
		}
		formatter.FormatPlan(plan)

		if dryRunFlag {
			continue
		}
		if err := runner.Run(ctx, profile); err != nil {
			formatter.FormatError(err)
			failed = true
		}
	}

	if failed {
		os.Exit(ExitRunFailure)
	}
	return nil
}
