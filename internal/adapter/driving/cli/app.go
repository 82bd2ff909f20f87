package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/ai-roi-playground/internal/application/usecase"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
	"github.com/diillson/ai-roi-playground/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	calculatorUseCase *usecase.CalculatorUseCase
	configRepo        repository.ConfigRepository
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "ai-roi",
		Short:         "Bank AI ROI Playground",
		Long:          "Estimate the return of AI investment for a bank: yearly benefit, discounted NPV and ROI multiple.",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AI ROI Playground version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("catalog-file", "", "TOML, YAML, or JSON file with additional organizations")
	rootCmd.PersistentFlags().StringP("org", "o", "", "Organization id (see --list), default: jpm")
	rootCmd.PersistentFlags().Float64P("ai-share", "s", 0.25, "Share of the tech budget directed to AI (0-0.5, step 0.05)")
	rootCmd.PersistentFlags().Float64P("roi", "r", 0, "Dollars saved per dollar of AI spend (0.2-1.5, step 0.05), default: organization default")
	rootCmd.PersistentFlags().IntP("horizon", "H", 5, "Projection horizon in years (3 or 5)")
	rootCmd.PersistentFlags().BoolP("revenue-uplift", "u", false, "Add a 0.3% revenue uplift to every year")
	rootCmd.PersistentFlags().BoolP("list", "l", false, "List the available organizations")
	rootCmd.PersistentFlags().BoolP("compare", "c", false, "Project every organization with the same parameters")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Adjust the parameters interactively")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, md, html")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// parseArgs parses command-line arguments into a CLIArgs struct. Values from the config
// file are used for every flag the user did not set explicitly.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	catalogFile, _ := flags.GetString("catalog-file")
	org, _ := flags.GetString("org")
	aiShare, _ := flags.GetFloat64("ai-share")
	roi, _ := flags.GetFloat64("roi")
	horizon, _ := flags.GetInt("horizon")
	uplift, _ := flags.GetBool("revenue-uplift")
	list, _ := flags.GetBool("list")
	compare, _ := flags.GetBool("compare")
	interactive, _ := flags.GetBool("interactive")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noBanner, _ := flags.GetBool("no-banner")

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		CatalogFile:   catalogFile,
		Organization:  org,
		Horizon:       horizon,
		RevenueUplift: uplift,
		List:          list,
		Compare:       compare,
		Interactive:   interactive,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		NoBanner:      noBanner,
	}
	if flags.Changed("ai-share") {
		args.AIShare = &aiShare
	}
	if flags.Changed("roi") {
		args.ROIPerUnit = &roi
	}

	if configFile != "" {
		config, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, config, flags.Changed)
	}

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	}

	return args, nil
}

// mergeConfig copies config values into args for every flag that was not set explicitly.
func mergeConfig(args *types.CLIArgs, config *types.Config, changed func(string) bool) {
	if !changed("org") && config.Organization != "" {
		args.Organization = config.Organization
	}
	if !changed("ai-share") && config.AIShare != nil {
		args.AIShare = config.AIShare
	}
	if !changed("roi") && config.ROIPerUnit != nil {
		args.ROIPerUnit = config.ROIPerUnit
	}
	if !changed("horizon") && config.Horizon != 0 {
		args.Horizon = config.Horizon
	}
	if !changed("revenue-uplift") && config.RevenueUplift {
		args.RevenueUplift = true
	}
	if !changed("catalog-file") && config.CatalogFile != "" {
		args.CatalogFile = config.CatalogFile
	}
	if !changed("report-name") && config.ReportName != "" {
		args.ReportName = config.ReportName
	}
	if !changed("report-type") && len(config.ReportType) > 0 {
		args.ReportType = config.ReportType
	}
	if !changed("dir") && config.Dir != "" {
		args.Dir = config.Dir
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner()
	}

	return app.calculatorUseCase.RunCalculator(cmd.Context(), cliArgs)
}

// SetCalculatorUseCase sets the calculator use case for the CLI app.
func (app *CLIApp) SetCalculatorUseCase(useCase *usecase.CalculatorUseCase) {
	app.calculatorUseCase = useCase
}

// ExecuteContext runs the CLI application.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}
