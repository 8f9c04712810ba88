/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"strings"
	"time"

	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/internal/logger"
	"github.com/josephgoksu/interncare/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// dataDir overrides where records are stored.
	dataDir string
	// backend selects the storage backend (file or sqlite).
	backend string
	// jsonOutput switches list/stat commands to JSON.
	jsonOutput bool

	// version is the application version, set at build time with -ldflags.
	version = "0.1.0"

	telemetryClient telemetry.Client = telemetry.NewNoopClient()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "interncare",
	Short: "InternCare - wellness and productivity tracker",
	Long: `InternCare tracks your tasks, mood and health from the terminal and turns
them into simple, prioritised suggestions.

Everything is stored locally. Log a quick daily check-in with 'interncare checkin',
see where you stand with 'interncare dashboard', and expose the same data to AI
assistants with 'interncare mcp'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(cmd.ErrOrStderr(), viper.GetBool("verbose"))
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
		logger.SetLastInput(strings.Join(args, " "))
		if dir, err := config.CrashLogDir(); err == nil {
			logger.SetBasePath(dir)
		}

		if configErr != nil {
			return configErr
		}

		telemetryClient = newTelemetryClient()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	start := time.Now()
	cmd, err := rootCmd.ExecuteC()
	// The telemetry commands change consent mid-run; never report them.
	if cmd != nil && cmd != telemetryCmd && cmd.Parent() != telemetryCmd {
		telemetry.TrackCommand(telemetryClient, cmd.CommandPath(), err == nil, time.Since(start))
	}
	_ = telemetryClient.Close()
	if err != nil {
		HandleFatalError(err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.interncare.yaml or ./.interncare.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding your records (default is $XDG_DATA_HOME/interncare or ~/.interncare/data)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print machine-readable JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("interncare version {{.Version}}\n")
}

// bindFlags maps persistent flags onto viper keys. It runs on every
// initialisation so a viper.Reset between runs does not lose the bindings.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("data.dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("data.backend", flags.Lookup("backend"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
}

func newTelemetryClient() telemetry.Client {
	tcfg, err := telemetry.Load()
	if err != nil {
		LogError("load telemetry config", err)
		return telemetry.NewNoopClient()
	}
	cfg := GetConfig()
	return telemetry.New(telemetry.ClientConfig{
		APIKey:   cfg.Telemetry.APIKey,
		Endpoint: cfg.Telemetry.Endpoint,
		Version:  version,
		Config:   tcfg,
	})
}
