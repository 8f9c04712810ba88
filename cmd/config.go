package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/config"
	"github.com/josephgoksu/interncare/store"
	"github.com/josephgoksu/interncare/types"
	"github.com/spf13/viper"
)

const (
	configName = ".interncare"
	envPrefix  = "INTERNCARE"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// configErr is set by InitConfig and reported by the root pre-run, so an
// invalid config fails the command instead of exiting mid-initialisation.
var configErr error

var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct and joins
// the failures into one readable message.
func validateAppConfig(cfg *types.AppConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed '%s' (value: %v)", configKey(e.Namespace()), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%w: invalid configuration: %s", types.ErrValidation, strings.Join(msgs, "; "))
}

// configKey turns "AppConfig.Data.Backend" into "data.backend".
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		switch {
		case p == "":
		case strings.ToUpper(p) == p:
			parts[i] = strings.ToLower(p) // LLM -> llm
		default:
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	configErr = nil
	bindFlags()

	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., INTERNCARE_VERBOSE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // INTERNCARE_DATA_DIR -> data.dir

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.interncare.yaml
		}
		viper.AddConfigPath(".") // ./.interncare.yaml
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Defaults and environment only.
		case errors.Is(err, os.ErrNotExist):
			configErr = fmt.Errorf("config file not found: %s", viper.GetString("config"))
			return
		default:
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	setDefaults()

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		configErr = fmt.Errorf("unmarshal config: %w", err)
		return
	}
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		configErr = err
	}
}

func setDefaults() {
	viper.SetDefault("data.dir", "")
	viper.SetDefault("data.backend", store.BackendFile)
	viper.SetDefault("analytics.windowDays", analytics.DefaultWindowDays)

	viper.SetDefault("llm.provider", "") // inferred from llm.modelName when empty
	viper.SetDefault("llm.modelName", "")
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.baseURL", "")
	viper.SetDefault("llm.timeoutSeconds", int(config.DefaultLLMTimeout.Seconds()))

	viper.SetDefault("telemetry.apiKey", "")
	viper.SetDefault("telemetry.endpoint", "")
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
