package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmoreau/formadvisor/internal/matching"
)

const (
	app = "formadvisor"
)

type Config struct {
	ContentDir string          `mapstructure:"content-dir"`
	Server     *ServerConfig   `mapstructure:"server"`
	Matching   *MatchingConfig `mapstructure:"matching"`
	AI         *AIConfig       `mapstructure:"ai"`
}

type ServerConfig struct {
	Listen      string   `mapstructure:"listen"`
	CORSOrigins []string `mapstructure:"cors-origins"`
}

type MatchingConfig struct {
	Strategy  string       `mapstructure:"strategy"`
	TopK      int          `mapstructure:"top-k"`
	Threshold float64      `mapstructure:"threshold"`
	Fuzzy     *FuzzyConfig `mapstructure:"fuzzy"`
}

type FuzzyConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Cutoff  float64 `mapstructure:"cutoff"`
	Bonus   float64 `mapstructure:"bonus"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "formadvisor recommends training courses matching a user profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is formadvisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("content-dir", "", "directory holding the course corpus (*.json)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("content-dir", rootCmd.PersistentFlags().Lookup("content-dir"))

	viper.SetDefault("content-dir", "./content")
	viper.SetDefault("server.listen", ":8000")
	viper.SetDefault("server.cors-origins", []string{"http://localhost:4200"})
	viper.SetDefault("matching.strategy", matching.StrategyThreshold)
	viper.SetDefault("matching.top-k", matching.DefaultTopK)
	viper.SetDefault("matching.threshold", matching.DefaultThreshold)
	viper.SetDefault("matching.fuzzy.enabled", true)
	viper.SetDefault("matching.fuzzy.cutoff", matching.DefaultFuzzyCutoff)
	viper.SetDefault("matching.fuzzy.bonus", matching.DefaultFuzzyBonus)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// Every key has a default, so a missing config file is fine unless
	// one was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// matchingConfig maps the file configuration onto the strategy config.
func (c *Config) matchingConfig() matching.Config {
	cfg := matching.Config{}
	if c == nil || c.Matching == nil {
		return cfg
	}

	cfg.Strategy = c.Matching.Strategy
	cfg.TopK = c.Matching.TopK
	cfg.Threshold = c.Matching.Threshold
	if f := c.Matching.Fuzzy; f != nil {
		cfg.Fuzzy = matching.FuzzyConfig{
			Enabled: f.Enabled,
			Cutoff:  f.Cutoff,
			Bonus:   f.Bonus,
		}
	}
	return cfg
}
