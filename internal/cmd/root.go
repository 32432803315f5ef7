package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/server"
)

// Version information - set by main from ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "color-mcp",
	Short: "MCP server for converting colors between RGB, CMYK and HLS",
	Long: `color-mcp holds a single current color and exposes it over the Model Context
Protocol. Clients set the color through RGB, CMYK, HLS or hex and receive all
three models back; stateless conversion and image sampling tools are also
provided.

The server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
	SilenceUsage: true,
	RunE:         runServer,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (info, debug)")
	rootCmd.Flags().String("rounding", "half-even", "Rounding rule for conversions (half-even, half-away)")
	rootCmd.Flags().String("saturation-guard", "denominator", "HLS saturation fallback (denominator, reference)")
	rootCmd.Flags().String("initial", "#808080", "Initial color as hex")

	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("rounding", rootCmd.Flags().Lookup("rounding")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("saturation_guard", rootCmd.Flags().Lookup("saturation-guard")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("initial", rootCmd.Flags().Lookup("initial")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// COLOR_MCP_LOG_LEVEL, COLOR_MCP_ROUNDING, COLOR_MCP_SATURATION_GUARD, ...
	viper.SetEnvPrefix("COLOR_MCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if isDebug() {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func isDebug() bool {
	return strings.EqualFold(viper.GetString("log_level"), "debug")
}

// serverConfig builds the server configuration from flags, environment and
// config file.
func serverConfig() (server.Config, error) {
	cfg := server.DefaultConfig()
	cfg.Version = Version
	cfg.Debug = isDebug()

	rounding, err := colorconv.ParseRounding(viper.GetString("rounding"))
	if err != nil {
		return cfg, err
	}
	cfg.Rounding = rounding

	guard, err := colorconv.ParseSaturationGuard(viper.GetString("saturation_guard"))
	if err != nil {
		return cfg, err
	}
	cfg.Saturation = guard

	if hex := viper.GetString("initial"); hex != "" {
		initial, err := colorconv.ParseHex(hex)
		if err != nil {
			return cfg, fmt.Errorf("invalid initial color: %w", err)
		}
		cfg.Initial = initial
	}

	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := serverConfig()
	if err != nil {
		return err
	}

	if cfg.Debug {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("rounding=%s saturation-guard=%s initial=%s", cfg.Rounding, cfg.Saturation, cfg.Initial.Hex())
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
