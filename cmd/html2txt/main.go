// html2txt batch-extracts plain text from HTML files.
//
// Usage:
//
//	html2txt <input_dir>
//
// Every .html/.htm file under the input directory is reduced to its title,
// paragraphs, and section separators, and written to an html2txt/
// subdirectory mirroring the input tree. The output directory itself is
// excluded from the walk, so repeated runs do not re-convert their own
// output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"htmlconv/internal/batch"
	"htmlconv/internal/convert"
	"htmlconv/internal/extract"
	"htmlconv/internal/logger"
	"htmlconv/internal/version"
)

// outDirName is the fixed name of the output directory.
const outDirName = "html2txt"

var rootCmd = &cobra.Command{
	Use:     "html2txt <input_dir>",
	Short:   "Extract plain text from HTML files",
	Version: version.String(),
	Long: `Extract plain text from HTML files.

Extraction reads the document title (h1.title), the paragraphs of the main
content container (div.show-content), and horizontal rules as "---" section
separators. A profile file can substitute different selectors.

Examples:
  # Convert a directory tree with the default profile
  html2txt ./exported-pages

  # Use custom selectors
  html2txt --profile profile.yaml ./exported-pages`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON format")
	rootCmd.Flags().StringP("profile", "p", "", "extraction profile file (JSON or YAML)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
	_ = viper.BindPFlag("profile", rootCmd.Flags().Lookup("profile"))
}

func initConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".htmlconv")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("HTMLCONV")
	viper.AutomaticEnv()

	// Config file is optional
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	profile := extract.Default()
	if path := viper.GetString("profile"); path != "" {
		var err error
		profile, err = extract.FromFile(path)
		if err != nil {
			return err
		}
		logger.Debug("profile loaded", "path", path)
	}

	input := args[0]
	info, err := os.Stat(input)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", batch.ErrMissingInput, input)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", batch.ErrNotDirectory, input)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := &batch.Runner{
		Root:      input,
		OutDir:    filepath.Join(input, outDirName),
		Converter: convert.NewText(profile),
	}
	sum, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("processing complete",
		"converted", sum.Converted, "skipped", sum.Skipped, "failed", sum.Failed)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
