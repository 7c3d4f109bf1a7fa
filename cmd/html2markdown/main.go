// html2markdown batch-converts HTML files to Markdown.
//
// Usage:
//
//	html2markdown <input_path>
//
// The input may be a single HTML file or a directory. Converted files are
// written to a fixed "html2markdown" directory — next to a single input
// file, or nested inside an input directory — mirroring the input tree.
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
	"htmlconv/internal/logger"
	"htmlconv/internal/version"
)

// outDirName is the fixed name of the output directory.
const outDirName = "html2markdown"

var rootCmd = &cobra.Command{
	Use:     "html2markdown <input_path>",
	Short:   "Convert HTML files to Markdown",
	Version: version.String(),
	Long: `Convert HTML files to Markdown.

Given a directory, every .html/.htm file under it is converted and written
to an html2markdown/ subdirectory mirroring the input tree. Given a single
HTML file, the output lands in html2markdown/ next to it.

Examples:
  # Convert a whole directory tree
  html2markdown ./exported-pages

  # Convert one file
  html2markdown ./exported-pages/article.html`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON format")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
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

	conv := convert.NewMarkdown()
	if err := conv.Probe(); err != nil {
		return err
	}

	input := args[0]
	info, err := os.Stat(input)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", batch.ErrMissingInput, input)
	}
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if !info.IsDir() {
		return convertSingle(input, conv)
	}

	runner := &batch.Runner{
		Root:      input,
		OutDir:    filepath.Join(input, outDirName),
		Converter: conv,
	}
	sum, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("processing complete",
		"converted", sum.Converted, "skipped", sum.Skipped, "failed", sum.Failed)
	return nil
}

// convertSingle handles the one-file form, writing next to the input.
func convertSingle(input string, conv convert.Converter) error {
	if !batch.IsHTML(input) {
		return fmt.Errorf("%w: %s", batch.ErrUnsupportedInput, input)
	}
	dst := filepath.Join(filepath.Dir(input), outDirName,
		batch.ReplaceExt(filepath.Base(input), conv.Ext()))
	if err := batch.ConvertFile(input, dst, conv); err != nil {
		return err
	}
	logger.Info("converted", "path", input, "output", dst)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
