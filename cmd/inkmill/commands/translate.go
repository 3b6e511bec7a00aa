package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkmill/inkmill"
	"github.com/inkmill/inkmill/config"
	"github.com/inkmill/inkmill/errors"
	"github.com/inkmill/inkmill/logger"
	"github.com/inkmill/inkmill/storage/blob"
	"github.com/inkmill/inkmill/translate"
	"github.com/inkmill/inkmill/translate/python"
)

var (
	translateKernel   string
	translateLanguage string
	translateOutput   string
)

// TranslateCmd codifies a parameters document into a source block.
var TranslateCmd = &cobra.Command{
	Use:   "translate [parameters-file]",
	Short: "Codify a parameters file into a source block",
	Long: `Read an ordered YAML or JSON mapping of parameter names to values and
emit one assignment statement per parameter in the target language.

Pass "-" (or no argument) to read the parameters from stdin.

Examples:
  inkmill translate params.yaml
  inkmill translate --language julia params.yaml
  inkmill translate --kernel .net-fsharp params.json -o Parameters.fsx
  cat params.yaml | inkmill translate -l R`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	TranslateCmd.Flags().StringVarP(&translateKernel, "kernel", "k", "", "Kernel identity to look up first")
	TranslateCmd.Flags().StringVarP(&translateLanguage, "language", "l", "", "Language family fallback")
	TranslateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "Output file (default: stdout)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	kernel := translateKernel
	language := translateLanguage
	if kernel == "" && language == "" {
		kernel = cfg.Translate.Kernel
		language = cfg.Translate.Language
	} else if kernel == "" {
		kernel = language
	} else if language == "" {
		language = kernel
	}

	data, err := readParametersFile(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	params, err := translate.ParametersFromYAML(data)
	if err != nil {
		return err
	}

	registry := configuredRegistry(cfg)
	translator, err := registry.Find(kernel, language)
	if err != nil {
		return err
	}

	block, err := translator.Codify(params)
	if err != nil {
		if errors.IsNormalizationError(err) {
			return errors.WithHint(err, "the block is valid without normalization; unset normalizer.command to skip it")
		}
		return err
	}

	logger.Logger.Debugw("codified parameters",
		"kernel", kernel,
		"language", language,
		"parameters", params.Len(),
	)

	switch {
	case translateOutput == "":
		fmt.Fprint(cmd.OutOrStdout(), block)
		return nil
	case strings.HasPrefix(translateOutput, "blob://"):
		return blob.New(cfg.Blob).Write(cmd.Context(), block, translateOutput)
	default:
		return os.WriteFile(translateOutput, []byte(block), 0o644)
	}
}

// configuredRegistry applies config-driven wiring (the external python
// normalizer) on top of the built-in registry.
func configuredRegistry(cfg *config.Config) *translate.Registry {
	registry := inkmill.DefaultRegistry()
	if cfg.Normalizer.Command != "" {
		registry.Register("python", python.New(python.WithNormalizer(&translate.CommandNormalizer{
			Command: cfg.Normalizer.Command,
			Timeout: cfg.Normalizer.Timeout(),
		})))
	}
	return registry
}

// readParametersFile resolves the positional argument: stdin for "-"
// or no argument, the blob store for blob:// urls, the local
// filesystem otherwise.
func readParametersFile(ctx context.Context, cfg *config.Config, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	if strings.HasPrefix(args[0], "blob://") {
		lines, err := blob.New(cfg.Blob).Read(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(lines, "\n")), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "reading parameters file %s", args[0])
	}
	return data, nil
}
