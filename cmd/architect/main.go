package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"imageprompt/internal/batch"
	"imageprompt/internal/infra"
	"imageprompt/internal/providers/prompt"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		opts     batch.Options
		provider string
		model    string
	)

	cmd := &cobra.Command{
		Use:           "architect",
		Short:         "Turn a free-text image description into a structured JSON prompt",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()
			if provider != "" {
				os.Setenv("PROMPT_PROVIDER", provider)
			}
			if model != "" {
				os.Setenv("OPENAI_MODEL", model)
				os.Setenv("GEMINI_MODEL", model)
			}

			errOut := cmd.ErrOrStderr()
			cfg, err := infra.LoadConfig()
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			logger := infra.NewLoggerTo(cfg.AppEnv, errOut)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// input problems are reported before any provider is built
			description, err := batch.ReadDescription(batch.InputPath(opts.InputPath))
			if err != nil {
				if !reportInputError(errOut, err) {
					fmt.Fprintf(errOut, "Error: %v\n", err)
				}
				return err
			}
			opts.Description = description

			gen, err := prompt.NewFromConfig(ctx, cfg, logger)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Generating structured prompt...")
			out, err := batch.Run(ctx, opts, gen, logger)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return err
			}
			if !out.Parsed {
				fmt.Fprintln(errOut, "Warning: the model did not return valid JSON; an empty object was written.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK -> %s\n", out.Path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.InputPath, "input", "i", batch.DefaultInputFile, "description file to read")
	flags.StringVarP(&opts.OutputDir, "out-dir", "o", ".", "directory the spec is written to")
	flags.StringVarP(&opts.Format, "format", "f", "json", "output format: json or yaml")
	flags.StringVar(&provider, "provider", "", "override PROMPT_PROVIDER (openai, gemini, static)")
	flags.StringVar(&model, "model", "", "override the provider model")
	return cmd
}

func reportInputError(w io.Writer, err error) bool {
	switch {
	case errors.Is(err, batch.ErrInputMissing):
		fmt.Fprintf(w, "Error: %v. Create it with your image description.\n", err)
	case errors.Is(err, batch.ErrInputEmpty):
		fmt.Fprintf(w, "Error: %v. Write a description first.\n", err)
	default:
		return false
	}
	return true
}
