package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/guynir/jack/pkg/logger"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		vf   valueFlags
		file string
	)

	cmd := &cobra.Command{
		Use:   "render [flags] TEMPLATE",
		Short: "Compile and render a template",
		Example: `  jack render 'Mr. ${lastName} is ${age} years old.' --set lastName=Holmes --set age=60
  jack render --file welcome.tmpl --values values.yaml --locale de-DE`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, name, err := templateArg(args, file)
			if err != nil {
				return err
			}
			ctx := logger.WithTemplate(logger.WithLocale(cmd.Context(), a.localeTag()), name)

			values, err := vf.load()
			if err != nil {
				return a.fail(ctx, "loading values", err)
			}
			f, err := a.factory()
			if err != nil {
				return a.fail(ctx, "creating factory", err)
			}
			msg, err := f.Compile(template)
			if err != nil {
				return a.fail(ctx, "compiling template", err)
			}
			out, err := msg.Render(values)
			if err != nil {
				return a.fail(ctx, "rendering template", err)
			}

			_, err = fmt.Fprintln(a.stdout, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the template from a file")
	cmd.Flags().StringVar(&vf.file, "values", "", "YAML or JSON file with variable values")
	cmd.Flags().StringArrayVar(&vf.set, "set", nil, "set a variable, name=value (repeatable)")
	return cmd
}

// templateArg returns the template text and a name to log it under.
func templateArg(args []string, file string) (string, string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", "", fmt.Errorf("pass either TEMPLATE or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("reading template: %w", err)
		}
		return string(data), file, nil
	case len(args) == 1:
		return args[0], "inline", nil
	default:
		return "", "", fmt.Errorf("missing TEMPLATE")
	}
}

// fail logs err against ctx and returns it annotated with what was being done.
func (a *app) fail(ctx context.Context, doing string, err error) error {
	a.log.ErrorContext(ctx, doing+" failed", slog.Any("error", err))
	return fmt.Errorf("%s: %w", doing, err)
}
