package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guynir/jack/pkg/logger"
	"github.com/guynir/jack/pkg/message"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		vf   valueFlags
		file string
	)

	cmd := &cobra.Command{
		Use:   "check [flags] TEMPLATE",
		Short: "Compile a template and describe it without rendering",
		Long: `check compiles a template and lists its constructs and variables.
With --values or --set it also checks that every variable resolves to a
value a formatter accepts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, name, err := templateArg(args, file)
			if err != nil {
				return err
			}
			ctx := logger.WithTemplate(cmd.Context(), name)

			f, err := a.factory()
			if err != nil {
				return a.fail(ctx, "creating factory", err)
			}
			msg, err := f.Compile(template)
			if err != nil {
				return a.fail(ctx, "compiling template", err)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OFFSET\tKIND\tVARIABLE\tFORMATTER\tTEXT")
			for _, c := range msg.Constructs() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%q\n", c.Offset(), c.Kind(), c.Variable(), formatterName(c), c.Text())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "variables: %v\n", msg.Variables())

			if vf.file == "" && len(vf.set) == 0 {
				return nil
			}
			values, err := vf.load()
			if err != nil {
				return a.fail(ctx, "loading values", err)
			}
			if err := msg.Validate(values); err != nil {
				return a.fail(ctx, "validating values", err)
			}
			fmt.Fprintln(a.stdout, "values: ok")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the template from a file")
	cmd.Flags().StringVar(&vf.file, "values", "", "YAML or JSON file with variable values")
	cmd.Flags().StringArrayVar(&vf.set, "set", nil, "set a variable, name=value (repeatable)")
	return cmd
}

func formatterName(c message.Construct) string {
	switch c.Kind() {
	case message.StaticConstruct:
		return c.Formatter().Name()
	case message.DynamicConstruct:
		return "(by type)"
	default:
		return ""
	}
}
