package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/catalog"
	"github.com/guynir/jack/pkg/logger"
)

func newCatalogCmd(a *app) *cobra.Command {
	var (
		vf        valueFlags
		dir       string
		redisURL  string
		redisKey  string
		lang      string
		namespace string
		key       string
		count     int
		list      bool
	)

	cmd := &cobra.Command{
		Use:   "catalog [flags]",
		Short: "Render a message from a template catalog",
		Example: `  jack catalog --dir ./templates --lang de --namespace common --key welcome --set name=Ada
  jack catalog --redis-url redis://localhost:6379/0 --redis-key jack:templates --lang en --namespace shop --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if (dir == "") == (redisURL == "") {
				return fmt.Errorf("pass exactly one of --dir or --redis-url")
			}

			tag := a.localeTag()
			if lang != "" {
				var err error
				if tag, err = language.Parse(lang); err != nil {
					return fmt.Errorf("invalid --lang %q: %w", lang, err)
				}
			}
			ctx = logger.WithTemplate(logger.WithLocale(ctx, tag), namespace+"."+key)

			f, err := a.factory()
			if err != nil {
				return a.fail(ctx, "creating factory", err)
			}
			opts := []catalog.Option{catalog.WithFactory(f), catalog.WithLogger(a.log)}

			if dir != "" {
				fsys := os.DirFS(dir)
				opts = append(opts, catalog.WithJSONDir(fsys), catalog.WithYAMLDir(fsys))
			} else {
				client, err := catalog.OpenRedis(ctx, redisURL)
				if err != nil {
					return a.fail(ctx, "connecting to redis", err)
				}
				defer client.Close()
				opts = append(opts, catalog.WithSource(ctx, catalog.NewRedisSource(client, redisKey)))
			}

			c, err := catalog.New(opts...)
			if err != nil {
				return a.fail(ctx, "loading catalog", err)
			}

			if list {
				fmt.Fprintf(a.stdout, "languages: %v\n", c.Languages())
				for _, k := range c.Keys(tag, namespace) {
					fmt.Fprintln(a.stdout, k)
				}
				return nil
			}
			if key == "" {
				return fmt.Errorf("--key is required unless --list is set")
			}

			values, err := vf.load()
			if err != nil {
				return a.fail(ctx, "loading values", err)
			}

			var out string
			if cmd.Flags().Changed("count") {
				out, err = c.RenderCount(tag, namespace, key, count, values)
			} else {
				out, err = c.Render(tag, namespace, key, values)
			}
			if err != nil {
				return a.fail(ctx, "rendering message", err)
			}
			_, err = fmt.Fprintln(a.stdout, out)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory of {lang}/{namespace}.json|yaml files")
	cmd.Flags().StringVar(&redisURL, "redis-url", os.Getenv(envRedis), "Redis URL holding the template hash ($"+envRedis+")")
	cmd.Flags().StringVar(&redisKey, "redis-key", "jack:templates", "Redis hash with lang:namespace:key fields")
	cmd.Flags().StringVar(&lang, "lang", "", "message language, defaults to --locale")
	cmd.Flags().StringVar(&namespace, "namespace", "default", "message namespace")
	cmd.Flags().StringVar(&key, "key", "", "message key, dotted for nested entries")
	cmd.Flags().IntVar(&count, "count", 0, "render the plural variant for this count")
	cmd.Flags().BoolVar(&list, "list", false, "list the keys of --namespace for --lang instead of rendering")
	cmd.Flags().StringVar(&vf.file, "values", "", "YAML or JSON file with variable values")
	cmd.Flags().StringArrayVar(&vf.set, "set", nil, "set a variable, name=value (repeatable)")
	return cmd
}
