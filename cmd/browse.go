package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wundergraph/graphql-browser/pkg/argform"
	"github.com/wundergraph/graphql-browser/pkg/browser"
	"github.com/wundergraph/graphql-browser/pkg/dataprocessor"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

var (
	browseJSON bool
	browseArgs []string
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Fetches and prints a location",
	Long: `Fetches the object or list at path and prints it through its view.

Fields that were not fetched are printed with the path leading to them.
Arguments of the last step can be entered with --arg, keyed by input path.`,
	Example: `  graphql-browser browse library
  graphql-browser browse book --arg isbn=978-3
  graphql-browser browse search --arg filter.title=Go --arg filter.pages.min=100`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		values, err := formValues(browseArgs)
		if err != nil {
			return err
		}

		pathSpecs, err := pathspec.ParseURLPath(pathArg(args))
		if err != nil {
			return err
		}

		b, err := newBrowser(ctx, newAbstractLogger(logger))
		if err != nil {
			return err
		}

		if len(values) != 0 {
			if pathSpecs, err = b.ApplyArguments(ctx, pathSpecs, values); err != nil {
				return err
			}
		}

		page, err := b.NavigatePath(ctx, pathSpecs)
		if err != nil {
			return err
		}

		if browseJSON {
			data, err := json.MarshalIndent(page, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		return printPage(cmd.OutOrStdout(), page)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "print the page as JSON")
	browseCmd.Flags().StringArrayVar(&browseArgs, "arg", nil, "argument of the last step as input.path=value")
}

func formValues(args []string) (argform.Values, error) {
	values := argform.Values{}
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid argument %q, expected input.path=value", arg)
		}
		values[parts[0]] = parts[1]
	}
	return values, nil
}

func printPage(out io.Writer, page *browser.Page) error {
	crumbs := make([]string, 0, len(page.Breadcrumbs))
	for _, crumb := range page.Breadcrumbs {
		crumbs = append(crumbs, crumb.Label)
	}
	fmt.Fprintln(out, strings.Join(crumbs, " > "))

	for _, responseError := range page.Errors {
		fmt.Fprintf(out, "error: %s\n", responseError.Message)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	switch page.Kind {
	case browser.NullPage:
		fmt.Fprintln(w, "null")
	case browser.ObjectPage:
		fmt.Fprintf(w, "%s\n", page.Object.TypeName)
		for _, field := range page.Object.Fields {
			fmt.Fprintf(w, "%s\t%s\n", field.Label, displayValue(field))
		}
	case browser.TablePage:
		fmt.Fprintf(w, "[%s]\n", page.Table.TypeName)
		fmt.Fprintln(w, "#\t"+strings.Join(page.Table.Headers, "\t"))
		for _, row := range page.Table.Rows {
			if row.IsNull {
				fmt.Fprintf(w, "%d\tnull\n", row.Index)
				continue
			}
			cells := make([]string, 0, len(row.Fields))
			for _, field := range row.Fields {
				cells = append(cells, displayValue(field))
			}
			fmt.Fprintf(w, "%d\t%s\n", row.Index, strings.Join(cells, "\t"))
		}
	}
	return w.Flush()
}

func displayValue(field dataprocessor.DisplayField) string {
	if field.Value != nil {
		return *field.Value
	}
	if field.Link == nil {
		return ""
	}
	if field.Link.RequiresArguments {
		return "-> " + field.Link.URLPath + " (arguments required)"
	}
	return "-> " + field.Link.URLPath
}
