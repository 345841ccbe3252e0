package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

var (
	queryNodeType string
	queryPretty   bool
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [path]",
	Short: "Prints the query fetching a location",
	Long: `Prints the GraphQL query and variables fetching the object at path.

Paths starting with a node lookup need the concrete type of the node. It is
queried from the endpoint unless given with --node-type.`,
	Example: `  graphql-browser query library
  graphql-browser query 'book({"isbn":"978-3"})/author' --pretty
  graphql-browser query 'node({"id":"Qm9vazox"})' --node-type Book`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		pathSpecs, err := pathspec.ParseURLPath(pathArg(args))
		if err != nil {
			return err
		}

		b, err := newBrowser(ctx, newAbstractLogger(logger))
		if err != nil {
			return err
		}

		query, err := b.BuildQuery(ctx, pathSpecs, queryNodeType)
		if err != nil {
			return err
		}

		queryStr := query.Request.Query
		if queryPretty {
			if queryStr, err = prettyQuery(queryStr); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, queryStr)
		if query.Request.Variables != nil {
			variables, err := json.MarshalIndent(query.Request.Variables, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(variables))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryNodeType, "node-type", "", "concrete type of the node lookup starting the path")
	queryCmd.Flags().BoolVar(&queryPretty, "pretty", false, "print the query indented over several lines")
}

func prettyQuery(query string) (string, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	formatter.NewFormatter(buf, formatter.WithIndent("  ")).FormatQueryDocument(doc)
	return buf.String(), nil
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
