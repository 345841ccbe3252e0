/*
Copyright © 2019 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	browserhttp "github.com/wundergraph/graphql-browser/pkg/http"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the browser JSON API",
	Long: `Starts an HTTP server exposing the browser:

  GET /query/<path>?nodeType=<type>
  GET /browse/<path>
  GET /form/<path>
  GET /follow/<path>?<input>=<value>
  GET /views`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() // nolint

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b, err := newBrowser(ctx, newAbstractLogger(logger))
		if err != nil {
			return err
		}

		for _, diagnostic := range b.ValidateConfig() {
			logger.Warn("serve", zap.String("view", diagnostic))
		}

		server := &http.Server{
			Addr:    viper.GetString("listen"),
			Handler: browserhttp.NewBrowserHTTPHandler(b, logger),
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on: %s\n", server.Addr)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":9111", "address the server listens on")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}
