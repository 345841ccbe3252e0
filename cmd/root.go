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
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = ".graphql-browser"
	envPrefix      = "GRAPHQL_BROWSER"
)

var (
	cfgFile     string
	headerFlags []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graphql-browser",
	Short: "graphql-browser navigates the object graph of a GraphQL API",
	Long: `graphql-browser turns the schema of a GraphQL API into a browsable object graph.

Every location is a path of field selections, e.g.

  library/books[0]/author
  node({"id":"Qm9vazox"})/library

Locations are fetched with a single query built from the path and the view
configured for the object found at its end.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+configFileName+".yaml)")
	flags.String("endpoint", "http://localhost:9111/graphql", "url of the GraphQL endpoint")
	flags.StringArrayVar(&headerFlags, "header", nil, "header sent with every request, e.g. 'Authorization: Bearer token'")
	flags.String("views", "", "view configuration file (yaml or json)")
	flags.String("introspection", "", "introspection result file used instead of querying the endpoint")
	flags.Duration("timeout", 10*time.Second, "timeout of requests to the endpoint")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("introspection-cache-size", 16, "number of introspection results kept in memory")

	for _, key := range []string{"endpoint", "views", "introspection", "timeout", "log-level", "introspection-cache-size"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
