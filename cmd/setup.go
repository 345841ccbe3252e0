package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wundergraph/graphql-browser/pkg/browser"
	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/graphqlclient"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

func newLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		return nil, err
	}

	if level == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

func abstractLevel(level zapcore.Level) abstractlogger.Level {
	switch level {
	case zapcore.DebugLevel:
		return abstractlogger.DebugLevel
	case zapcore.InfoLevel:
		return abstractlogger.InfoLevel
	case zapcore.WarnLevel:
		return abstractlogger.WarnLevel
	case zapcore.ErrorLevel:
		return abstractlogger.ErrorLevel
	default:
		return abstractlogger.FatalLevel
	}
}

func newAbstractLogger(logger *zap.Logger) abstractlogger.Logger {
	var level zapcore.Level
	_ = level.UnmarshalText([]byte(viper.GetString("log-level")))
	return abstractlogger.NewZapLogger(logger, abstractLevel(level))
}

// requestHeaders merges the headers of the config file with the --header flags.
func requestHeaders() (map[string]string, error) {
	headers := make(map[string]string)
	for key, value := range viper.GetStringMapString("headers") {
		headers[key] = value
	}
	for _, header := range headerFlags {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", header)
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers, nil
}

func newClient(logger abstractlogger.Logger) (*graphqlclient.Client, error) {
	headers, err := requestHeaders()
	if err != nil {
		return nil, err
	}

	cache, err := graphqlclient.NewIntrospectionCache(viper.GetInt("introspection-cache-size"))
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout:   viper.GetDuration("timeout"),
		Transport: graphqlclient.DefaultNetHttpClient.Transport,
	}

	return graphqlclient.New(viper.GetString("endpoint"),
		graphqlclient.WithHTTPClient(httpClient),
		graphqlclient.WithHeaders(headers),
		graphqlclient.WithIntrospectionCache(cache),
		graphqlclient.WithLogger(logger),
	), nil
}

// loadSchema reads the --introspection file or introspects the endpoint.
func loadSchema(ctx context.Context, client *graphqlclient.Client) (*introspection.Introspection, error) {
	fileName := viper.GetString("introspection")
	if fileName == "" {
		return client.Introspect(ctx)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return introspection.Parse(file)
}

// loadViews returns nil when no view configuration is set.
func loadViews(fileName string) (*configuration.Config, error) {
	if fileName == "" {
		return nil, nil
	}
	return configuration.LoadFile(fileName)
}

// newBrowser wires a browser from the current settings.
func newBrowser(ctx context.Context, logger abstractlogger.Logger) (*browser.Browser, error) {
	client, err := newClient(logger)
	if err != nil {
		return nil, err
	}

	schema, err := loadSchema(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	config, err := loadViews(viper.GetString("views"))
	if err != nil {
		return nil, fmt.Errorf("loading views: %w", err)
	}

	return browser.New(schema, client,
		browser.WithConfig(config),
		browser.WithLogger(logger),
	), nil
}
