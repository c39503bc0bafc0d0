package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chinmay1088/nenrin/api"
	"github.com/chinmay1088/nenrin/workflow"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// env bundles what network commands need: logger, cluster client, runner.
type env struct {
	logger *zap.Logger
	client *api.Client
	runner *workflow.Runner
	out    io.Writer
}

func newEnv() (*env, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	network := networkFlag
	if network == "" {
		network, _ = getCurrentNetwork()
	}

	client, err := api.NewClient(api.Options{
		Network:  network,
		Endpoint: rpcFlag,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	out := output()
	runner := workflow.NewRunner(client, out,
		workflow.WithLogger(logger),
		workflow.WithSpinner(spinnerEnabled()),
	)

	return &env{
		logger: logger,
		client: client,
		runner: runner,
		out:    out,
	}, nil
}

func (e *env) Close() {
	_ = e.logger.Sync()
}

func (e *env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

func (e *env) printNetwork() {
	name := strings.ToUpper(e.client.Network())
	if e.client.IsMainnet() {
		e.printf("🌐 Network: %s (%s)\n", color.RedString(name), e.client.Endpoint())
	} else {
		e.printf("🌐 Network: %s (%s)\n", color.YellowString(name), e.client.Endpoint())
	}
}

// newLogger returns a development logger on stderr when --verbose is set.
func newLogger() (*zap.Logger, error) {
	if !verboseFlag {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func output() io.Writer {
	if quietFlag {
		return io.Discard
	}
	return os.Stdout
}

func spinnerEnabled() bool {
	return !quietFlag && term.IsTerminal(int(os.Stdout.Fd()))
}
