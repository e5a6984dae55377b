package stone

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/zapr"
	"github.com/spf13/viper"
	"go.minekube.com/common/minecraft/component"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.minekube.com/stone/pkg/config"
	server "go.minekube.com/stone/pkg/stone"
	"go.minekube.com/stone/pkg/util/errs"
)

// Run reads in the config, initializes the logger and runs the server
// with all registered plugins until ctx is canceled.
func Run(ctx context.Context) error {
	var file config.File
	if err := viper.Unmarshal(&file); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	zl, err := newZapLogger(file.Debug)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	log := zapr.NewLogger(zl)

	cfg, err := config.NewValid(&file)
	if err != nil {
		return fmt.Errorf("error validating config: %w", err)
	}

	s, err := server.New(server.Options{Config: cfg, Logger: log})
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}
	if err = s.InitPlugins(); err != nil {
		return fmt.Errorf("error initializing plugins: %w", err)
	}
	log.Info("Server ready", "plugins", len(s.Loader().Plugins()))

	go consoleLoop(ctx, s)

	<-ctx.Done()
	s.Shutdown(&component.Text{Content: "Server is shutting down."})
	return nil
}

// consoleLoop reads command lines from stdin and executes them as the
// console sender until stdin closes or ctx is canceled.
func consoleLoop(ctx context.Context, s *server.Server) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "/")
		if line == "" {
			continue
		}
		if err := s.Commands().Do(ctx, s.Console(), line); err != nil {
			var silent *errs.SilentError
			if errors.As(err, &silent) {
				s.Logger().V(1).Info("Command failed", "command", line, "error", err.Error())
				continue
			}
			s.Logger().Info("Command failed", "command", line, "error", err.Error())
		}
	}
}

func newZapLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
