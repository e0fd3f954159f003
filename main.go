package main

import (
	"canvas-memento/demo"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// run parses args, configures logging and plays the demo to out. Environment
// values (LOG_LEVEL, HISTORY_LIMIT) are defaults the flags override.
func run(args []string, out io.Writer) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	defaultLimit, err := strconv.Atoi(envOr("HISTORY_LIMIT", "0"))
	if err != nil {
		return fmt.Errorf("invalid HISTORY_LIMIT: %w", err)
	}

	fs := flag.NewFlagSet("canvas-memento", flag.ContinueOnError)
	logLevel := fs.String("loglevel", envOr("LOG_LEVEL", "warn"), "Set the logging level: debug, info, warn, error, fatal, panic")
	historyLimit := fs.Int("history-limit", defaultLimit, "Maximum number of saved canvas states, 0 for unbounded")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logrus.WithField("history_limit", *historyLimit).Debug("Starting canvas demo")
	demo.Run(out, *historyLimit)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
