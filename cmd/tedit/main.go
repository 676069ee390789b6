// cmd/tedit/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // for fatal errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/tedit/internal/app"
	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/logger"
)

func main() {
	flags := config.NewFlags(filepath.Base(os.Args[0]))
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, res, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	logOut, closeLog, err := logger.OpenLogFile(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Error loading config '%s', using defaults: %v", res.Path, cfgErr)
	} else {
		logger.Debugf("Config: %s", res.Path)
	}
	for _, key := range res.Undecoded {
		logger.Warnf("Config: unknown key '%s'", key)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	editorApp, err := app.NewApp(cfg, filePath, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
