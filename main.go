package main

import (
	"log"
	"os"
	"strings"

	"unihdr/cmd"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	app := cmd.NewApp()
	err := app.Execute()

	logger := app.Logger()
	if logger == nil {
		if err != nil {
			log.Fatalf("unihdr: %v", err)
		}
		return
	}

	if err != nil {
		logger.Error("unihdr execution failed", zap.Error(err))
	}

	// Syncing a console or pipe fails with "invalid argument" on some platforms.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
