package main

import (
	"log"
	"os"
	"strings"

	"consolidate/cmd"
	"consolidate/pkg/logging"

	"golang.org/x/term"
)

func main() {
	code := cmd.Execute()
	syncLogger()
	os.Exit(code)
}

// syncLogger flushes the logger when stderr can actually be synced.
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logging.Logger.Sync(); err != nil {
		lowerErr := strings.ToLower(err.Error())
		if !strings.Contains(lowerErr, "invalid argument") && !strings.Contains(lowerErr, "inappropriate ioctl") {
			log.Printf("Logger sync failed: %v", err)
		}
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
