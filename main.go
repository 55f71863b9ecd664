package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orbisfs/pkg-extractor/logger"
	"github.com/orbisfs/pkg-extractor/settings"
)

func main() {
	flag.Parse()

	exePath, err := os.Executable()
	if err != nil {
		fmt.Println("Failed to get executable directory, please ensure app has sufficient permissions. Aborting")
		os.Exit(1)
	}
	workingFolder := filepath.Dir(exePath)

	settingsObj := settings.ReadSettings(workingFolder)
	sugar := logger.GetSugar(workingFolder, settingsObj.Debug)
	defer logger.Defer()

	defer func() {
		if r := recover(); r != nil {
			sugar.Errorf("unhandled crash: %v", r)
			fmt.Fprintf(os.Stderr, "fatal: %v\n", r)
			os.Exit(2)
		}
	}()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %v [flags] <file.pkg> <output folder>\n", filepath.Base(exePath))
		flag.PrintDefaults()
		os.Exit(1)
	}

	console := CreateConsole(workingFolder, sugar)
	if !console.Start(flag.Arg(0), flag.Arg(1)) {
		os.Exit(1)
	}
}
