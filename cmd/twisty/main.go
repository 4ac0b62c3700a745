package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/cubedev/twisty/internal/scramble"
	"github.com/cubedev/twisty/internal/search"
)

var (
	log = logrus.New()

	configPath string
	config     = defaultConfig()
)

func setupLogging() {
	level := logrus.InfoLevel
	if config.Verbose {
		level = logrus.DebugLevel
	}

	formatter := &logrus.TextFormatter{ForceColors: true}

	for _, l := range []*logrus.Logger{log, search.Log, scramble.Log} {
		l.SetLevel(level)
		l.SetFormatter(formatter)
	}

	if config.LogFile == "" {
		return
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}

	for _, l := range []*logrus.Logger{log, search.Log, scramble.Log} {
		l.AddHook(hook)
	}
}

func loadConfig() {
	if configPath == "" {
		return
	}
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}
	if err := json.Unmarshal(configBytes, &config); err != nil {
		log.Fatalf("unable to parse config %s: %s", configPath, err.Error())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
