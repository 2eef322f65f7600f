package main

import (
	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/config"
	"github.com/PeimanAtaei/greenbone-project/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	if err := server.Run(cfg); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
