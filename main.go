package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"tanpura-fetch/catalog"
	"tanpura-fetch/config"
	"tanpura-fetch/downloader"
	"tanpura-fetch/filesystem"
	"tanpura-fetch/report"
	"tanpura-fetch/runner"
)

func main() {
	cfg := config.Default()
	fileManager := filesystem.NewManager()
	fetcher := downloader.NewDownloader(&http.Client{Timeout: cfg.Timeout}, fileManager, cfg.ChunkSize)

	r := runner.New(catalog.Entries(), fetcher, fileManager, report.NewPrinter(os.Stdout), cfg.OutputDir)
	if _, err := r.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, report.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
