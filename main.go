package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-maps-review-scraper/cli"
)

func main() {
	Init()
}

func Init() {
	var rootCmd = &cobra.Command{
		Use:   "reviewscrape",
		Short: "Collect Google Maps restaurant reviews through a hosted scraping actor",
	}
	cli.RegisterCommands(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
