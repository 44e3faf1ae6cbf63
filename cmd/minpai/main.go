package main

import (
	"os"

	"github.com/spf13/cobra"

	"minpai/internal/log"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "minpai",
	Short: "minpai card game AI",
	Long:  `minpai picks the AI's card in a game of minpai and serves that decision over HTTP.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, decideCmd, dealCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
