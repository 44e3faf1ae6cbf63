package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minpai/internal/app"
	"minpai/internal/config"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "issue a bearer token for the decision API",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg := src.Config()
		token, err := app.NewTokenService(cfg.HTTP.JwtSecret, cfg.App.Name).Issue(tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject, usually the calling service")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", app.DefaultTokenTTL, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}
