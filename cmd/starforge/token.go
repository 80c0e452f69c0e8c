package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"starsystem-server/internal/auth"
	"starsystem-server/internal/shared/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for the delete endpoint",
		Long:  "token signs an admin JWT with JWT_SECRET (read from the environment or .env) unless --secret is given.",
		Args:  cobra.NoArgs,
		RunE:  runToken,
	}
	cmd.Flags().String("subject", "admin", "Token subject")
	cmd.Flags().Duration("ttl", 0, "Token lifetime (default: $JWT_EXPIRATION_HOURS hours)")
	cmd.Flags().String("secret", "", "Signing secret (default: $JWT_SECRET)")
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	secret, _ := cmd.Flags().GetString("secret")

	_ = godotenv.Load()
	authCfg := config.LoadAuthConfig()
	if secret == "" {
		secret = authCfg.JWTSecret
	}
	if !cmd.Flags().Changed("ttl") {
		ttl = authCfg.TokenExpiration
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}

	token, err := auth.GenerateAdminToken(secret, subject, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
