// Command tokengen prints a signed access token for local development.
//
//	go run ./cmd/tokengen -user 7f0c...        # token for an existing user id
//	go run ./cmd/tokengen                      # token for a fresh random id
//
// The secret and lifetime come from the same PLANWISE_AUTH_* settings the
// server reads.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/planwise/planwise-api/internal/config"
	"github.com/planwise/planwise-api/internal/service/auth"
	"github.com/spf13/viper"
)

func main() {
	_ = godotenv.Load()

	userFlag := flag.String("user", "", "user id to issue the token for (default: random)")
	flag.Parse()

	if err := run(os.Stdout, *userFlag); err != nil {
		fmt.Fprintln(os.Stderr, "tokengen:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, user string) error {
	cfg, err := loadAuthConfig()
	if err != nil {
		return err
	}

	userID := uuid.New()
	if user != "" {
		userID, err = uuid.Parse(user)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", user, err)
		}
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := jwtService.GenerateToken(context.Background(), userID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "user_id: %s\ntoken:   %s\n", userID, token)
	return err
}

// loadAuthConfig reads only the auth settings, so the tool works without
// database or model credentials.
func loadAuthConfig() (config.AuthConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetDefault("auth_token_lifetime_minutes", 60)
	if err := v.BindEnv("auth_jwt_secret"); err != nil {
		return config.AuthConfig{}, err
	}
	if err := v.BindEnv("auth_token_lifetime_minutes"); err != nil {
		return config.AuthConfig{}, err
	}

	cfg := config.AuthConfig{
		JWTSecret:            v.GetString("auth_jwt_secret"),
		TokenLifetimeMinutes: v.GetInt("auth_token_lifetime_minutes"),
	}
	if len(cfg.JWTSecret) < 32 {
		return cfg, fmt.Errorf("%s_AUTH_JWT_SECRET must be at least 32 characters", config.EnvPrefix)
	}
	return cfg, nil
}
