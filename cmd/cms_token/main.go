// Command cms_token mints a bearer token for local development, signed with the
// JWT_SECRET the server would load.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/platform/config"
	"github.com/SscSPs/cheque_management_app/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	actorID := flag.String("actor", "", "actor id placed in the token subject")
	roleName := flag.String("role", string(domain.RoleMaker), "MAKER, CHECKER, APPROVER, FINANCE_MANAGER or ADMIN")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *actorID == "" {
		logger.Error("-actor is required")
		os.Exit(2)
	}
	role, err := domain.ParseRole(*roleName)
	if err != nil {
		logger.Error("Invalid role", slog.String("error", err.Error()))
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction {
		logger.Error("Refusing to mint tokens with IS_PRODUCTION set")
		os.Exit(1)
	}

	token, err := utils.GenerateActorJWT(domain.Actor{ID: *actorID, Role: role}, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
