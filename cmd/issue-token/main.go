// Command issue-token mints an access token for a user so the API can be
// exercised locally without the account service.
//
// Usage:
//
//	issue-token --user=<uuid> [--role=STUDENT]
//
// Uses the JWT secret and issuer from the application config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/auth"
	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user ID to put in the token subject")
	roleFlag := flag.String("role", string(domain.UserRoleStudent), "role claim")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--role=STUDENT]")
		os.Exit(1)
	}

	role := domain.UserRole(*roleFlag)
	if !role.IsValid() {
		log.Fatalf("unknown role %q", *roleFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := mgr.GenerateAccessToken(userID, role)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
