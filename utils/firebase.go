// utils/firebase.go
package utils

import (
	"context"
	"fmt"
	"log"

	"fifty3/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthClient verifies ID tokens issued by Firebase Auth.
var AuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client. Skipped when no
// credentials file is configured; login then falls back to the demo check.
func FirebaseInit() {
	if config.AppConfig.FirebaseCredentialsFile == "" {
		log.Println("firebase: no credentials file configured, skipping init")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}

// VerifyIDToken checks a Firebase ID token and returns the verified email.
func VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if AuthClient == nil {
		return "", fmt.Errorf("firebase auth is not configured")
	}
	token, err := AuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("ID token carries no email claim")
	}
	return email, nil
}
