package identity

import (
	"fmt"

	"fifty3/config"

	"golang.org/x/crypto/bcrypt"
)

// VerifyDemoPassword checks a password against the configured demo hash.
// This is the development stand-in for Firebase Auth (the original app
// shipped a fake API where every trainer shared one demo password); it is
// disabled unless DEMO_PASSWORD_HASH is set.
func VerifyDemoPassword(password string) error {
	hash := config.AppConfig.DemoPasswordHash
	if hash == "" {
		return fmt.Errorf("demo login is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("wrong email or password")
	}
	return nil
}
