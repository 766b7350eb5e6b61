package cli

import (
	"fmt"

	"github.com/wanderpair/wanderpair/internal/db"
	"github.com/wanderpair/wanderpair/internal/security"
	"github.com/wanderpair/wanderpair/internal/services"
	"github.com/wanderpair/wanderpair/internal/storage"
)

// RunResetPasswordCommand replaces a pair's shared password with a fresh
// temporary one and prints it. The escape hatch for couples who forgot
// their own gate; no identity check beyond knowing both nicknames.
func RunResetPasswordCommand(dbPath string, myName string, partnerName string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	adapter := storage.NewDatabaseAdapter(db.NewKVRepository(database))
	directory := services.NewAccountDirectory(adapter)

	temporaryPassword, err := generateTemporaryPassword(10)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := directory.ResetPassword(myName, partnerName, temporaryPassword); err != nil {
		return fmt.Errorf("reset shared password: %w", err)
	}

	fmt.Println("✅ Shared password reset")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("Log in with it and pick a new one together.")

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < services.MinPasswordLength {
		length = services.MinPasswordLength
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
