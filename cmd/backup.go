package cmd

import (
	"fmt"

	"github.com/chinmay1088/nenrin/crypto"
	"github.com/chinmay1088/nenrin/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

const (
	defaultBackupPath = "wallet-backup.json"
	minPasswordLength = 8
)

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Write an encrypted copy of the key file",
	Long: `Encrypt the wallet secret key with a password (scrypt + AES-256-GCM) and
write it to a backup file. The key file itself is left unchanged.

Examples:
  nenrin backup                    # Writes wallet-backup.json
  nenrin backup ~/safe/nenrin.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Recreate the key file from an encrypted backup",
	Long: `Decrypt a backup written by 'nenrin backup' and recreate the key file.
An existing key file is never overwritten.

Example:
  nenrin restore wallet-backup.json --keypair wallet-keypair.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runBackup(cmd *cobra.Command, args []string) error {
	backupPath := defaultBackupPath
	if len(args) == 1 {
		backupPath = args[0]
	}

	key, err := wallet.Load(keypairFlag)
	if err != nil {
		return fmt.Errorf("%w. Run 'nenrin init' to create a wallet", err)
	}

	password, err := readSecret("Enter a password for the backup: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	confirmPassword, err := readSecret("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println("Encrypting wallet...")
	vault, err := crypto.NewVault(key, password)
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := crypto.SaveVault(backupPath, vault); err != nil {
		return err
	}

	fmt.Println("✅ Backup written successfully!")
	fmt.Printf("🔑 Address: %s\n", key.PublicKey())
	fmt.Printf("📁 Backup file: %s\n", backupPath)
	fmt.Println()
	fmt.Println("⚠️  The backup is only as safe as its password. Store both separately.")
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	if wallet.Exists(keypairFlag) {
		return fmt.Errorf("key file %s already exists. Move it away or choose another --keypair", keypairFlag)
	}

	vault, err := crypto.LoadVault(args[0])
	if err != nil {
		return err
	}

	password, err := readSecret("Enter the backup password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println("Decrypting backup...")
	secret, err := vault.Decrypt(password)
	if err != nil {
		return fmt.Errorf("failed to restore wallet: %w", err)
	}

	key := solana.PrivateKey(secret)
	if err := wallet.Save(keypairFlag, key); err != nil {
		return fmt.Errorf("failed to restore wallet: %w", err)
	}

	fmt.Println("✅ Wallet restored successfully!")
	fmt.Printf("🔑 Address: %s\n", key.PublicKey())
	fmt.Printf("📁 Key file: %s\n", keypairFlag)
	return nil
}
