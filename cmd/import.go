package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chinmay1088/nenrin/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	derivationPathFlag string
	passphraseFlag     bool
)

var importCmd = &cobra.Command{
	Use:   "import [mnemonic|base58]",
	Short: "Create the key file from an existing wallet",
	Long: `Create the wallet key file from a secret you already have.

Sources:
  mnemonic  - BIP-39 recovery phrase, derived at m/44'/501'/0'/0' by default
  base58    - 64-byte secret key as exported by browser wallets

The secret is read from the terminal without echo. An existing key file is
never overwritten.

Examples:
  nenrin import mnemonic
  nenrin import mnemonic --path "m/44'/501'/1'/0'"
  nenrin import base58 --keypair imported.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"mnemonic", "base58"},
	RunE:      runImport,
}

func init() {
	importCmd.Flags().StringVar(&derivationPathFlag, "path", wallet.SolDerivationPath, "derivation path for mnemonic import")
	importCmd.Flags().BoolVar(&passphraseFlag, "passphrase", false, "prompt for a BIP-39 passphrase")
}

func runImport(cmd *cobra.Command, args []string) error {
	if wallet.Exists(keypairFlag) {
		return fmt.Errorf("key file %s already exists. Move it away or choose another --keypair", keypairFlag)
	}

	var (
		key solana.PrivateKey
		err error
	)

	switch strings.ToLower(args[0]) {
	case "mnemonic":
		key, err = importMnemonic()
	case "base58":
		key, err = importBase58()
	default:
		return fmt.Errorf("invalid source: %s. Use 'mnemonic' or 'base58'", args[0])
	}
	if err != nil {
		return err
	}

	if err := wallet.Save(keypairFlag, key); err != nil {
		return fmt.Errorf("failed to import wallet: %w", err)
	}

	fmt.Println("✅ Wallet imported successfully!")
	fmt.Printf("🔑 Address: %s\n", key.PublicKey())
	fmt.Printf("📁 Key file: %s\n", keypairFlag)
	return nil
}

func importMnemonic() (solana.PrivateKey, error) {
	fmt.Println("📝 Import Wallet from Recovery Phrase")
	fmt.Println()

	mnemonic, err := readSecret("Enter recovery phrase: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read mnemonic: %w", err)
	}

	var passphrase string
	if passphraseFlag {
		passphrase, err = readSecret("Enter passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
	}

	return wallet.FromMnemonic(mnemonic, passphrase, derivationPathFlag)
}

func importBase58() (solana.PrivateKey, error) {
	secret, err := readSecret("Enter base58 secret key: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read secret key: %w", err)
	}

	return wallet.FromBase58(secret)
}

var stdinReader = bufio.NewReader(os.Stdin)

// readSecret prompts without echo on a terminal and falls back to a plain
// line read when stdin is piped.
func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := stdinReader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Print(prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
