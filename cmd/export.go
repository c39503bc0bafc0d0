package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/nenrin/api"
	chain "github.com/chinmay1088/nenrin/chains/solana"
	"github.com/gagliardetto/solana-go"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [address]",
	Short: "Export balance and transaction history",
	Long: `Export the wallet balance and signature history of the current network.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format
  --txt        Export to txt format

Examples:
  nenrin export                    # Export to CSV (default)
  nenrin export --json             # Export to JSON
  nenrin export --csv --json --dir exports`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	csvFlag         bool
	jsonFlag        bool
	txtFlag         bool
	exportDirFlag   string
	exportLimitFlag int
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
	exportCmd.Flags().BoolVar(&txtFlag, "txt", false, "Export to txt format")
	exportCmd.Flags().StringVar(&exportDirFlag, "dir", ".", "directory to write export files to")
	exportCmd.Flags().IntVar(&exportLimitFlag, "limit", 0, "maximum signatures to export (0 exports the full history)")
}

// ExportData is the content of every export file.
type ExportData struct {
	ExportDate   string          `json:"export_date"`
	Network      string          `json:"network"`
	Address      string          `json:"address"`
	Lamports     uint64          `json:"lamports"`
	Balance      string          `json:"balance"`
	Transactions []api.Signature `json:"transactions"`
}

func runExport(cmd *cobra.Command, args []string) error {
	account, err := targetAccount(args)
	if err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !csvFlag && !jsonFlag && !txtFlag {
		csvFlag = true
	}

	env.printNetwork()
	env.printf("📊 Exporting data for %s...\n", account)

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(env.out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Collecting data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	exportData, err := collectExportData(cmd.Context(), env.client, account, bar)
	if err != nil {
		return fmt.Errorf("failed to collect data: %w", err)
	}

	bar.Set(70)
	bar.Describe("[cyan][2/2][reset] Writing export files...")
	if err := os.MkdirAll(exportDirFlag, 0700); err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	files, err := writeExportFiles(exportData, exportDirFlag, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}

	bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	env.printf("\n")

	env.printf("📁 Export completed successfully!\n")
	for _, f := range files {
		env.printf("   %s\n", f)
	}
	env.printf("📊 Balance: %s | Transactions: %d\n", exportData.Balance, len(exportData.Transactions))
	return nil
}

func collectExportData(ctx context.Context, client *api.Client, account solana.PublicKey, bar *progressbar.ProgressBar) (*ExportData, error) {
	lamports, err := client.GetBalance(ctx, account)
	if err != nil {
		return nil, err
	}
	bar.Set(20)

	history, err := client.GetSignatures(ctx, account, exportLimitFlag)
	if err != nil {
		return nil, err
	}
	bar.Set(60)

	return &ExportData{
		ExportDate:   time.Now().UTC().Format("2006-01-02 15:04:05"),
		Network:      client.Network(),
		Address:      account.String(),
		Lamports:     lamports,
		Balance:      chain.FormatBalance(lamports),
		Transactions: history,
	}, nil
}

// writeExportFiles writes one file per selected format and returns their paths.
func writeExportFiles(exportData *ExportData, exportDir string, now time.Time) ([]string, error) {
	base := filepath.Join(exportDir, fmt.Sprintf("nenrin_%s_%s", exportData.Network, now.Format("20060102_150405")))

	var files []string
	write := func(enabled bool, ext string, fn func(io.Writer, *ExportData) error) error {
		if !enabled {
			return nil
		}
		name := base + ext
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return err
		}
		if err := fn(f, exportData); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		files = append(files, name)
		return nil
	}

	if err := write(csvFlag, ".csv", writeCSV); err != nil {
		return files, fmt.Errorf("failed to write CSV export: %w", err)
	}
	if err := write(jsonFlag, ".json", writeJSON); err != nil {
		return files, fmt.Errorf("failed to write JSON export: %w", err)
	}
	if err := write(txtFlag, ".txt", writeTXT); err != nil {
		return files, fmt.Errorf("failed to write txt export: %w", err)
	}

	return files, nil
}

func writeCSV(w io.Writer, exportData *ExportData) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Signature", "Slot", "Block Time", "Status", "Memo", "Error"}); err != nil {
		return err
	}

	for _, tx := range exportData.Transactions {
		blockTime := ""
		if !tx.BlockTime.IsZero() {
			blockTime = tx.BlockTime.UTC().Format(time.RFC3339)
		}
		if err := writer.Write([]string{
			tx.Signature,
			strconv.FormatUint(tx.Slot, 10),
			blockTime,
			tx.ConfirmationStatus,
			tx.Memo,
			tx.Err,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeJSON(w io.Writer, exportData *ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData)
}

func writeTXT(w io.Writer, exportData *ExportData) error {
	var content strings.Builder
	content.WriteString("NENRIN WALLET EXPORT\n")
	content.WriteString("====================\n\n")
	content.WriteString(fmt.Sprintf("Export Date: %s\n", exportData.ExportDate))
	content.WriteString(fmt.Sprintf("Network: %s\n", strings.ToUpper(exportData.Network)))
	content.WriteString(fmt.Sprintf("Address: %s\n", exportData.Address))
	content.WriteString(fmt.Sprintf("Balance: %s\n", exportData.Balance))

	content.WriteString(fmt.Sprintf("\nTransactions (%d):\n", len(exportData.Transactions)))
	for i, tx := range exportData.Transactions {
		content.WriteString(fmt.Sprintf("  %d. %s\n", i+1, tx.Signature))
		content.WriteString(fmt.Sprintf("     Slot: %d | Status: %s\n", tx.Slot, tx.ConfirmationStatus))
		if tx.Memo != "" {
			content.WriteString(fmt.Sprintf("     Memo: %s\n", tx.Memo))
		}
		if tx.Failed() {
			content.WriteString(fmt.Sprintf("     Error: %s\n", tx.Err))
		}
	}

	_, err := io.WriteString(w, content.String())
	return err
}
