package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chinmay1088/nenrin/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExportData() *ExportData {
	return &ExportData{
		ExportDate: "2024-01-02 03:04:05",
		Network:    "devnet",
		Address:    "FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF",
		Lamports:   1_500_000_000,
		Balance:    "1.5 SOL",
		Transactions: []api.Signature{
			{Signature: "sigA", Slot: 42, BlockTime: time.Unix(1700000000, 0), ConfirmationStatus: "finalized", Memo: "[64] abc"},
			{Signature: "sigB", Slot: 41, ConfirmationStatus: "confirmed", Err: "InstructionError"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, testExportData()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Signature", "Slot", "Block Time", "Status", "Memo", "Error"}, records[0])
	assert.Equal(t, []string{"sigA", "42", "2023-11-14T22:13:20Z", "finalized", "[64] abc", ""}, records[1])
	assert.Equal(t, []string{"sigB", "41", "", "confirmed", "", "InstructionError"}, records[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, testExportData()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "devnet", decoded["network"])
	assert.Equal(t, "1.5 SOL", decoded["balance"])
	assert.EqualValues(t, 1_500_000_000, decoded["lamports"])
	assert.Len(t, decoded["transactions"], 2)
}

func TestWriteTXT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTXT(&buf, testExportData()))

	text := buf.String()
	assert.Contains(t, text, "Network: DEVNET")
	assert.Contains(t, text, "Balance: 1.5 SOL")
	assert.Contains(t, text, "Transactions (2):")
	assert.Contains(t, text, "1. sigA")
	assert.Contains(t, text, "Memo: [64] abc")
	assert.Contains(t, text, "Error: InstructionError")
}

func TestWriteExportFiles(t *testing.T) {
	oldCSV, oldJSON, oldTXT := csvFlag, jsonFlag, txtFlag
	t.Cleanup(func() {
		csvFlag, jsonFlag, txtFlag = oldCSV, oldJSON, oldTXT
	})
	csvFlag, jsonFlag, txtFlag = true, true, false

	dir := t.TempDir()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	files, err := writeExportFiles(testExportData(), dir, now)
	require.NoError(t, err)

	base := filepath.Join(dir, "nenrin_devnet_20240102_030405")
	assert.Equal(t, []string{base + ".csv", base + ".json"}, files)

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	_, err = os.Stat(base + ".txt")
	assert.True(t, os.IsNotExist(err))
}
