package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anticipos-cli",
		Short: "Anticipos CLI tool",
		Long:  `A command line interface for interacting with the Anticipos API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Anticipos API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	ledgerCmd := &cobra.Command{
		Use:   "ledger [kind] [partner-id]",
		Short: "Show a partner's advance ledger",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			showLedger(args[0], args[1])
		},
	}

	var (
		advKind        string
		advAmount      string
		advBank        string
		advDescription string
		advDate        string
	)

	advanceCmd := &cobra.Command{
		Use:   "advance [kind] [partner-id]",
		Short: "Record an advance entry for a partner",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			createAdvance(args[0], args[1], map[string]string{
				"kind":        advKind,
				"amount":      advAmount,
				"bank":        advBank,
				"description": advDescription,
				"date":        advDate,
			})
		},
	}

	advanceCmd.Flags().StringVar(&advKind, "kind", "CREDIT", "Entry kind: CREDIT or DEBIT")
	advanceCmd.Flags().StringVar(&advAmount, "amount", "", "Entry amount, e.g. 150.00")
	advanceCmd.Flags().StringVar(&advBank, "bank", "", "Bank the movement went through")
	advanceCmd.Flags().StringVar(&advDescription, "description", "", "Entry description")
	advanceCmd.Flags().StringVar(&advDate, "date", time.Now().Format("2006-01-02"), "Entry date (YYYY-MM-DD)")
	_ = advanceCmd.MarkFlagRequired("amount")
	_ = advanceCmd.MarkFlagRequired("bank")
	_ = advanceCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(advanceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showLedger(kind, partnerID string) {
	client := &http.Client{Timeout: timeout}
	url := fmt.Sprintf("%s/api/v1/partners/%s/%s/ledger", baseURL, kind, partnerID)

	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Ledger fetch FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total credits:     %v\n", result["total_credits"])
	fmt.Printf("Total debits:      %v\n", result["total_debits"])
	fmt.Printf("Available balance: %v\n", result["available_balance"])

	if entries, ok := result["entries"].([]any); ok {
		fmt.Printf("Entries:           %d\n", len(entries))
	}
}

func createAdvance(kind, partnerID string, fields map[string]string) {
	payload, err := json.Marshal(fields)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	url := fmt.Sprintf("%s/api/v1/partners/%s/%s/advances", baseURL, kind, partnerID)

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Advance creation FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Advance recorded\n")
	fmt.Printf("ID:     %v\n", result["id"])
	fmt.Printf("Kind:   %v\n", result["kind"])
	fmt.Printf("Amount: %v\n", result["amount"])
}
