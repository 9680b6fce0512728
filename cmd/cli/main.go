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
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simplebank-cli",
		Short: "Simplebank CLI tool",
		Long:  `A command line interface for interacting with the Simplebank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Simplebank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("SIMPLEBANK_TOKEN"), "Bearer token for authenticated calls")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check that every account balance agrees with the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(ledgerCmd)

	// Transfer command
	var (
		fromAccount int64
		toAccount   int64
		amount      string
		description string
	)

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two accounts",
		Run: func(cmd *cobra.Command, args []string) {
			createTransfer(fromAccount, toAccount, amount, description)
		},
	}

	transferCmd.Flags().Int64Var(&fromAccount, "from", 0, "Source account number")
	transferCmd.Flags().Int64Var(&toAccount, "to", 0, "Destination account number")
	transferCmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	transferCmd.Flags().StringVar(&description, "description", "", "Optional description")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(transferCmd)

	// Last transactions command
	var lastN int

	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Show the most recent transactions",
		Run: func(cmd *cobra.Command, args []string) {
			lastTransactions(lastN)
		},
	}

	lastCmd.Flags().IntVar(&lastN, "n", 5, "Number of transactions to show")
	rootCmd.AddCommand(lastCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, body any) ([]byte, int) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return respBody, resp.StatusCode
}

func checkConsistency() {
	body, status := doRequest(http.MethodGet, "/api/v1/ledger/consistency", nil)

	if status != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}
	fmt.Printf("Status: %s\n", result["status"])
}

func createTransfer(from, to int64, amount, description string) {
	payload := map[string]any{
		"from_account": from,
		"to_account":   to,
		"amount":       amount,
	}
	if description != "" {
		payload["description"] = description
	}

	body, status := doRequest(http.MethodPost, "/api/v1/transactions", payload)

	if status != http.StatusCreated {
		fmt.Printf("Transfer FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	fmt.Printf("Transfer created\n%s\n", string(body))
}

func lastTransactions(n int) {
	body, status := doRequest(http.MethodGet, fmt.Sprintf("/api/v1/transactions/last?n=%d", n), nil)

	if status != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	fmt.Println(string(body))
}
