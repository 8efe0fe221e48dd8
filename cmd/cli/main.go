package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
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
		Use:   "treasury-cli",
		Short: "Treasury CLI tool",
		Long:  `A command line interface for interacting with the treasury API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the treasury API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Accrual commands
	accrueCmd := &cobra.Command{
		Use:   "accrue",
		Short: "Run daily interest accruals",
	}

	var accrualDate string

	advancesCmd := &cobra.Command{
		Use:   "advances",
		Short: "Run the advance accrual",
		Run: func(cmd *cobra.Command, args []string) {
			runAccrual("advances", accrualDate)
		},
	}
	advancesCmd.Flags().StringVar(&accrualDate, "date", "", "Accrual date (YYYY-MM-DD, default today)")

	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Run the loan accrual",
		Run: func(cmd *cobra.Command, args []string) {
			runAccrual("loans", accrualDate)
		},
	}
	loansCmd.Flags().StringVar(&accrualDate, "date", "", "Accrual date (YYYY-MM-DD, default today)")

	accrueCmd.AddCommand(advancesCmd)
	accrueCmd.AddCommand(loansCmd)
	rootCmd.AddCommand(accrueCmd)

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Treasury reports",
	}

	var periodStart, periodEnd string

	marginCmd := &cobra.Command{
		Use:   "margin [css-id]",
		Short: "Margin report for one CSS",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showMargin(args[0], periodStart, periodEnd)
		},
	}
	marginCmd.Flags().StringVar(&periodStart, "start", "", "Period start (YYYY-MM-DD)")
	marginCmd.Flags().StringVar(&periodEnd, "end", "", "Period end (YYYY-MM-DD)")

	var horizonDays int

	liquidityCmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Cash-needs projection",
		Run: func(cmd *cobra.Command, args []string) {
			showLiquidity(horizonDays)
		},
	}
	liquidityCmd.Flags().IntVar(&horizonDays, "horizon", -1, "Horizon in days (default server-side)")

	reportCmd.AddCommand(marginCmd)
	reportCmd.AddCommand(liquidityCmd)
	rootCmd.AddCommand(reportCmd)

	// Advance commands
	advanceCmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance inspection",
	}

	var limit, offset int

	interestCmd := &cobra.Command{
		Use:   "interest [advance-id]",
		Short: "List an advance's daily interest entries",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showInterest(args[0], limit, offset)
		},
	}
	interestCmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to return")
	interestCmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")

	advanceCmd.AddCommand(interestCmd)
	rootCmd.AddCommand(advanceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runAccrual(kind, date string) {
	payload := map[string]string{}
	if date != "" {
		payload["date"] = date
	}
	body, _ := json.Marshal(payload)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/accruals/"+kind+"/run", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	result := decodeOrDie(resp)

	fmt.Printf("Accrual run completed\n")
	fmt.Printf("Kind: %v\n", result["kind"])
	fmt.Printf("Date: %v\n", result["date"])
	fmt.Printf("Processed: %v\n", result["processed"])
	fmt.Printf("Total interest: %v\n", result["total_interest"])
}

func showMargin(cssID, start, end string) {
	query := url.Values{}
	if start != "" {
		query.Set("period_start", start)
	}
	if end != "" {
		query.Set("period_end", end)
	}

	endpoint := baseURL + "/api/v1/reports/css/" + cssID + "/margin"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	result := decodeOrDie(resp)

	fmt.Printf("Margin report for %v (%v)\n", result["css_name"], result["css_code"])
	fmt.Printf("Period: %v to %v (%v days)\n", result["period_start"], result["period_end"], result["period_days"])
	fmt.Printf("Interest revenue: %v\n", result["interest_revenue"])
	fmt.Printf("Estimated funding cost: %v\n", result["estimated_funding_cost"])
	fmt.Printf("Net margin: %v\n", result["net_margin"])
	fmt.Printf("Margin rate: %v%%\n", result["margin_rate"])
}

func showLiquidity(horizon int) {
	endpoint := baseURL + "/api/v1/reports/liquidity"
	if horizon >= 0 {
		endpoint += fmt.Sprintf("?horizon_days=%d", horizon)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	result := decodeOrDie(resp)

	fmt.Printf("Liquidity projection %v to %v\n", result["window_start"], result["window_end"])
	fmt.Printf("Total balance: %v\n", result["total_balance"])
	fmt.Printf("Total disbursements: %v\n", result["total_disbursements"])
	fmt.Printf("Net need: %v\n", result["net_need"])
	fmt.Printf("Status: %v\n", result["status"])
}

func showInterest(advanceID string, limit, offset int) {
	endpoint := fmt.Sprintf("%s/api/v1/advances/%s/interest?limit=%d&offset=%d", baseURL, advanceID, limit, offset)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	result := decodeOrDie(resp)

	entries, _ := result["entries"].([]any)
	fmt.Printf("Interest entries for advance %s (%d shown)\n", advanceID, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		fmt.Printf("%v  interest=%v  cumulative=%v\n", entry["entry_date"], entry["interest"], entry["cumulative"])
	}
}

func decodeOrDie(resp *http.Response) map[string]any {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}
