package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"encoding/csv"

	"paydash/config"
	"paydash/payoutapi"
	"paydash/session"
)

// One-off loader: registers beneficiaries from a CSV export against the
// payout backend. Tokens come from the environment because this runs
// outside the dashboard's login flow.
func main() {
	config.LoadConfig()

	token := os.Getenv("PAYOUT_TOKEN")
	refreshToken := os.Getenv("PAYOUT_REFRESH_TOKEN")
	if token == "" {
		log.Fatal("PAYOUT_TOKEN is required")
	}

	sess := session.New("import-script", nil)
	if err := sess.Set(token, refreshToken, nil); err != nil {
		log.Fatalf("Failed to prepare session: %v", err)
	}

	cfg := config.AppConfig
	client := payoutapi.NewClient(cfg.PayoutApiURL, cfg.PayoutApiVersion, cfg.PayoutApiTimeout, sess)

	fileName := "Beneficiaries.csv"
	if len(os.Args) > 1 {
		fileName = os.Args[1]
	}

	// Open CSV file
	file, err := os.Open(fileName)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Read all records
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	imported := 0
	failed := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		req := &payoutapi.AddBeneficiaryRequest{
			BeneficiaryName:          getField(row, headerIndex, "beneficiaryName"),
			BeneficiaryMobileNumber:  getField(row, headerIndex, "beneficiaryMobileNumber"),
			BeneficiaryEmail:         getField(row, headerIndex, "beneficiaryEmail"),
			BeneficiaryPanNumber:     getField(row, headerIndex, "beneficiaryPanNumber"),
			BeneficiaryAadhaarNumber: getField(row, headerIndex, "beneficiaryAadhaarNumber"),
			BeneficiaryAddress:       getField(row, headerIndex, "beneficiaryAddress"),
			BeneficiaryBankName:      getField(row, headerIndex, "beneficiaryBankName"),
			BeneficiaryAccountNumber: getField(row, headerIndex, "beneficiaryAccountNumber"),
			BeneficiaryIfscCode:      getField(row, headerIndex, "beneficiaryIfscCode"),
			BeneType:                 getField(row, headerIndex, "beneType"),
			Latitude:                 parseFloat(getField(row, headerIndex, "latitude")),
			Longitude:                parseFloat(getField(row, headerIndex, "longitude")),
		}

		// Skip if no name or account number
		if req.BeneficiaryName == "" || req.BeneficiaryAccountNumber == "" {
			skipped++
			continue
		}
		if req.BeneType == "" {
			req.BeneType = "vendor"
		}

		if _, err := client.AddBeneficiary(req); err != nil {
			log.Printf("Error adding beneficiary %s (account=%s): %v",
				req.BeneficiaryName, req.BeneficiaryAccountNumber, err)
			failed++
			continue
		}
		imported++
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Imported: %d", imported)
	log.Printf("Failed: %d", failed)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", imported+failed+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
