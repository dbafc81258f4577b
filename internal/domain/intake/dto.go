package intake

import "github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"

// AutofillResult is what the form receives once an ops id resolves. Bank and
// phone fields are only set when Autofilled is true.
type AutofillResult struct {
	OpsID             string `json:"ops_id"`
	FullName          string `json:"full_name"`
	WhatsappNumber    string `json:"whatsapp_number"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
	BankName          string `json:"bank_name"`
	Autofilled        bool   `json:"autofilled"`
}

type SuggestionsResponse struct {
	Query       string                  `json:"query"`
	Suggestions []worker.WorkerResponse `json:"suggestions"`
}

type EvidenceUploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
