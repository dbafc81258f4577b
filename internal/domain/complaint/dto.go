package complaint

import (
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/validator"
)

// Banks offered by the complaint forms.
var Banks = []string{"BCA", "MANDIRI", "BNI", "BRI", "SEABANK", "LAINNYA"}

// SubmitRequest holds the fields both complaint forms share. The full name is
// not accepted from the client; it is taken from the roster entry.
type SubmitRequest struct {
	OpsID             string `json:"ops_id"`
	WhatsappNumber    string `json:"whatsapp_number"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
	BankName          string `json:"bank_name"`
	Period            string `json:"period"`
}

func (r *SubmitRequest) validate(errs *validator.ValidationErrors) {
	errs.Required("ops_id", r.OpsID)

	errs.Required("whatsapp_number", r.WhatsappNumber)
	if !validator.IsEmpty(r.WhatsappNumber) && !validator.IsValidPhoneNumber(r.WhatsappNumber) {
		errs.Add("whatsapp_number", "whatsapp_number must be a valid Indonesian phone number")
	}

	errs.Required("bank_account_number", r.BankAccountNumber)
	if !validator.IsEmpty(r.BankAccountNumber) && !validator.IsNumeric(r.BankAccountNumber) {
		errs.Add("bank_account_number", "bank_account_number must contain digits only")
	}

	errs.Required("bank_account_name", r.BankAccountName)

	errs.Required("bank_name", r.BankName)
	if !validator.IsEmpty(r.BankName) && !validator.IsInSlice(r.BankName, Banks) {
		errs.Add("bank_name", "bank_name must be one of BCA, MANDIRI, BNI, BRI, SEABANK, LAINNYA")
	}

	errs.Required("period", r.Period)
}

type SubmitMissingSalaryRequest struct {
	SubmitRequest
	AlreadyFilledLink string `json:"already_filled_link"`
}

func (r *SubmitMissingSalaryRequest) Validate() error {
	var errs validator.ValidationErrors
	r.SubmitRequest.validate(&errs)

	if !validator.IsInSlice(r.AlreadyFilledLink, []string{FilledLinkSudah, FilledLinkBelum}) {
		errs.Add("already_filled_link", "already_filled_link must be SUDAH or BELUM")
	}

	return errs.Err()
}

type SubmitUnderpaidSalaryRequest struct {
	SubmitRequest
	ReceivedAmount string `json:"received_amount"`
	EvidenceURL    string `json:"evidence_url,omitempty"`
}

func (r *SubmitUnderpaidSalaryRequest) Validate() error {
	var errs validator.ValidationErrors
	r.SubmitRequest.validate(&errs)

	errs.Required("received_amount", r.ReceivedAmount)
	if !validator.IsEmpty(r.ReceivedAmount) {
		if _, ok := validator.ParseAmount(r.ReceivedAmount); !ok {
			errs.Add("received_amount", "received_amount must be a non-negative number")
		}
	}

	return errs.Err()
}

// ComplaintFilter selects complaints for the admin list. An empty Type or
// "ALL" matches every variant.
type ComplaintFilter struct {
	Type   string `json:"type"`
	Search string `json:"search"`
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	errs.Required("status", r.Status)
	if !validator.IsEmpty(r.Status) {
		if _, ok := ParseStatus(r.Status); !ok {
			errs.Add("status", "status must be one of PENDING, PROSES, SELESAI, DITOLAK, ESKALASI")
		}
	}

	return errs.Err()
}

type StatsResponse struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Processing   int `json:"processing"`
	Resolved     int `json:"resolved"`
	Rejected     int `json:"rejected"`
	Escalated    int `json:"escalated"`
	TotalWorkers int `json:"total_workers"`
}

// ExportRequest selects complaints to export. No ids means the whole store.
type ExportRequest struct {
	IDs []string `json:"ids"`
}

type ContactResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

type ClipboardResponse struct {
	Count int    `json:"count"`
	Text  string `json:"text"`
}

type PeriodOptionsResponse struct {
	Periods []string `json:"periods"`
}
