package intake

import (
	"strings"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
)

// Validity of the ops id field. Unknown means the field is empty.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	}
	return "unknown"
}

// Draft is the state of one complaint form while it is being filled in.
// Identity and bank fields always belong to the currently resolved ops id;
// editing the ops id throws them away.
type Draft struct {
	roster  []worker.Worker
	history []complaint.Complaint

	opsID             string
	fullName          string
	whatsappNumber    string
	bankAccountNumber string
	bankAccountName   string
	bankName          string
	period            string

	validity    Validity
	autofilled  bool
	suggestions []worker.Worker
}

func NewDraft(roster []worker.Worker, history []complaint.Complaint) *Draft {
	return &Draft{
		roster:      roster,
		history:     history,
		suggestions: []worker.Worker{},
	}
}

// ChangeOpsID handles an edit of the ops id field.
func (d *Draft) ChangeOpsID(raw string) {
	d.opsID = strings.ToUpper(raw)
	d.resetIdentity()
	d.suggestions = Suggest(d.roster, d.opsID)

	if w, ok := Resolve(d.roster, d.opsID); ok {
		d.apply(w)
		return
	}

	if raw == "" {
		d.validity = ValidityUnknown
	} else {
		d.validity = ValidityInvalid
	}
}

// SelectSuggestion resolves the draft to a worker picked from the suggestion list.
func (d *Draft) SelectSuggestion(w worker.Worker) {
	d.opsID = w.OpsID
	d.resetIdentity()
	d.apply(w)
}

func (d *Draft) resetIdentity() {
	d.fullName = ""
	d.whatsappNumber = ""
	d.bankAccountNumber = ""
	d.bankAccountName = ""
	d.bankName = ""
	d.autofilled = false
}

func (d *Draft) apply(w worker.Worker) {
	result := Autofill(w, d.history)
	d.opsID = result.OpsID
	d.fullName = result.FullName
	if result.Autofilled {
		d.whatsappNumber = result.WhatsappNumber
		d.bankAccountNumber = result.BankAccountNumber
		d.bankAccountName = result.BankAccountName
		d.bankName = result.BankName
	}
	d.autofilled = result.Autofilled
	d.validity = ValidityValid
	d.suggestions = []worker.Worker{}
}

func (d *Draft) SetWhatsappNumber(v string) { d.whatsappNumber = v }
func (d *Draft) SetBankAccountNumber(v string) { d.bankAccountNumber = v }
func (d *Draft) SetBankAccountName(v string) { d.bankAccountName = v }
func (d *Draft) SetBankName(v string) { d.bankName = v }
func (d *Draft) SetPeriod(v string) { d.period = v }

func (d *Draft) OpsID() string { return d.opsID }
func (d *Draft) FullName() string { return d.fullName }
func (d *Draft) WhatsappNumber() string { return d.whatsappNumber }
func (d *Draft) BankAccountNumber() string { return d.bankAccountNumber }
func (d *Draft) BankAccountName() string { return d.bankAccountName }
func (d *Draft) BankName() string { return d.bankName }
func (d *Draft) Period() string { return d.period }
func (d *Draft) Validity() Validity { return d.validity }
func (d *Draft) Autofilled() bool { return d.autofilled }
func (d *Draft) Suggestions() []worker.Worker { return d.suggestions }
func (d *Draft) IsResolved() bool { return d.validity == ValidityValid }

// SubmitRequest returns the shared form fields. Callers must check IsResolved first.
func (d *Draft) SubmitRequest() complaint.SubmitRequest {
	return complaint.SubmitRequest{
		OpsID:             d.opsID,
		WhatsappNumber:    d.whatsappNumber,
		BankAccountNumber: d.bankAccountNumber,
		BankAccountName:   d.bankAccountName,
		BankName:          d.bankName,
		Period:            d.period,
	}
}
