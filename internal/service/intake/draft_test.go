package intake

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/stretchr/testify/assert"
)

func TestDraft_ChangeOpsID(t *testing.T) {
	history := []complaint.Complaint{
		priorComplaint("c1", "SPX-78291", "BCA", "1234567890", time.Now().UTC()),
	}

	t.Run("empty field is unknown", func(t *testing.T) {
		d := NewDraft(testRoster, history)
		d.ChangeOpsID("")
		assert.Equal(t, ValidityUnknown, d.Validity())
		assert.Empty(t, d.Suggestions())
	})

	t.Run("partial id is invalid and suggests", func(t *testing.T) {
		d := NewDraft(testRoster, history)
		d.ChangeOpsID("spx-78")
		assert.Equal(t, ValidityInvalid, d.Validity())
		assert.Equal(t, "SPX-78", d.OpsID())
		assert.Empty(t, d.FullName())
		assert.NotEmpty(t, d.Suggestions())
		assert.False(t, d.IsResolved())
	})

	t.Run("exact id resolves and autofills", func(t *testing.T) {
		d := NewDraft(testRoster, history)
		d.ChangeOpsID("spx-78291")
		assert.True(t, d.IsResolved())
		assert.True(t, d.Autofilled())
		assert.Equal(t, "Budi Santoso", d.FullName())
		assert.Equal(t, "BCA", d.BankName())
		assert.Equal(t, "1234567890", d.BankAccountNumber())
		assert.Empty(t, d.Suggestions())
	})

	t.Run("editing after resolve clears identity but keeps period", func(t *testing.T) {
		d := NewDraft(testRoster, history)
		d.SetPeriod("1-15 Oktober 2024")
		d.ChangeOpsID("SPX-78291")
		d.ChangeOpsID("SPX-7829")

		assert.Equal(t, ValidityInvalid, d.Validity())
		assert.False(t, d.Autofilled())
		assert.Empty(t, d.FullName())
		assert.Empty(t, d.BankName())
		assert.Empty(t, d.BankAccountNumber())
		assert.Empty(t, d.WhatsappNumber())
		assert.Equal(t, "1-15 Oktober 2024", d.Period())
	})

	t.Run("switching to another worker does not merge state", func(t *testing.T) {
		d := NewDraft(testRoster, history)
		d.ChangeOpsID("SPX-78291")
		d.ChangeOpsID("SPX-99012")

		assert.True(t, d.IsResolved())
		assert.False(t, d.Autofilled())
		assert.Equal(t, "Siti Aminah", d.FullName())
		assert.Empty(t, d.BankName())
	})
}

func TestDraft_SelectSuggestion(t *testing.T) {
	d := NewDraft(testRoster, nil)
	d.ChangeOpsID("siti")
	if assert.Len(t, d.Suggestions(), 1) {
		d.SelectSuggestion(d.Suggestions()[0])
	}

	assert.True(t, d.IsResolved())
	assert.Equal(t, "SPX-99012", d.OpsID())
	assert.Equal(t, "Siti Aminah", d.FullName())

	d.SetWhatsappNumber("081298765432")
	d.SetBankName("BRI")
	d.SetBankAccountNumber("5555")
	d.SetBankAccountName("SITI AMINAH")
	d.SetPeriod("16-30/31 September 2024")

	req := d.SubmitRequest()
	assert.Equal(t, complaint.SubmitRequest{
		OpsID:             "SPX-99012",
		WhatsappNumber:    "081298765432",
		BankAccountNumber: "5555",
		BankAccountName:   "SITI AMINAH",
		BankName:          "BRI",
		Period:            "16-30/31 September 2024",
	}, req)
}
