package complaint

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Type discriminates the two complaint forms. Values are the persisted wire values.
type Type string

const (
	TypeMissingSalary   Type = "BELUM_TURUN"
	TypeUnderpaidSalary Type = "KURANG_GAJI"
)

// ParseType accepts either the wire value or the English name.
func ParseType(s string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(TypeMissingSalary), "MISSING_SALARY":
		return TypeMissingSalary, true
	case string(TypeUnderpaidSalary), "UNDERPAID_SALARY":
		return TypeUnderpaidSalary, true
	}
	return "", false
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROSES"
	StatusResolved   Status = "SELESAI"
	StatusRejected   Status = "DITOLAK"
	StatusEscalated  Status = "ESKALASI"
)

var statusNames = map[string]Status{
	"PENDING":    StatusPending,
	"PROCESSING": StatusProcessing,
	"RESOLVED":   StatusResolved,
	"REJECTED":   StatusRejected,
	"ESCALATED":  StatusEscalated,
}

// ParseStatus accepts either the wire value or the English name.
func ParseStatus(s string) (Status, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if st, ok := statusNames[v]; ok {
		return st, true
	}
	st := Status(v)
	if st.IsValid() {
		return st, true
	}
	return "", false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusResolved, StatusRejected, StatusEscalated:
		return true
	}
	return false
}

const (
	FilledLinkSudah = "SUDAH"
	FilledLinkBelum = "BELUM"
)

type MissingSalaryDetail struct {
	AlreadyFilledLink string
}

type UnderpaidSalaryDetail struct {
	ReceivedAmount string
	EvidenceURL    string
}

// Complaint is a submitted complaint. Exactly one of MissingSalary or
// UnderpaidSalary is set, matching Type. Only Status changes after creation.
type Complaint struct {
	ID                string
	Type              Type
	Status            Status
	Timestamp         time.Time
	OpsID             string
	FullName          string
	WhatsappNumber    string
	BankAccountNumber string
	BankAccountName   string
	BankName          string
	Period            string

	MissingSalary   *MissingSalaryDetail
	UnderpaidSalary *UnderpaidSalaryDetail
}

// Match calls the function for the complaint's variant. Both cases are
// mandatory, so a new variant breaks every call site until handled.
func Match[R any](
	c Complaint,
	missing func(c Complaint, d MissingSalaryDetail) R,
	underpaid func(c Complaint, d UnderpaidSalaryDetail) R,
) R {
	switch c.Type {
	case TypeMissingSalary:
		var d MissingSalaryDetail
		if c.MissingSalary != nil {
			d = *c.MissingSalary
		}
		return missing(c, d)
	case TypeUnderpaidSalary:
		var d UnderpaidSalaryDetail
		if c.UnderpaidSalary != nil {
			d = *c.UnderpaidSalary
		}
		return underpaid(c, d)
	}
	panic(fmt.Sprintf("complaint %s has unknown type %q", c.ID, c.Type))
}

// wireComplaint is the flat JSON shape shared by the persisted blob and the API.
type wireComplaint struct {
	ID                string    `json:"id"`
	Type              Type      `json:"type"`
	Status            Status    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	OpsID             string    `json:"opsId"`
	FullName          string    `json:"fullName"`
	WhatsappNumber    string    `json:"whatsappNumber"`
	BankAccountNumber string    `json:"bankAccountNumber"`
	BankAccountName   string    `json:"bankAccountName"`
	BankName          string    `json:"bankName"`
	Period            string    `json:"period"`
	AlreadyFilledLink *string   `json:"alreadyFilledLink,omitempty"`
	ReceivedAmount    *string   `json:"receivedAmount,omitempty"`
	EvidenceURL       *string   `json:"evidenceUrl,omitempty"`
}

func (c Complaint) MarshalJSON() ([]byte, error) {
	w := wireComplaint{
		ID:                c.ID,
		Type:              c.Type,
		Status:            c.Status,
		Timestamp:         c.Timestamp.UTC(),
		OpsID:             c.OpsID,
		FullName:          c.FullName,
		WhatsappNumber:    c.WhatsappNumber,
		BankAccountNumber: c.BankAccountNumber,
		BankAccountName:   c.BankAccountName,
		BankName:          c.BankName,
		Period:            c.Period,
	}
	switch c.Type {
	case TypeMissingSalary:
		if c.MissingSalary != nil {
			w.AlreadyFilledLink = &c.MissingSalary.AlreadyFilledLink
		}
	case TypeUnderpaidSalary:
		if c.UnderpaidSalary != nil {
			w.ReceivedAmount = &c.UnderpaidSalary.ReceivedAmount
			if c.UnderpaidSalary.EvidenceURL != "" {
				w.EvidenceURL = &c.UnderpaidSalary.EvidenceURL
			}
		}
	default:
		return nil, fmt.Errorf("complaint %s: unknown type %q", c.ID, c.Type)
	}
	return json.Marshal(w)
}

func (c *Complaint) UnmarshalJSON(data []byte) error {
	var w wireComplaint
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = Complaint{
		ID:                w.ID,
		Type:              w.Type,
		Status:            w.Status,
		Timestamp:         w.Timestamp,
		OpsID:             w.OpsID,
		FullName:          w.FullName,
		WhatsappNumber:    w.WhatsappNumber,
		BankAccountNumber: w.BankAccountNumber,
		BankAccountName:   w.BankAccountName,
		BankName:          w.BankName,
		Period:            w.Period,
	}

	switch w.Type {
	case TypeMissingSalary:
		c.MissingSalary = &MissingSalaryDetail{AlreadyFilledLink: deref(w.AlreadyFilledLink)}
	case TypeUnderpaidSalary:
		c.UnderpaidSalary = &UnderpaidSalaryDetail{
			ReceivedAmount: deref(w.ReceivedAmount),
			EvidenceURL:    deref(w.EvidenceURL),
		}
	default:
		return fmt.Errorf("complaint %s: unknown type %q", w.ID, w.Type)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
