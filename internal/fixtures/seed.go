package fixtures

import (
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
)

// ==========================================
// DEFAULT ROSTER
// ==========================================

// DefaultWorkers is written to the roster key on first start.
func DefaultWorkers() []worker.Worker {
	return []worker.Worker{
		{OpsID: "SPX-78291", FullName: "Budi Santoso"},
		{OpsID: "SPX-99012", FullName: "Siti Aminah"},
		{OpsID: "SPX-11223", FullName: "Ahmad Dahlan"},
		{OpsID: "SPX-44556", FullName: "Citra Kirana"},
		{OpsID: "SPX-77889", FullName: "Doni Firmansyah"},
		{OpsID: "SPX-10111", FullName: "Fitri Handayani"},
		{OpsID: "SPX-23232", FullName: "Gilang Ramadhan"},
		{OpsID: "SPX-45454", FullName: "Hesti Purwadinata"},
		{OpsID: "SPX-67676", FullName: "Indra Gunawan"},
		{OpsID: "SPX-89898", FullName: "Joko Susilo"},
	}
}

// ==========================================
// SAMPLE COMPLAINTS
// ==========================================

type sample struct {
	id       string
	typ      complaint.Type
	status   complaint.Status
	age      time.Duration
	opsID    string
	name     string
	phone    string
	account  string
	bank     string
	period   string
	filled   string
	received string
	evidence string
}

var samples = []sample{
	{"dummy-1", complaint.TypeMissingSalary, complaint.StatusPending, 2 * time.Hour, "SPX-78291", "Budi Santoso", "081234567890", "1234567890", "BCA", "1-15 Oktober 2024", "SUDAH", "", ""},
	{"dummy-2", complaint.TypeUnderpaidSalary, complaint.StatusProcessing, 5 * time.Hour, "SPX-99012", "Siti Aminah", "089876543210", "0987654321", "MANDIRI", "1-15 Oktober 2024", "", "1212000", "https://picsum.photos/seed/siti/400/300"},
	{"dummy-3", complaint.TypeMissingSalary, complaint.StatusResolved, 48 * time.Hour, "SPX-11223", "Ahmad Dahlan", "081122334455", "1122334455", "BNI", "16-30 September 2024", "SUDAH", "", ""},
	{"dummy-4", complaint.TypeUnderpaidSalary, complaint.StatusRejected, 72 * time.Hour, "SPX-44556", "Citra Kirana", "085566778899", "4455667788", "BRI", "16-30 September 2024", "", "1800000", ""},
	{"dummy-5", complaint.TypeMissingSalary, complaint.StatusEscalated, 24 * time.Hour, "SPX-77889", "Doni Firmansyah", "087788990011", "7788990011", "SEABANK", "1-15 Oktober 2024", "BELUM", "", ""},
	{"dummy-6", complaint.TypeUnderpaidSalary, complaint.StatusPending, 1 * time.Hour, "SPX-10111", "Fitri Handayani", "081011121314", "1011121314", "BCA", "1-15 Oktober 2024", "", "500000", "https://picsum.photos/seed/fitri/400/300"},
	{"dummy-7", complaint.TypeMissingSalary, complaint.StatusPending, 8 * time.Hour, "SPX-23232", "Gilang Ramadhan", "082323232323", "2323232323", "MANDIRI", "1-15 Oktober 2024", "SUDAH", "", ""},
	{"dummy-8", complaint.TypeUnderpaidSalary, complaint.StatusProcessing, 96 * time.Hour, "SPX-78291", "Budi Santoso", "081234567890", "1234567890", "BCA", "16-30 September 2024", "", "1500000", "https://picsum.photos/seed/budi/400/300"},
	{"dummy-9", complaint.TypeMissingSalary, complaint.StatusResolved, 120 * time.Hour, "SPX-89898", "Joko Susilo", "088989898989", "8989898989", "BNI", "1-15 September 2024", "SUDAH", "", ""},
	{"dummy-10", complaint.TypeMissingSalary, complaint.StatusPending, 3 * time.Hour, "SPX-44556", "Citra Kirana", "085566778899", "4455667788", "BRI", "1-15 Oktober 2024", "BELUM", "", ""},
}

// SampleComplaints returns demo complaints timestamped relative to now.
func SampleComplaints(now time.Time) []complaint.Complaint {
	out := make([]complaint.Complaint, 0, len(samples))
	for _, s := range samples {
		c := complaint.Complaint{
			ID:                s.id,
			Type:              s.typ,
			Status:            s.status,
			Timestamp:         now.Add(-s.age).UTC().Truncate(time.Millisecond),
			OpsID:             s.opsID,
			FullName:          s.name,
			WhatsappNumber:    s.phone,
			BankAccountNumber: s.account,
			BankAccountName:   s.name,
			BankName:          s.bank,
			Period:            s.period,
		}
		switch s.typ {
		case complaint.TypeMissingSalary:
			c.MissingSalary = &complaint.MissingSalaryDetail{AlreadyFilledLink: s.filled}
		case complaint.TypeUnderpaidSalary:
			c.UnderpaidSalary = &complaint.UnderpaidSalaryDetail{ReceivedAmount: s.received, EvidenceURL: s.evidence}
		}
		out = append(out, c)
	}
	return out
}
