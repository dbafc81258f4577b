package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/whatsapp"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/intake"
	"github.com/google/uuid"
)

type ComplaintServiceImpl struct {
	complaintRepo complaint.ComplaintRepository
	workerRepo    worker.WorkerRepository
	intakeService intake.IntakeService
	publisher     notification.Publisher
	now           func() time.Time
}

func NewComplaintService(
	complaintRepo complaint.ComplaintRepository,
	workerRepo worker.WorkerRepository,
	intakeService intake.IntakeService,
	publisher notification.Publisher,
) *ComplaintServiceImpl {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &ComplaintServiceImpl{
		complaintRepo: complaintRepo,
		workerRepo:    workerRepo,
		intakeService: intakeService,
		publisher:     publisher,
		now:           time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (s *ComplaintServiceImpl) WithClock(now func() time.Time) *ComplaintServiceImpl {
	s.now = now
	return s
}

// SubmitMissingSalary implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) SubmitMissingSalary(ctx context.Context, req complaint.SubmitMissingSalaryRequest) (complaint.Complaint, error) {
	if err := req.Validate(); err != nil {
		return complaint.Complaint{}, err
	}

	c, err := s.newComplaint(ctx, req.SubmitRequest)
	if err != nil {
		return complaint.Complaint{}, err
	}
	c.Type = complaint.TypeMissingSalary
	c.MissingSalary = &complaint.MissingSalaryDetail{AlreadyFilledLink: req.AlreadyFilledLink}

	return s.store(ctx, c)
}

// SubmitUnderpaidSalary implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) SubmitUnderpaidSalary(ctx context.Context, req complaint.SubmitUnderpaidSalaryRequest) (complaint.Complaint, error) {
	if err := req.Validate(); err != nil {
		return complaint.Complaint{}, err
	}

	c, err := s.newComplaint(ctx, req.SubmitRequest)
	if err != nil {
		return complaint.Complaint{}, err
	}
	c.Type = complaint.TypeUnderpaidSalary
	c.UnderpaidSalary = &complaint.UnderpaidSalaryDetail{
		ReceivedAmount: strings.TrimSpace(req.ReceivedAmount),
		EvidenceURL:    strings.TrimSpace(req.EvidenceURL),
	}

	return s.store(ctx, c)
}

// newComplaint runs the form through an intake draft so the identity comes
// from the roster. Values typed by the worker win over autofilled ones.
func (s *ComplaintServiceImpl) newComplaint(ctx context.Context, req complaint.SubmitRequest) (complaint.Complaint, error) {
	draft, err := s.intakeService.NewDraft(ctx)
	if err != nil {
		return complaint.Complaint{}, err
	}

	draft.ChangeOpsID(strings.TrimSpace(req.OpsID))
	if !draft.IsResolved() {
		return complaint.Complaint{}, complaint.ErrOpsIDNotRegistered
	}

	draft.SetWhatsappNumber(strings.TrimSpace(req.WhatsappNumber))
	draft.SetBankAccountNumber(strings.TrimSpace(req.BankAccountNumber))
	draft.SetBankAccountName(strings.TrimSpace(req.BankAccountName))
	draft.SetBankName(strings.TrimSpace(req.BankName))
	draft.SetPeriod(strings.TrimSpace(req.Period))

	id, err := uuid.NewV7()
	if err != nil {
		return complaint.Complaint{}, fmt.Errorf("failed to generate complaint id: %w", err)
	}

	fields := draft.SubmitRequest()
	return complaint.Complaint{
		ID:                id.String(),
		Status:            complaint.StatusPending,
		Timestamp:         submittedAt(s.now()),
		OpsID:             fields.OpsID,
		FullName:          draft.FullName(),
		WhatsappNumber:    fields.WhatsappNumber,
		BankAccountNumber: fields.BankAccountNumber,
		BankAccountName:   fields.BankAccountName,
		BankName:          fields.BankName,
		Period:            fields.Period,
	}, nil
}

// submittedAt rounds up to whole milliseconds so the stored time never
// precedes the moment of submission.
func submittedAt(t time.Time) time.Time {
	t = t.UTC()
	if ms := t.Truncate(time.Millisecond); !ms.Equal(t) {
		return ms.Add(time.Millisecond)
	}
	return t
}

func (s *ComplaintServiceImpl) store(ctx context.Context, c complaint.Complaint) (complaint.Complaint, error) {
	if err := s.complaintRepo.Prepend(ctx, c); err != nil {
		return complaint.Complaint{}, fmt.Errorf("failed to store complaint: %w", err)
	}

	slog.Info("complaint submitted", "id", c.ID, "type", c.Type, "ops_id", c.OpsID)
	s.publisher.Publish(ctx, notification.Event{
		Type: notification.EventComplaintCreated,
		Data: c,
	})

	return c, nil
}

// PeriodOptions implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) PeriodOptions(ctx context.Context) complaint.PeriodOptionsResponse {
	return complaint.PeriodOptionsResponse{Periods: PeriodOptions(s.now())}
}

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PeriodOptions lists the half-month pay periods a worker can complain about.
func PeriodOptions(now time.Time) []string {
	cur := now.Month()
	year := now.Year()
	prev := cur - 1
	prevYear := year
	if cur == time.January {
		prev = time.December
		prevYear = year - 1
	}

	curName := monthNames[cur-1]
	prevName := monthNames[prev-1]

	return []string{
		fmt.Sprintf("1-15 %s %d", curName, year),
		fmt.Sprintf("16-30/31 %s %d", prevName, prevYear),
		fmt.Sprintf("1-15 %s %d", prevName, prevYear),
		fmt.Sprintf("16-30/31 %s %d", curName, year),
	}
}

// Filter implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) Filter(ctx context.Context, filter complaint.ComplaintFilter) ([]complaint.Complaint, error) {
	var wantType complaint.Type
	if t := strings.TrimSpace(filter.Type); t != "" && !strings.EqualFold(t, "ALL") {
		parsed, ok := complaint.ParseType(t)
		if !ok {
			return nil, complaint.ErrInvalidType
		}
		wantType = parsed
	}

	all, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return Filter(all, wantType, filter.Search), nil
}

// Filter keeps complaints of wantType (empty means any) whose full name or ops
// id contains search, case-insensitively. Store order is preserved.
func Filter(all []complaint.Complaint, wantType complaint.Type, search string) []complaint.Complaint {
	needle := strings.ToLower(search)
	out := make([]complaint.Complaint, 0, len(all))
	for _, c := range all {
		if wantType != "" && c.Type != wantType {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.FullName), needle) &&
			!strings.Contains(strings.ToLower(c.OpsID), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Get implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) Get(ctx context.Context, id string) (complaint.Complaint, error) {
	return s.complaintRepo.GetByID(ctx, id)
}

// HistoryFor implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) HistoryFor(ctx context.Context, id string) ([]complaint.Complaint, error) {
	target, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return HistoryFor(target, all), nil
}

// HistoryFor returns the other complaints filed under target's ops id, newest first.
func HistoryFor(target complaint.Complaint, all []complaint.Complaint) []complaint.Complaint {
	out := make([]complaint.Complaint, 0)
	for _, c := range all {
		if c.OpsID == target.OpsID && c.ID != target.ID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// SetStatus implements complaint.ComplaintService. An unknown id is ignored.
func (s *ComplaintServiceImpl) SetStatus(ctx context.Context, req complaint.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	status, _ := complaint.ParseStatus(req.Status)

	found, err := s.complaintRepo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	if !found {
		slog.Debug("status update for unknown complaint ignored", "id", req.ID)
		return nil
	}

	updated, err := s.complaintRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	slog.Info("complaint status updated", "id", req.ID, "status", status)
	s.publisher.Publish(ctx, notification.Event{
		Type: notification.EventComplaintStatusUpdated,
		Data: notification.StatusUpdatedData{
			ID:     updated.ID,
			OpsID:  updated.OpsID,
			Status: string(updated.Status),
		},
	})

	return nil
}

// Stats implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) Stats(ctx context.Context) (complaint.StatsResponse, error) {
	all, err := s.complaintRepo.List(ctx)
	if err != nil {
		return complaint.StatsResponse{}, fmt.Errorf("failed to list complaints: %w", err)
	}
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return complaint.StatsResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	stats := complaint.StatsResponse{
		Total:        len(all),
		TotalWorkers: len(workers),
	}
	for _, c := range all {
		switch c.Status {
		case complaint.StatusPending:
			stats.Pending++
		case complaint.StatusProcessing:
			stats.Processing++
		case complaint.StatusResolved:
			stats.Resolved++
		case complaint.StatusRejected:
			stats.Rejected++
		case complaint.StatusEscalated:
			stats.Escalated++
		}
	}
	return stats, nil
}

// ContactLink implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) ContactLink(ctx context.Context, id string) (complaint.ContactResponse, error) {
	c, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return complaint.ContactResponse{}, err
	}

	message := ContactMessage(c)
	return complaint.ContactResponse{
		Phone:   whatsapp.NormalizePhone(c.WhatsappNumber),
		Message: message,
		URL:     whatsapp.Link(c.WhatsappNumber, message),
	}, nil
}

// ContactMessage is the pre-filled WhatsApp message sent to a complainant.
func ContactMessage(c complaint.Complaint) string {
	return fmt.Sprintf(
		"Halo %s, saya Admin SPX perihal komplain gaji Anda periode %s (%s). Laporan Anda sedang kami proses. Mohon ditunggu ya.",
		c.FullName, c.Period, c.Type,
	)
}

// Select implements complaint.ComplaintService.
func (s *ComplaintServiceImpl) Select(ctx context.Context, ids []string) ([]complaint.Complaint, error) {
	all, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	if len(ids) == 0 {
		return all, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]complaint.Complaint, 0, len(ids))
	for _, c := range all {
		if _, ok := wanted[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
