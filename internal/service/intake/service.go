package intake

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/intake"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
)

// MaxSuggestions caps the suggestion list shown under the ops id field.
const MaxSuggestions = 5

type IntakeService interface {
	Suggest(ctx context.Context, prefix string) ([]worker.Worker, error)
	Resolve(ctx context.Context, opsID string) (worker.Worker, error)
	// Lookup canonicalises the raw ops id, resolves it and autofills from past complaints
	Lookup(ctx context.Context, rawOpsID string) (intake.AutofillResult, error)
	// NewDraft starts a form draft over the current roster and complaint store
	NewDraft(ctx context.Context) (*Draft, error)
}

type intakeServiceImpl struct {
	workerRepo    worker.WorkerRepository
	complaintRepo complaint.ComplaintRepository
}

func NewIntakeService(workerRepo worker.WorkerRepository, complaintRepo complaint.ComplaintRepository) IntakeService {
	return &intakeServiceImpl{
		workerRepo:    workerRepo,
		complaintRepo: complaintRepo,
	}
}

func (s *intakeServiceImpl) Suggest(ctx context.Context, prefix string) ([]worker.Worker, error) {
	roster, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return Suggest(roster, prefix), nil
}

func (s *intakeServiceImpl) Resolve(ctx context.Context, opsID string) (worker.Worker, error) {
	roster, err := s.workerRepo.List(ctx)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to list workers: %w", err)
	}
	w, ok := Resolve(roster, opsID)
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (s *intakeServiceImpl) Lookup(ctx context.Context, rawOpsID string) (intake.AutofillResult, error) {
	w, err := s.Resolve(ctx, worker.CanonicalOpsID(rawOpsID))
	if err != nil {
		return intake.AutofillResult{}, err
	}

	history, err := s.complaintRepo.List(ctx)
	if err != nil {
		return intake.AutofillResult{}, fmt.Errorf("failed to list complaints: %w", err)
	}

	return Autofill(w, history), nil
}

func (s *intakeServiceImpl) NewDraft(ctx context.Context) (*Draft, error) {
	roster, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	history, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return NewDraft(roster, history), nil
}

// Suggest returns up to MaxSuggestions workers, in roster order, whose ops id
// or full name contains prefix (case-insensitive). Prefixes of one character
// or less return nothing.
func Suggest(roster []worker.Worker, prefix string) []worker.Worker {
	if utf8.RuneCountInString(prefix) <= 1 {
		return []worker.Worker{}
	}

	needle := strings.ToUpper(prefix)
	out := make([]worker.Worker, 0, MaxSuggestions)
	for _, w := range roster {
		if strings.Contains(strings.ToUpper(w.OpsID), needle) ||
			strings.Contains(strings.ToUpper(w.FullName), needle) {
			out = append(out, w)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Resolve finds the first roster entry whose ops id equals opsID exactly.
// Callers canonicalise the input first.
func Resolve(roster []worker.Worker, opsID string) (worker.Worker, bool) {
	for _, w := range roster {
		if w.OpsID == opsID {
			return w, true
		}
	}
	return worker.Worker{}, false
}

// Autofill carries contact and bank details forward from the first complaint
// in store order filed under the same ops id.
func Autofill(w worker.Worker, history []complaint.Complaint) intake.AutofillResult {
	result := intake.AutofillResult{
		OpsID:    w.OpsID,
		FullName: w.FullName,
	}

	for _, c := range history {
		if c.OpsID != w.OpsID {
			continue
		}
		result.WhatsappNumber = c.WhatsappNumber
		result.BankAccountNumber = c.BankAccountNumber
		result.BankAccountName = c.BankAccountName
		result.BankName = c.BankName
		result.Autofilled = true
		break
	}

	return result
}
