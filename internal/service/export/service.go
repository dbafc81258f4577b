package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File is a rendered report ready for download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
	Count       int
}

type ExportService interface {
	CSV(ctx context.Context, req complaint.ExportRequest) (File, error)
	XLSX(ctx context.Context, req complaint.ExportRequest) (File, error)
	Clipboard(ctx context.Context, req complaint.ExportRequest) (complaint.ClipboardResponse, error)
}

type exportServiceImpl struct {
	complaintService complaint.ComplaintService
	now              func() time.Time
}

func NewExportService(complaintService complaint.ComplaintService) ExportService {
	return &exportServiceImpl{
		complaintService: complaintService,
		now:              time.Now,
	}
}

func (s *exportServiceImpl) CSV(ctx context.Context, req complaint.ExportRequest) (File, error) {
	selected, err := s.complaintService.Select(ctx, req.IDs)
	if err != nil {
		return File{}, err
	}

	slog.Info("exporting complaints", "format", "csv", "count", len(selected))
	return File{
		Name:        Filename(s.now().UTC(), "csv"),
		ContentType: ContentTypeCSV,
		Content:     []byte(CSV(selected)),
		Count:       len(selected),
	}, nil
}

func (s *exportServiceImpl) XLSX(ctx context.Context, req complaint.ExportRequest) (File, error) {
	selected, err := s.complaintService.Select(ctx, req.IDs)
	if err != nil {
		return File{}, err
	}

	content, err := XLSX(selected)
	if err != nil {
		return File{}, err
	}

	slog.Info("exporting complaints", "format", "xlsx", "count", len(selected))
	return File{
		Name:        Filename(s.now().UTC(), "xlsx"),
		ContentType: ContentTypeXLSX,
		Content:     content,
		Count:       len(selected),
	}, nil
}

// Clipboard copies only an explicit selection. Unlike the file exports, an
// empty selection yields nothing.
func (s *exportServiceImpl) Clipboard(ctx context.Context, req complaint.ExportRequest) (complaint.ClipboardResponse, error) {
	if len(req.IDs) == 0 {
		return complaint.ClipboardResponse{}, nil
	}

	selected, err := s.complaintService.Select(ctx, req.IDs)
	if err != nil {
		return complaint.ClipboardResponse{}, err
	}

	return complaint.ClipboardResponse{
		Count: len(selected),
		Text:  Clipboard(selected),
	}, nil
}
