package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/intake"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	// MaxUploadSize is the largest evidence photo accepted before compression
	MaxUploadSize = 8 << 20
	// maxEdge bounds the longer side of a stored evidence photo
	maxEdge = 1600
	// targetSize is the size compression aims below
	targetSize = 400 * 1024
)

type FileService interface {
	// UploadEvidence stores a transfer screenshot for an underpaid-salary complaint
	UploadEvidence(ctx context.Context, opsID string, file io.Reader, filename string) (intake.EvidenceUploadResponse, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadEvidence implements FileService. Photos are re-encoded as JPEG.
func (s *fileServiceImpl) UploadEvidence(ctx context.Context, opsID string, file io.Reader, filename string) (intake.EvidenceUploadResponse, error) {
	opsID = worker.CanonicalOpsID(opsID)
	if !validator.IsValidOpsID(opsID) {
		var errs validator.ValidationErrors
		errs.Add("ops_id", "ops_id may only contain letters, numbers and dashes (max 32)")
		return intake.EvidenceUploadResponse{}, errs
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !validator.IsInSlice(ext, []string{".jpg", ".jpeg", ".png"}) {
		return intake.EvidenceUploadResponse{}, intake.ErrInvalidFileType
	}

	buffer, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return intake.EvidenceUploadResponse{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(buffer) > MaxUploadSize {
		return intake.EvidenceUploadResponse{}, intake.ErrFileTooLarge
	}

	compressed, err := compressImage(buffer)
	if err != nil {
		return intake.EvidenceUploadResponse{}, err
	}

	// evidence/{opsID}/{uuid}.jpg
	key := path.Join("evidence", opsID, uuid.New().String()+".jpg")
	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), key, "image/jpeg")
	if err != nil {
		return intake.EvidenceUploadResponse{}, fmt.Errorf("failed to upload evidence: %w", err)
	}

	url, err := s.storage.GetURL(ctx, uploadedPath)
	if err != nil {
		return intake.EvidenceUploadResponse{}, fmt.Errorf("failed to build evidence url: %w", err)
	}

	slog.Info("evidence uploaded", "ops_id", opsID, "path", uploadedPath, "original_bytes", len(buffer), "stored_bytes", len(compressed))
	return intake.EvidenceUploadResponse{Path: uploadedPath, URL: url}, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL returns the public URL of a stored file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path)
}

// compressImage downscales the photo so its longer side is at most maxEdge,
// then lowers JPEG quality until the result fits targetSize or quality hits 50.
func compressImage(buffer []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, intake.ErrInvalidImage
	}

	bounds := img.Bounds()
	if w, h := bounds.Dx(), bounds.Dy(); w > maxEdge || h > maxEdge {
		if w >= h {
			img = resizeImage(img, maxEdge, h*maxEdge/w)
		} else {
			img = resizeImage(img, w*maxEdge/h, maxEdge)
		}
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()
		if len(compressed) <= targetSize {
			break
		}
	}

	return compressed, nil
}

// resizeImage scales src to width x height with CatmullRom interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
