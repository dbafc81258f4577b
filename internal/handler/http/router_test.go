package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/repository/kv"
	authService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/auth"
	complaintService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/complaint"
	exportService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/export"
	fileService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/file"
	intakeService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/intake"
	notificationService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/notification"
	workerService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	router http.Handler
}

// newTestServer merakit seluruh stack di atas memory store, tanpa database
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	workerRepo, err := kv.NewWorkerRepository(ctx, store, []worker.Worker{
		{OpsID: "SPX-78291", FullName: "Budi Santoso"},
		{OpsID: "SPX-99012", FullName: "Siti Aminah"},
	})
	require.NoError(t, err)

	complaintRepo, err := kv.NewComplaintRepository(ctx, store, []complaint.Complaint{{
		ID:                "prior",
		Type:              complaint.TypeMissingSalary,
		Status:            complaint.StatusPending,
		Timestamp:         time.Date(2024, time.October, 1, 8, 0, 0, 0, time.UTC),
		OpsID:             "SPX-78291",
		FullName:          "Budi Santoso",
		WhatsappNumber:    "081234567890",
		BankAccountNumber: "1234567890",
		BankAccountName:   "BUDI SANTOSO",
		BankName:          "BCA",
		Period:            "16-30/31 September 2024",
		MissingSalary:     &complaint.MissingSalaryDetail{AlreadyFilledLink: "SUDAH"},
	}})
	require.NoError(t, err)

	uploads := t.TempDir()
	local, err := storage.NewLocalStorage(uploads, "http://localhost:8080/uploads")
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, time.Hour)
	notifSvc := notificationService.NewNotificationService(sse.NewHub(), notificationService.Config{})
	t.Cleanup(notifSvc.Stop)

	intakeSvc := intakeService.NewIntakeService(workerRepo, complaintRepo)
	complaintSvc := complaintService.NewComplaintService(complaintRepo, workerRepo, intakeSvc, notifSvc)

	router := NewRouter(RouterConfig{
		FrontendURL: "http://localhost:3000",
		LogLevel:    slog.LevelError,
		UploadsDir:  uploads,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), jwtSvc, Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(authService.Credentials{Username: "admin", Password: "123"}, jwtSvc)),
		Intake:       NewIntakeHandler(intakeSvc, complaintSvc, fileService.NewFileService(local)),
		Complaint:    NewComplaintHandler(complaintSvc, exportService.NewExportService(complaintSvc)),
		Worker:       NewWorkerHandler(workerService.NewWorkerService(workerRepo, notifSvc)),
		Notification: NewNotificationHandler(notifSvc, jwtSvc),
	})

	return &testServer{router: router}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func submitBody(opsID string) map[string]string {
	return map[string]string{
		"ops_id":              opsID,
		"whatsapp_number":     "081234567890",
		"bank_account_number": "1234567890",
		"bank_account_name":   "BUDI SANTOSO",
		"bank_name":           "BCA",
		"period":              "1-15 Oktober 2024",
		"already_filled_link": "BELUM",
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	s.login(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "salah"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/admin/complaints", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A stream token cannot be used as an access token
	token := s.login(t)
	rec = s.do(t, http.MethodGet, "/api/v1/admin/events/token", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var streamBody struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &streamBody))

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints", streamBody.Data.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIntakeEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/intake/suggestions?q=siti", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ops_id":"SPX-99012"`)

	rec = s.do(t, http.MethodGet, "/api/v1/intake/workers/spx-78291", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lookup struct {
		Data struct {
			OpsID      string `json:"ops_id"`
			BankName   string `json:"bank_name"`
			Autofilled bool   `json:"autofilled"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lookup))
	assert.Equal(t, "SPX-78291", lookup.Data.OpsID)
	assert.Equal(t, "BCA", lookup.Data.BankName)
	assert.True(t, lookup.Data.Autofilled)

	rec = s.do(t, http.MethodGet, "/api/v1/intake/workers/SPX-00000", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/intake/periods", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "16-30/31")
}

func TestUploadEvidence(t *testing.T) {
	s := newTestServer(t)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("ops_id", "SPX-99012"))
	part, err := mw.CreateFormFile("file", "bukti.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/evidence", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAndReview(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/api/v1/complaints/missing-salary", "", submitBody("spx-78291"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID     string `json:"id"`
			Type   string `json:"type"`
			Status string `json:"status"`
			OpsID  string `json:"opsId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "BELUM_TURUN", created.Data.Type)
	assert.Equal(t, "PENDING", created.Data.Status)
	assert.Equal(t, "SPX-78291", created.Data.OpsID)
	assert.NotEqual(t, "prior", created.Data.ID)

	// Unregistered ops id never reaches the store
	rec = s.do(t, http.MethodPost, "/api/v1/complaints/missing-salary", "", submitBody("SPX-00000"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "ops_id")

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints?type=ALL", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)
	require.NotNil(t, list.Meta)
	assert.Equal(t, 2, list.Meta.Total)

	rec = s.do(t, http.MethodPut, "/api/v1/admin/complaints/prior/status", token, map[string]string{"status": "SELESAI"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPut, "/api/v1/admin/complaints/prior/status", token, map[string]string{"status": "SELESAI_KAH"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints/"+created.Data.ID+"/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"prior"`)
	assert.Contains(t, rec.Body.String(), `"status":"SELESAI"`)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resolved":1`)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints/prior/contact", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://wa.me/6281234567890?text=")

	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportCSV(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/api/v1/complaints/missing-salary", "", submitBody("SPX-99012"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.do(t, http.MethodPost, "/api/v1/admin/complaints/export/csv", token, map[string][]string{"ids": {"prior", created.Data.ID}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Laporan_Komplain_SPX_")

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"'1234567890"`)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/complaints/export/clipboard", token, map[string][]string{"ids": {"prior", created.Data.ID}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/complaints/export/clipboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestWorkerManagement(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/api/v1/admin/workers", token, map[string]string{"ops_id": "spx-55555", "full_name": "Joko"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/admin/workers", token, map[string]string{"ops_id": "SPX-55555", "full_name": "Joko Lagi"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/admin/workers/SPX-55555", token, map[string]string{"full_name": "Joko Susilo"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/workers?search=susilo", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode(t, rec).Meta.Total)

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/workers/SPX-55555", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/workers/SPX-55555?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":1`)

	// Deleting a worker keeps their complaints
	rec = s.do(t, http.MethodDelete, "/api/v1/admin/workers/SPX-78291?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/admin/complaints/prior", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEventStream(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	token := s.login(t)
	rec := s.do(t, http.MethodGet, "/api/v1/admin/events/token", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var streamBody struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &streamBody))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/admin/events?token="+streamBody.Data.Token, nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, "connected", readEvent())

	rec = s.do(t, http.MethodPost, "/api/v1/complaints/missing-salary", "", submitBody("SPX-78291"))
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "complaint.created", readEvent())

	// Bad token is refused
	bad, err := srv.Client().Get(srv.URL + "/api/v1/admin/events?token=nope")
	require.NoError(t, err)
	bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
}
