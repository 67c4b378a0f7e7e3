package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"webhook-reconciler/internal/adapter/http/dto"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/internal/core/ports/mocks"
	"webhook-reconciler/internal/service"
	"webhook-reconciler/pkg/apperror"
	"webhook-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHMACKey = "44782DEF547AAA06C910C43932B1EB0C71FC68D9D0C057550C48EC2ACF6BA056"

func init() {
	gin.SetMode(gin.TestMode)
}

func testItem(merchantRef string) dto.NotificationRequestItem {
	return dto.NotificationRequestItem{
		EventCode:           "AUTHORISATION",
		Success:             "true",
		PSPReference:        "8815000000000001",
		MerchantAccountCode: "TestMerchant",
		MerchantReference:   merchantRef,
		PaymentMethod:       "visa",
		Amount:              dto.NotificationAmount{Value: 10000, Currency: "EUR"},
	}
}

// signItem stores a valid signature for item in its additionalData.
func signItem(t *testing.T, item dto.NotificationRequestItem) dto.NotificationRequestItem {
	t.Helper()
	sig := service.NewHMACSignatureService()
	n, err := item.ToDomain(false)
	require.NoError(t, err)
	s, err := sig.Sign(testHMACKey, sig.BuildCanonicalString(n))
	require.NoError(t, err)
	item.AdditionalData = map[string]any{domain.KeyHMACSignature: s}
	return item
}

func batchBody(t *testing.T, items ...dto.NotificationRequestItem) []byte {
	t.Helper()
	batch := dto.NotificationBatch{Live: "false"}
	for _, it := range items {
		batch.NotificationItems = append(batch.NotificationItems, dto.NotificationItemWrap{Item: it})
	}
	body, err := json.Marshal(batch)
	require.NoError(t, err)
	return body
}

func serve(h *NotificationHandler, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/notifications", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Receive(c)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorCode
}

// --- Notification Handler Tests ---

func TestReceive_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	proc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n domain.Notification) (domain.Order, error) {
			assert.Equal(t, domain.EventCodeAuthorisation, n.EventCode)
			assert.True(t, n.Success)
			assert.Equal(t, "000000100", n.MerchantReference)
			assert.Equal(t, int64(10000), n.Amount)
			return domain.Order{}, nil
		})

	w := serve(h, batchBody(t, testItem("000000100")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.NotificationAccepted, w.Body.String())
}

func TestReceive_ProcessesEveryItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	gomock.InOrder(
		proc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.Order{}, errors.New("boom")),
		proc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.Order{}, nil),
	)

	w := serve(h, batchBody(t, testItem("000000100"), testItem("000000101")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReceive_UnknownOrderAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	proc.EXPECT().Process(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, apperror.ErrOrderNotFound("000000999"))

	w := serve(h, batchBody(t, testItem("000000999")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.NotificationAccepted, w.Body.String())
}

func TestReceive_LockTimeoutPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	proc.EXPECT().Process(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, apperror.ErrLockTimeout(errors.New("deadline exceeded")))

	w := serve(h, batchBody(t, testItem("000000100")))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, apperror.CodeLockTimeout, errorCode(t, w))
}

func TestReceive_UnclassifiedErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	proc.EXPECT().Process(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, errors.New("unexpected"))

	w := serve(h, batchBody(t, testItem("000000100")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, errorCode(t, w))
}

func TestReceive_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	// Empty body => binding error, nothing processed
	w := serve(h, []byte("{}"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidNotification, errorCode(t, w))
}

func TestReceive_InvalidEventDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), "", zerolog.Nop())

	item := testItem("000000100")
	item.EventDate = "not-a-date"
	w := serve(h, batchBody(t, item))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceive_ValidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), testHMACKey, zerolog.Nop())

	proc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.Order{}, nil)

	w := serve(h, batchBody(t, signItem(t, testItem("000000100"))))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReceive_MissingSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), testHMACKey, zerolog.Nop())

	w := serve(h, batchBody(t, testItem("000000100")))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidSignature, errorCode(t, w))
}

func TestReceive_TamperedItemRejectsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	h := NewNotificationHandler(proc, service.NewHMACSignatureService(), testHMACKey, zerolog.Nop())

	good := signItem(t, testItem("000000100"))
	tampered := signItem(t, testItem("000000101"))
	tampered.Amount.Value = 1

	// No Process expectation: authentication happens before any item is reconciled.
	w := serve(h, batchBody(t, good, tampered))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Health Check Tests ---

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	report := healthData(t, w)
	assert.Equal(t, "healthy", report["status"])
	deps := report["dependencies"].(map[string]any)
	assert.Equal(t, "healthy", deps["postgresql"].(map[string]any)["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql")
	rdb := mocks.NewMockHealthChecker(ctrl)
	rdb.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rdb.EXPECT().Name().Return("redis")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg, rdb)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	report := healthData(t, w)
	assert.Equal(t, "degraded", report["status"])
	deps := report["dependencies"].(map[string]any)
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]any)["status"])
	assert.Equal(t, "connection refused", deps["redis"].(map[string]any)["error"])
}

// healthData unwraps the success envelope of a health response.
func healthData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return data
}

// --- Router Tests ---

func TestSetupRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proc := mocks.NewMockNotificationProcessor(ctrl)
	proc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(domain.Order{}, nil)

	r := SetupRouter(RouterDeps{
		Processor:      proc,
		SigSvc:         service.NewHMACSignatureService(),
		HealthCheckers: []ports.HealthChecker{},
		Logger:         zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", bytes.NewReader(batchBody(t, testItem("000000100"))))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.NotificationAccepted, w.Body.String())
}
