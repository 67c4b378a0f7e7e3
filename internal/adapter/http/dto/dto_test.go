package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-reconciler/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const validBatch = `{
  "live": "false",
  "notificationItems": [{
    "NotificationRequestItem": {
      "eventCode": "AUTHORISATION",
      "success": "true",
      "pspReference": "8815000000000001",
      "merchantAccountCode": "TestMerchant",
      "merchantReference": "000000100",
      "paymentMethod": "visa",
      "amount": {"value": 10000, "currency": "EUR"},
      "eventDate": "2024-03-01T12:00:00+01:00",
      "additionalData": {"hmacSignature": "abc=", "fraudManualReview": "false"}
    }
  }]
}`

func bind(t *testing.T, body string) (NotificationBatch, error) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var batch NotificationBatch
	err := c.ShouldBindJSON(&batch)
	return batch, err
}

func TestBind_ValidBatch(t *testing.T) {
	batch, err := bind(t, validBatch)
	require.NoError(t, err)
	require.Len(t, batch.NotificationItems, 1)
	assert.False(t, batch.IsLive())
	assert.Equal(t, "abc=", batch.NotificationItems[0].Item.Signature())
}

func TestBind_EmptyItems(t *testing.T) {
	_, err := bind(t, `{"live":"false","notificationItems":[]}`)
	assert.Error(t, err)
}

func TestBind_InvalidSuccessFlag(t *testing.T) {
	body := bytes.Replace([]byte(validBatch), []byte(`"success": "true"`), []byte(`"success": "yes"`), 1)
	_, err := bind(t, string(body))
	assert.Error(t, err)
}

func TestBind_UnsafeMerchantReference(t *testing.T) {
	body := bytes.Replace([]byte(validBatch), []byte(`"000000100"`), []byte(`"100; DROP TABLE"`), 1)
	_, err := bind(t, string(body))
	assert.Error(t, err)
}

func TestBind_InvalidCurrency(t *testing.T) {
	body := bytes.Replace([]byte(validBatch), []byte(`"currency": "EUR"`), []byte(`"currency": "EURO"`), 1)
	_, err := bind(t, string(body))
	assert.Error(t, err)
}

func TestToDomain(t *testing.T) {
	batch, err := bind(t, validBatch)
	require.NoError(t, err)

	n, err := batch.NotificationItems[0].Item.ToDomain(batch.IsLive())
	require.NoError(t, err)

	assert.Equal(t, domain.EventCodeAuthorisation, n.EventCode)
	assert.True(t, n.Success)
	assert.Equal(t, "8815000000000001", n.PSPReference)
	assert.Equal(t, "TestMerchant", n.MerchantAccount)
	assert.Equal(t, "000000100", n.MerchantReference)
	assert.Equal(t, int64(10000), n.Amount)
	assert.Equal(t, "EUR", n.Currency)
	assert.False(t, n.Live)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), n.EventDate)

	data := domain.ParseAdditionalData(n.AdditionalData)
	assert.Equal(t, "abc=", data.Get(domain.KeyHMACSignature))
	assert.False(t, data.Flag(domain.KeyFraudManualReview))
}

func TestToDomain_NormalizesCodes(t *testing.T) {
	item := NotificationRequestItem{
		EventCode: " authorisation ",
		Success:   "FALSE",
		Amount:    NotificationAmount{Value: 500, Currency: "usd"},
	}
	n, err := item.ToDomain(true)
	require.NoError(t, err)
	assert.Equal(t, domain.EventCodeAuthorisation, n.EventCode)
	assert.False(t, n.Success)
	assert.Equal(t, "USD", n.Currency)
	assert.True(t, n.Live)
	assert.Nil(t, n.AdditionalData)
}

func TestToDomain_InvalidEventDate(t *testing.T) {
	item := NotificationRequestItem{EventCode: "AUTHORISATION", Success: "true", EventDate: "yesterday"}
	_, err := item.ToDomain(false)
	assert.Error(t, err)
}
