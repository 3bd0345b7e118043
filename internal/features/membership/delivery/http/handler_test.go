package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	membershiphttp "nft-treasury-backend/internal/features/membership/delivery/http"
	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository/memory"
	"nft-treasury-backend/internal/features/membership/service"
)

func newTestRouter(sharedSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewMembershipService(memory.NewMembershipRepository(), nil, sharedSecret)

	router := gin.New()
	api := router.Group("/api")
	membershiphttp.NewMembershipHandler(svc).RegisterRoutes(api)
	return router
}

func postWebhook(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bitbadges-webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestWebhookActivatesAndServesBenefits(t *testing.T) {
	router := newTestRouter("")

	w := postWebhook(t, router, `{
		"claimId": "claim-7",
		"ethAddress": "0xABCDEF",
		"_attemptStatus": "success",
		"badgeId": "gold-vip-badge",
		"email": "member@example.com"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.TierActivated)
	assert.Equal(t, models.TierGold, *resp.TierActivated)
	assert.Equal(t, "Gold tier benefits activated", resp.Benefits)

	// Lookup is case-insensitive on the address.
	var status models.BenefitStatus
	w = getJSON(t, router, "/api/membership-benefits/0xabcdef/Gold", &status)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, status.Active)
	assert.NotNil(t, status.ClaimedAt)
	assert.EqualValues(t, 100, status.Benefits["bonusTokens"])
}

func TestWebhookSimulationAcknowledgedWithoutActivation(t *testing.T) {
	router := newTestRouter("")

	w := postWebhook(t, router, `{
		"claimId": "claim-7",
		"ethAddress": "0xabc",
		"_attemptStatus": "success",
		"_isSimulation": true,
		"badgeId": "gold-badge"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.TierActivated)
	assert.Equal(t, "simulation", resp.Reason)

	var status models.BenefitStatus
	getJSON(t, router, "/api/membership-benefits/0xabc/Gold", &status)
	assert.False(t, status.Active)
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	router := newTestRouter("expected-secret")

	w := postWebhook(t, router, `{
		"pluginSecret": "wrong",
		"ethAddress": "0xabc",
		"_attemptStatus": "success",
		"badgeId": "gold-badge"
	}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var status models.BenefitStatus
	getJSON(t, router, "/api/membership-benefits/0xabc/Gold", &status)
	assert.False(t, status.Active, "rejected webhook must not activate anything")
}

func TestWebhookRejectsUnparseablePayload(t *testing.T) {
	router := newTestRouter("")

	w := postWebhook(t, router, `{"ethAddress": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembershipSummary(t *testing.T) {
	router := newTestRouter("")

	postWebhook(t, router, `{"ethAddress": "0xabc", "_attemptStatus": "success", "badgeId": "silver-badge"}`)
	postWebhook(t, router, `{"ethAddress": "0xabc", "_attemptStatus": "success", "badgeId": "gold-badge"}`)

	var summary models.MembershipSummary
	w := getJSON(t, router, "/api/membership-benefits/0xABC", &summary)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, summary.HasMembership)
	assert.Equal(t, []models.TierName{models.TierSilver, models.TierGold}, summary.Tiers)

	var empty models.MembershipSummary
	getJSON(t, router, "/api/membership-benefits/0xnobody", &empty)
	assert.False(t, empty.HasMembership)
}

func TestLegacyGoldBenefitsRoute(t *testing.T) {
	router := newTestRouter("")

	postWebhook(t, router, `{"ethAddress": "0xabc", "_attemptStatus": "success", "badgeId": "gold-badge"}`)

	var legacy models.LegacyGoldBenefits
	w := getJSON(t, router, "/api/gold-benefits/0xabc", &legacy)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, legacy.HasGoldBenefits)
	assert.NotNil(t, legacy.ClaimedAt)

	var absent models.LegacyGoldBenefits
	getJSON(t, router, "/api/gold-benefits/0xnobody", &absent)
	assert.False(t, absent.HasGoldBenefits)
}

func TestWebhookUnknownTierHintFallsBackToBronze(t *testing.T) {
	router := newTestRouter("")

	w := postWebhook(t, router, `{"ethAddress": "0xabc", "_attemptStatus": "success", "badgeId": "badge-42"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.TierActivated)
	assert.Equal(t, models.TierBronze, *resp.TierActivated)
}

func TestWebhookContentTypeIsNotRequired(t *testing.T) {
	router := newTestRouter("")

	req := httptest.NewRequest(http.MethodPost, "/api/bitbadges-webhook",
		bytes.NewReader([]byte(`{"ethAddress": "0xabc", "_attemptStatus": "success"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
