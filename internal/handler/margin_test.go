package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Margin-Position-Service/internal/handler/mocks"
	"Margin-Position-Service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*gin.Engine, *mocks.MarginService) {
	gin.SetMode(gin.TestMode)
	service := mocks.NewMarginService(t)
	router := gin.New()
	NewMargin(service).Register(router)
	return router, service
}

func TestMargin_OpenPosition(t *testing.T) {
	router, service := testRouter(t)

	userID := uuid.New()
	position := &model.MarginPosition{
		ID:             uuid.New(),
		UserID:         userID,
		BorrowedAmount: decimal.RequireFromString("5000.00"),
		Multiplier:     2,
		TransactionID:  "tx_12345",
		Status:         model.PositionOpen,
	}
	service.On("OpenMarginPosition", mock.Anything, userID, mock.AnythingOfType("decimal.Decimal"), int32(2), "tx_12345").
		Return(position, nil).Once()

	body := fmt.Sprintf(`{"userId":%q,"borrowedAmount":"5000.00","multiplier":2,"transactionId":"tx_12345"}`, userID)
	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/positions", bytes.NewBufferString(body))
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusCreated, w.Code)
	response := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, position.ID.String(), response["id"])
	require.Equal(t, string(model.PositionOpen), response["status"])
}

func TestMargin_OpenPosition_BadRequest(t *testing.T) {
	router, _ := testRouter(t)

	for _, body := range []string{
		`{}`,
		`{"userId":"not-a-uuid","borrowedAmount":"100","multiplier":2,"transactionId":"tx"}`,
		fmt.Sprintf(`{"userId":%q,"borrowedAmount":"not-a-number","multiplier":2,"transactionId":"tx"}`, uuid.New()),
	} {
		w := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/positions", bytes.NewBufferString(body))
		router.ServeHTTP(w, request)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestMargin_OpenPosition_ValidationError(t *testing.T) {
	router, service := testRouter(t)

	userID := uuid.New()
	service.On("OpenMarginPosition", mock.Anything, userID, mock.AnythingOfType("decimal.Decimal"), int32(2), "tx_12345").
		Return(nil, &model.ValidationError{Field: "borrowedAmount", Reason: "must be non-negative"}).Once()

	body := fmt.Sprintf(`{"userId":%q,"borrowedAmount":"-1","multiplier":2,"transactionId":"tx_12345"}`, userID)
	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/positions", bytes.NewBufferString(body))
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMargin_ClosePosition(t *testing.T) {
	router, service := testRouter(t)

	positionID := uuid.New()
	service.On("CloseMarginPosition", mock.Anything, positionID).
		Return(&model.MarginPosition{ID: positionID, Status: model.PositionClosed}, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/positions/%s/close", positionID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"CLOSED"}`, w.Body.String())
}

func TestMargin_ClosePosition_NotFound(t *testing.T) {
	router, service := testRouter(t)

	positionID := uuid.New()
	service.On("CloseMarginPosition", mock.Anything, positionID).Return(nil, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/positions/%s/close", positionID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMargin_ClosePosition_BadID(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/positions/not-a-uuid/close", nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMargin_GetPositionByID(t *testing.T) {
	router, service := testRouter(t)

	positionID := uuid.New()
	service.On("GetPositionByID", mock.Anything, positionID).
		Return(&model.MarginPosition{ID: positionID, Status: model.PositionOpen}, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/positions/%s", positionID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusOK, w.Code)
	response := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, positionID.String(), response["id"])
}

func TestMargin_GetPositionByID_NotFound(t *testing.T) {
	router, service := testRouter(t)

	positionID := uuid.New()
	service.On("GetPositionByID", mock.Anything, positionID).Return(nil, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/positions/%s", positionID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMargin_GetUserPositions(t *testing.T) {
	router, service := testRouter(t)

	userID := uuid.New()
	service.On("GetUserPositions", mock.Anything, userID, 5, 10).
		Return([]*model.MarginPosition{{ID: uuid.New(), UserID: userID, Status: model.PositionOpen}}, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/positions?limit=5&offset=10", userID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusOK, w.Code)
	response := map[string][]*model.MarginPosition{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response["positions"], 1)
}

func TestMargin_GetUserPositions_BadPagination(t *testing.T) {
	router, _ := testRouter(t)

	for _, query := range []string{"limit=0", "limit=abc", "offset=-1", "offset=abc"} {
		w := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/positions?%s", uuid.New(), query), nil)
		router.ServeHTTP(w, request)
		require.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestMargin_HasOpenPosition(t *testing.T) {
	router, service := testRouter(t)

	userID := uuid.New()
	service.On("HasOpenPosition", mock.Anything, userID).Return(true, nil).Once()

	w := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/positions/open", userID), nil)
	router.ServeHTTP(w, request)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"hasOpen":true}`, w.Body.String())
}
