package update_slot_price

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/slots"
	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
)

type fakeSlots struct {
	got *models.UpdatePriceRequest
	err error
}

func (f *fakeSlots) UpdatePrice(_ context.Context, req *models.UpdatePriceRequest) (*models.PriceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.PriceResponse{SlotID: req.SlotID, Price: req.Price}, nil
}

func put(svc *fakeSlots, slotID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/slots/{slotId}/price", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/slots/"+slotID+"/price", strings.NewReader(body))
	req.Header.Set(middleware.OwnerIDHeader, uuid.NewString())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeSlots{}
	slotID := uuid.New()

	rec := put(svc, slotID.String(), `{"price": 950}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, slotID, resp.SlotID)
	assert.Equal(t, 950.0, resp.Price)
	assert.Equal(t, slotID, svc.got.SlotID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		slotID string
		body   string
		err    error
		want   int
	}{
		{name: "bad slot id", slotID: "abc", body: `{"price": 10}`, want: http.StatusBadRequest},
		{name: "bad body", slotID: uuid.NewString(), body: `{"price": "ten"}`, want: http.StatusBadRequest},
		{name: "below minimum", slotID: uuid.NewString(), body: `{"price": 0}`, err: slots.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", slotID: uuid.NewString(), body: `{"price": 10}`, err: slots.ErrSlotNotFound, want: http.StatusNotFound},
		{name: "foreign slot", slotID: uuid.NewString(), body: `{"price": 10}`, err: slots.ErrAccessDenied, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, put(&fakeSlots{err: tt.err}, tt.slotID, tt.body).Code)
		})
	}
}
