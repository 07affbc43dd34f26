package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraga-donus/backend/internal/domain"
)

func TestListCompostLogs_emptyIsEmptyArray(t *testing.T) {
	compost := &mockCompost{
		list: func(_ context.Context) ([]domain.CompostLog, error) { return nil, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/compost-logs", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(deps{compost: compost}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListCompostPairs_pairEnvelope(t *testing.T) {
	date := openapi_types.Date{}
	compost := &mockCompost{
		pairs: func(_ context.Context) ([]domain.CompostPair, error) {
			return []domain.CompostPair{{
				Date:    date,
				Control: &domain.CompostLog{Arm: domain.ArmControl, PlantHeight: 10},
				Compost: &domain.CompostLog{Arm: domain.ArmCompost, PlantHeight: 14},
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/compost-logs/pairs", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(deps{compost: compost}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.CompostPair `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.NotNil(t, body.Data[0].Compost)
	assert.InDelta(t, 14, body.Data[0].Compost.PlantHeight, 0.001)
}
