package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/handler"
)

func TestWalletHandler_Connect(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		app := newTestApp(t)
		session := domain.Session{Connected: true, Address: "0x00000000000000000000000000000000000000aa"}
		app.bridge.On("Connect", mock.Anything).Return(session, nil)

		rec := app.do(t, http.MethodPost, "/wallet/connect", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.SessionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, session, resp.Session)
		assert.Len(t, resp.View.Field, domain.FieldSize)
	})

	t.Run("no wallet", func(t *testing.T) {
		app := newTestApp(t)
		app.bridge.On("Connect", mock.Anything).Return(domain.Session{}, domain.ErrWalletUnavailable)

		rec := app.do(t, http.MethodPost, "/wallet/connect", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestWalletHandler_Disconnect(t *testing.T) {
	app := newTestApp(t)
	app.bridge.On("Disconnect", mock.Anything).Return(domain.Session{}, nil)

	rec := app.do(t, http.MethodPost, "/wallet/disconnect", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Session.Connected)
}

func TestWalletHandler_Chain(t *testing.T) {
	app := newTestApp(t)
	notice := domain.NoticePayload{ID: "n1", Level: domain.NoticeInfo, Message: "Saved"}
	app.bridge.On("SaveToChain", mock.Anything).Return(notice, nil).Once()
	app.bridge.On("SaveToChain", mock.Anything).Return(domain.NoticePayload{}, domain.ErrTransactionReverted).Once()
	app.bridge.On("LoadFromChain", mock.Anything).Return(farm.Result{Applied: true, Action: domain.ActionApplyChain}, nil)

	rec := app.do(t, http.MethodPost, "/chain/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved handler.NoticeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&saved))
	assert.Equal(t, notice, saved.Notice)

	rec = app.do(t, http.MethodPost, "/chain/save", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, handler.ErrMsgRevertedError, errResp.Error)
	assert.NotEmpty(t, errResp.Reason)

	rec = app.do(t, http.MethodPost, "/chain/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeAction(t, rec).Applied)
}
