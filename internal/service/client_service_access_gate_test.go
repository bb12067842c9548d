// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-gate/internal/mock"
	"github.com/MKhiriev/go-chat-gate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccessGate_Init_Authorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetToken(ctx).Return("T1", nil)
	mockStore.EXPECT().GetUserIdentity(ctx).Return("hash", nil)

	gate := NewAccessGate(mockStore)
	require.NoError(t, gate.Init(ctx))

	assert.True(t, gate.Authorized())
	assert.Equal(t, "hash", gate.Identity())
}

func TestAccessGate_Init_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetToken(ctx).Return("", store.ErrCredentialNotFound)

	gate := NewAccessGate(mockStore)
	require.NoError(t, gate.Init(ctx))

	assert.False(t, gate.Authorized())
	assert.Empty(t, gate.Identity())
}

func TestAccessGate_Refresh_EmptyTokenIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetToken(ctx).Return("  ", nil)

	ok, err := NewAccessGate(mockStore).Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Refresh_TracksLoginAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()
	gate := NewAccessGate(mockStore)

	gomock.InOrder(
		mockStore.EXPECT().GetToken(ctx).Return("", store.ErrCredentialNotFound),
		mockStore.EXPECT().GetToken(ctx).Return("T1", nil),
		mockStore.EXPECT().GetUserIdentity(ctx).Return("hash", nil),
		mockStore.EXPECT().GetToken(ctx).Return("", store.ErrCredentialNotFound),
	)

	require.NoError(t, gate.Init(ctx))
	assert.False(t, gate.Authorized())

	ok, err := gate.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, gate.Authorized())

	ok, err = gate.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, gate.Identity())
}

func TestAccessGate_Refresh_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()
	gate := NewAccessGate(mockStore)

	gomock.InOrder(
		mockStore.EXPECT().GetToken(ctx).Return("T1", nil),
		mockStore.EXPECT().GetUserIdentity(ctx).Return("hash", nil),
		mockStore.EXPECT().GetToken(ctx).Return("", store.ErrStorageUnavailable),
	)

	require.NoError(t, gate.Init(ctx))

	ok, err := gate.Refresh(ctx)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	// the last good evaluation is kept
	assert.True(t, ok)
	assert.True(t, gate.Authorized())
}

func TestAccessGate_Refresh_IdentityErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockCredentialStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetToken(ctx).Return("T1", nil)
	mockStore.EXPECT().GetUserIdentity(ctx).Return("", errors.New("corrupt"))

	gate := NewAccessGate(mockStore)
	assert.ErrorIs(t, gate.Init(ctx), ErrStorage)
	assert.False(t, gate.Authorized())
}
