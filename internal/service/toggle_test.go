package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/mock"
	"github.com/wanpc3/Data-Privacy-Protector/models"
	"go.uber.org/mock/gomock"
)

func newTestToggleSvc(t *testing.T, ctrl *gomock.Controller) (*ToggleService, *RegistryService, *mock.MockPortalAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockPortalAdapter(ctrl)
	registry := NewRegistryService(mockAdapter, logger.Nop())
	return NewToggleService(mockAdapter, registry, logger.Nop()), registry, mockAdapter
}

func partnerWithFile(state models.FileState) []models.Partner {
	return []models.Partner{
		{ID: "p1", Name: "Acme", Files: []models.File{{ID: "f1", Filename: "a.txt", State: state}}},
	}
}

func TestToggleService_Toggle_SendsComplementAndRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, registry, mockAdapter := newTestToggleSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil),
		mockAdapter.EXPECT().SetFileState(ctx, "f1", models.Deanonymized).Return(nil),
		mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Deanonymized), nil),
	)

	_, err := registry.Refresh(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, "p1", "f1"))

	file, ok := registry.FindFile("p1", "f1")
	require.True(t, ok)
	assert.Equal(t, models.Deanonymized, file.State)
}

func TestToggleService_Toggle_DeanonymizedGoesBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, registry, mockAdapter := newTestToggleSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Deanonymized), nil),
		mockAdapter.EXPECT().SetFileState(ctx, "f1", models.Anonymized).Return(nil),
		mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil),
	)

	_, err := registry.Refresh(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, "p1", "f1"))
}

func TestToggleService_Toggle_StaleReferenceIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, registry, mockAdapter := newTestToggleSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil)
	_, err := registry.Refresh(ctx)
	require.NoError(t, err)

	// No SetFileState expectation: a vanished file must not trigger a request.
	require.NoError(t, svc.Toggle(ctx, "p1", "gone"))
	require.NoError(t, svc.Toggle(ctx, "gone", "f1"))
}

func TestToggleService_Toggle_SecondToggleWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, registry, mockAdapter := newTestToggleSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil)
	_, err := registry.Refresh(ctx)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().SetFileState(ctx, "f1", models.Deanonymized).DoAndReturn(
		func(context.Context, string, models.FileState) error {
			close(started)
			<-release
			return nil
		},
	)
	mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Deanonymized), nil)

	done := make(chan error, 1)
	go func() { done <- svc.Toggle(ctx, "p1", "f1") }()

	<-started
	err = svc.Toggle(ctx, "p1", "f1")
	assert.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	require.NoError(t, <-done)

	// The lock is released once the first toggle resolves.
	mockAdapter.EXPECT().SetFileState(ctx, "f1", models.Anonymized).Return(nil)
	mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil)
	require.NoError(t, svc.Toggle(ctx, "p1", "f1"))
}

func TestToggleService_Toggle_BackendErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, registry, mockAdapter := newTestToggleSvc(t, ctrl)
	ctx := context.Background()

	backendErr := errors.New("internal server error")
	gomock.InOrder(
		mockAdapter.EXPECT().ListPartners(ctx).Return(partnerWithFile(models.Anonymized), nil),
		mockAdapter.EXPECT().SetFileState(ctx, "f1", models.Deanonymized).Return(backendErr),
	)

	_, err := registry.Refresh(ctx)
	require.NoError(t, err)

	err = svc.Toggle(ctx, "p1", "f1")
	assert.ErrorIs(t, err, backendErr)
}
