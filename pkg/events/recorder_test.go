// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_events.go -source=./interfaces.go

func newTestRecorder(t *testing.T) (*Recorder, *MockStorageInterface, *MockPublisherInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockPublisher := NewMockPublisherInterface(ctrl)

	r := NewRecorder(mockStorage, mockPublisher, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return r, mockStorage, mockPublisher
}

func TestRecord(t *testing.T) {
	t.Run("appends and publishes", func(t *testing.T) {
		r, mockStorage, mockPublisher := newTestRecorder(t)

		var appended *types.MembershipEvent
		mockStorage.EXPECT().AppendMembershipEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *types.MembershipEvent) error {
				appended = e
				return nil
			})
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		err := r.Record(context.Background(), "tenant-1", "user-1", "owner-1", types.EventApproved)

		require.NoError(t, err)
		require.NotNil(t, appended)
		assert.Equal(t, "tenant-1", appended.TenantID)
		assert.Equal(t, "user-1", appended.UserID)
		assert.Equal(t, "owner-1", appended.ActorID)
		assert.Equal(t, types.EventApproved, appended.Action)
		assert.False(t, appended.CreatedAt.IsZero())
	})

	t.Run("publish failure does not fail the record", func(t *testing.T) {
		r, mockStorage, mockPublisher := newTestRecorder(t)
		mockStorage.EXPECT().AppendMembershipEvent(gomock.Any(), gomock.Any()).Return(nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		err := r.Record(context.Background(), "tenant-1", "user-1", "owner-1", types.EventRemoved)

		assert.NoError(t, err)
	})

	t.Run("append failure is returned and nothing is published", func(t *testing.T) {
		r, mockStorage, _ := newTestRecorder(t)
		mockStorage.EXPECT().AppendMembershipEvent(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := r.Record(context.Background(), "tenant-1", "user-1", "owner-1", types.EventRejected)

		assert.Error(t, err)
	})
}

func TestListByTenant(t *testing.T) {
	r, mockStorage, _ := newTestRecorder(t)

	expected := []*types.MembershipEvent{
		{TenantID: "tenant-1", Action: types.EventTenantCreated},
		{TenantID: "tenant-1", UserID: "user-1", Action: types.EventJoinRequested},
	}
	mockStorage.EXPECT().ListMembershipEventsByTenantID(gomock.Any(), "tenant-1").Return(expected, nil)

	got, err := r.ListByTenant(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
