package share

import (
	"context"
	"errors"
	"testing"

	"brain-api/internal/apperr"
	"brain-api/internal/database"
	"brain-api/internal/mocks"
	"brain-api/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sequence(hashes ...string) func() string {
	i := 0
	return func() string {
		h := hashes[i%len(hashes)]
		i++
		return h
	}
}

func TestNewRegistry_HashShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, err := NewRegistry(mocks.NewMockStore(ctrl))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		hash := registry.newHash()
		require.Len(t, hash, HashLength)
		for _, c := range hash {
			require.Contains(t, HashAlphabet, string(c))
		}
	}
}

func TestRegistry_Enable(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a link when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		gomock.InOrder(
			store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).Return(nil, nil),
			store.EXPECT().CreateShareLink(gomock.Any(), userID, "erdctfbghu").
				Return(&models.ShareLink{UserID: userID, Hash: "erdctfbghu"}, nil),
		)

		hash, err := NewRegistryWithGenerator(store, sequence("erdctfbghu")).Enable(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, "erdctfbghu", hash)
	})

	t.Run("returns the existing hash without regenerating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).
			Return(&models.ShareLink{UserID: userID, Hash: "jmnxvyerdc"}, nil).Times(2)

		registry := NewRegistryWithGenerator(store, func() string {
			t.Fatal("hash generator must not run when a link exists")
			return ""
		})
		first, err := registry.Enable(context.Background(), userID)
		require.NoError(t, err)
		second, err := registry.Enable(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("regenerates on hash collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		gomock.InOrder(
			store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).Return(nil, nil),
			store.EXPECT().CreateShareLink(gomock.Any(), userID, "collision1").Return(nil, database.ErrHashTaken),
			store.EXPECT().CreateShareLink(gomock.Any(), userID, "freshhash1").
				Return(&models.ShareLink{UserID: userID, Hash: "freshhash1"}, nil),
		)

		hash, err := NewRegistryWithGenerator(store, sequence("collision1", "freshhash1")).Enable(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, "freshhash1", hash)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).Return(nil, nil)
		store.EXPECT().CreateShareLink(gomock.Any(), userID, "collision1").
			Return(nil, database.ErrHashTaken).Times(maxHashAttempts)

		_, err := NewRegistryWithGenerator(store, sequence("collision1")).Enable(context.Background(), userID)
		require.True(t, apperr.IsKind(err, apperr.KindInternal))
	})

	t.Run("loser of a concurrent enable returns the winner's hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		gomock.InOrder(
			store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).Return(nil, nil),
			store.EXPECT().CreateShareLink(gomock.Any(), userID, "loserhash1").Return(nil, database.ErrShareLinkExists),
			store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).
				Return(&models.ShareLink{UserID: userID, Hash: "winnerhash"}, nil),
		)

		hash, err := NewRegistryWithGenerator(store, sequence("loserhash1")).Enable(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, "winnerhash", hash)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByUserID(gomock.Any(), userID).Return(nil, errors.New("timeout"))

		_, err := NewRegistryWithGenerator(store, sequence("unused0000")).Enable(context.Background(), userID)
		require.True(t, apperr.IsKind(err, apperr.KindInternal))
	})
}

func TestRegistry_Disable(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().DeleteShareLinkByUserID(gomock.Any(), userID).Return(true, nil)
	store.EXPECT().DeleteShareLinkByUserID(gomock.Any(), userID).Return(false, nil)

	registry := NewRegistryWithGenerator(store, sequence("unused0000"))
	require.NoError(t, registry.Disable(context.Background(), userID))
	require.NoError(t, registry.Disable(context.Background(), userID), "Disabling without a link still succeeds")
}

func TestRegistry_Resolve(t *testing.T) {
	ownerID := uuid.New()
	link := &models.ShareLink{UserID: ownerID, Hash: "erdctfbghu"}
	content := []models.Content{
		{ID: uuid.New(), Title: "t", Link: "http://x", Tags: []string{}, Type: models.ContentTypeLink, UserID: ownerID},
	}

	t.Run("returns username and content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByHash(gomock.Any(), "erdctfbghu").Return(link, nil)
		store.EXPECT().ListContentByUser(gomock.Any(), ownerID).Return(content, nil)
		store.EXPECT().GetUserByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID, Username: "alice"}, nil)

		snapshot, err := NewRegistryWithGenerator(store, sequence("unused0000")).Resolve(context.Background(), "erdctfbghu")
		require.NoError(t, err)
		require.Equal(t, "alice", snapshot.Username)
		require.Equal(t, content, snapshot.Content)
	})

	t.Run("unknown hash is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByHash(gomock.Any(), "neverissued").Return(nil, nil)

		snapshot, err := NewRegistryWithGenerator(store, sequence("unused0000")).Resolve(context.Background(), "neverissued")
		require.Nil(t, snapshot)
		appErr := apperr.As(err)
		require.Equal(t, apperr.KindNotFound, appErr.Kind)
		require.Equal(t, "Invalid share link", appErr.Message)
	})

	t.Run("missing owner is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetShareLinkByHash(gomock.Any(), "erdctfbghu").Return(link, nil)
		store.EXPECT().ListContentByUser(gomock.Any(), ownerID).Return(content, nil)
		store.EXPECT().GetUserByID(gomock.Any(), ownerID).Return(nil, nil)

		_, err := NewRegistryWithGenerator(store, sequence("unused0000")).Resolve(context.Background(), "erdctfbghu")
		appErr := apperr.As(err)
		require.Equal(t, apperr.KindNotFound, appErr.Kind)
		require.Equal(t, "User not found", appErr.Message)
	})
}
