package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/pkg/utils"
)

func playlistOf(owner uuid.UUID, public bool) *db_models.Playlist {
	p := &db_models.Playlist{UserID: owner, Name: "Road trip", IsPublic: public}
	p.ID = uuid.New()
	return p
}

func TestPlaylistService_Visibility(t *testing.T) {
	ctx := context.Background()
	owner := utils.Actor{UserID: uuid.New(), Role: utils.RoleUser}
	stranger := utils.Actor{UserID: uuid.New(), Role: utils.RoleUser}

	private := playlistOf(owner.UserID, false)
	public := playlistOf(owner.UserID, true)

	repo := new(MockPlaylistRepository)
	repo.On("FindByID", ctx, private.ID).Return(private, nil)
	repo.On("FindByID", ctx, public.ID).Return(public, nil)
	svc := NewPlaylistService(repo, new(MockSongRepository), testLogger)

	_, err := svc.GetPlaylist(ctx, owner, private.ID)
	assert.NoError(t, err)

	_, err = svc.GetPlaylist(ctx, stranger, private.ID)
	assert.ErrorIs(t, err, utils.ErrPlaylistNotFound)

	res, err := svc.GetPlaylist(ctx, stranger, public.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.UserID.String(), res.OwnerID)

	_, err = svc.UpdatePlaylist(ctx, stranger, public.ID, request_models.PlaylistRequest{Name: "mine now"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = svc.DeletePlaylist(ctx, stranger, private.ID)
	assert.ErrorIs(t, err, utils.ErrPlaylistNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaylistService_AddSong(t *testing.T) {
	ctx := context.Background()
	owner := utils.Actor{UserID: uuid.New(), Role: utils.RoleUser}
	playlist := playlistOf(owner.UserID, false)
	songID := uuid.New()

	t.Run("appends existing song", func(t *testing.T) {
		withSong := *playlist
		withSong.Songs = []db_models.PlaylistSong{{PlaylistID: playlist.ID, SongID: songID, Position: 1, Song: &db_models.Song{Title: "Intro"}}}

		repo := new(MockPlaylistRepository)
		repo.On("FindByID", ctx, playlist.ID).Return(playlist, nil).Once()
		repo.On("AddSong", ctx, playlist.ID, songID).Return(nil)
		repo.On("FindByID", ctx, playlist.ID).Return(&withSong, nil).Once()
		songs := new(MockSongRepository)
		songs.On("FindByID", ctx, songID).Return(&db_models.Song{Title: "Intro"}, nil)

		svc := NewPlaylistService(repo, songs, testLogger)
		res, err := svc.AddSong(ctx, owner, playlist.ID, songID)

		require.NoError(t, err)
		require.Len(t, res.Songs, 1)
		assert.Equal(t, 1, res.Songs[0].Position)
		assert.Equal(t, "Intro", res.Songs[0].Title)
	})

	t.Run("unknown song", func(t *testing.T) {
		repo := new(MockPlaylistRepository)
		repo.On("FindByID", ctx, playlist.ID).Return(playlist, nil)
		songs := new(MockSongRepository)
		songs.On("FindByID", ctx, songID).Return(nil, nil)

		svc := NewPlaylistService(repo, songs, testLogger)
		_, err := svc.AddSong(ctx, owner, playlist.ID, songID)

		assert.ErrorIs(t, err, utils.ErrSongNotFound)
		repo.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything, mock.Anything)
	})
}
