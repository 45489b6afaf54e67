package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundwave/internal/models/db_models"
)

func hls(key string) db_models.Rendition {
	return db_models.Rendition{Type: db_models.RenditionHLS, StorageKey: key, Mime: "application/vnd.apple.mpegurl"}
}

func mp3(q db_models.RenditionQuality, key string) db_models.Rendition {
	return db_models.Rendition{Type: db_models.RenditionMP3, Quality: &q, StorageKey: key, Mime: "audio/mpeg"}
}

func TestSelectRendition(t *testing.T) {
	tests := []struct {
		name       string
		renditions []db_models.Rendition
		quality    Quality
		wantKey    string
		wantOK     bool
	}{
		{
			name:       "320 falls back to HLS",
			renditions: []db_models.Rendition{hls("a/master.m3u8")},
			quality:    Quality320,
			wantKey:    "a/master.m3u8",
			wantOK:     true,
		},
		{
			name:       "320 prefers exact MP3",
			renditions: []db_models.Rendition{hls("a/master.m3u8"), mp3(db_models.Quality320, "a/320.mp3")},
			quality:    Quality320,
			wantKey:    "a/320.mp3",
			wantOK:     true,
		},
		{
			name:       "hls has no MP3 fallback",
			renditions: []db_models.Rendition{mp3(db_models.Quality320, "a/320.mp3"), mp3(db_models.Quality128, "a/128.mp3")},
			quality:    QualityHLS,
			wantOK:     false,
		},
		{
			name:       "128 ignores 320",
			renditions: []db_models.Rendition{mp3(db_models.Quality320, "a/320.mp3"), mp3(db_models.Quality128, "a/128.mp3")},
			quality:    Quality128,
			wantKey:    "a/128.mp3",
			wantOK:     true,
		},
		{
			name:       "320 skips the other bitrate for HLS",
			renditions: []db_models.Rendition{mp3(db_models.Quality128, "a/128.mp3"), hls("a/master.m3u8")},
			quality:    Quality320,
			wantKey:    "a/master.m3u8",
			wantOK:     true,
		},
		{
			name:       "128 without MP3/128 or HLS",
			renditions: []db_models.Rendition{mp3(db_models.Quality320, "a/320.mp3")},
			quality:    Quality128,
			wantOK:     false,
		},
		{
			name:       "empty set",
			renditions: nil,
			quality:    Quality128,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectRendition(tt.renditions, tt.quality)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, got.StorageKey)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	q, ok := ParseQuality("")
	assert.True(t, ok)
	assert.Equal(t, QualityHLS, q)

	q, ok = ParseQuality("320")
	assert.True(t, ok)
	assert.Equal(t, Quality320, q)

	_, ok = ParseQuality("256")
	assert.False(t, ok)
}
