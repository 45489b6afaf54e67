package db_models

import "github.com/google/uuid"

type RenditionType string

const (
	RenditionMP3 RenditionType = "MP3"
	RenditionHLS RenditionType = "HLS"
)

type RenditionQuality string

const (
	Quality128 RenditionQuality = "Q128kbps"
	Quality320 RenditionQuality = "Q320kbps"
)

// Asset groups the encoded files of one song.
type Asset struct {
	BaseModel
	SongID     uuid.UUID   `gorm:"type:uuid;uniqueIndex"`
	Renditions []Rendition `gorm:"foreignKey:AssetID"`
}

// Rendition is one stored encoding. Quality is nil only for HLS.
// NULL qualities never collide in idx_rendition_variant, so the single HLS
// rendition per asset is held by the partial idx_rendition_single_hls.
type Rendition struct {
	BaseModel
	AssetID    uuid.UUID         `gorm:"type:uuid;uniqueIndex:idx_rendition_variant;uniqueIndex:idx_rendition_single_hls,where:quality IS NULL AND deleted_at IS NULL"`
	Type       RenditionType     `gorm:"size:8;uniqueIndex:idx_rendition_variant;uniqueIndex:idx_rendition_single_hls,where:quality IS NULL AND deleted_at IS NULL"`
	Quality    *RenditionQuality `gorm:"size:16;uniqueIndex:idx_rendition_variant"`
	Mime       string
	Bucket     string
	StorageKey string
}
