package services

import "soundwave/internal/models/db_models"

// Quality is the tier a client asks for, not an exact encoding.
type Quality string

const (
	QualityHLS Quality = "hls"
	Quality320 Quality = "320"
	Quality128 Quality = "128"
)

func ParseQuality(raw string) (Quality, bool) {
	switch Quality(raw) {
	case "":
		return QualityHLS, true
	case QualityHLS, Quality320, Quality128:
		return Quality(raw), true
	default:
		return "", false
	}
}

// renditionRule matches on type, and on quality only when quality is set.
type renditionRule struct {
	typ     db_models.RenditionType
	quality *db_models.RenditionQuality
}

func qualityPtr(q db_models.RenditionQuality) *db_models.RenditionQuality {
	return &q
}

// Rules are tried in order; HLS is the fallback for the MP3 tiers.
var selectionPolicy = map[Quality][]renditionRule{
	QualityHLS: {
		{typ: db_models.RenditionHLS},
	},
	Quality320: {
		{typ: db_models.RenditionMP3, quality: qualityPtr(db_models.Quality320)},
		{typ: db_models.RenditionHLS},
	},
	Quality128: {
		{typ: db_models.RenditionMP3, quality: qualityPtr(db_models.Quality128)},
		{typ: db_models.RenditionHLS},
	},
}

func (r renditionRule) matches(rd db_models.Rendition) bool {
	if rd.Type != r.typ {
		return false
	}
	if r.quality == nil {
		return true
	}
	return rd.Quality != nil && *rd.Quality == *r.quality
}

// SelectRendition returns the first rendition satisfying the policy for the
// requested tier. ok is false when nothing matches, which is not an error.
func SelectRendition(renditions []db_models.Rendition, quality Quality) (db_models.Rendition, bool) {
	for _, rule := range selectionPolicy[quality] {
		for _, rd := range renditions {
			if rule.matches(rd) {
				return rd, true
			}
		}
	}
	return db_models.Rendition{}, false
}
