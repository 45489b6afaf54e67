package services

import (
	"soundwave/internal/models/db_models"
	"soundwave/internal/models/response_models"
	"soundwave/pkg/utils"
)

func toUserResponse(u *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toArtistResponse(a *db_models.Artist) response_models.ArtistResponse {
	return response_models.ArtistResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
		Genres:    nonNilStrings(a.Genres),
	}
}

func toSongResponse(s *db_models.Song) response_models.SongResponse {
	res := response_models.SongResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		ArtistID:        s.ArtistID.String(),
		AlbumName:       s.AlbumName,
		DurationSeconds: s.DurationSeconds,
		CoverURL:        s.CoverURL,
		Genres:          nonNilStrings(s.Genres),
		PlayCount:       s.PlayCount,
		ReleaseDate:     s.ReleaseDate,
	}
	if s.Artist != nil {
		artist := toArtistResponse(s.Artist)
		res.Artist = &artist
	}
	return res
}

func toGenreResponse(g *db_models.Genre) response_models.GenreResponse {
	return response_models.GenreResponse{ID: g.ID.String(), Name: g.Name, Icon: g.Icon}
}

func toPlanResponse(p *db_models.SubscriptionPlan) response_models.SubscriptionPlan {
	return response_models.SubscriptionPlan{
		ID:           p.ID.String(),
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
		Features:     p.Features,
	}
}

func toPaymentMethodResponse(m *db_models.PaymentMethod) response_models.PaymentMethod {
	return response_models.PaymentMethod{ID: utils.SafeInt64(m.ID), Code: m.Code, Name: m.Name}
}

func toSubscriptionResponse(s *db_models.Subscription) response_models.SubscriptionResponse {
	res := response_models.SubscriptionResponse{
		ID:         utils.SafeInt64(s.ID),
		PlanID:     s.PlanID.String(),
		IsActive:   s.IsActive,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		CanceledAt: s.CanceledAt,
	}
	if s.Plan != nil {
		plan := toPlanResponse(s.Plan)
		res.Plan = &plan
	}
	return res
}

func toTransactionResponse(t *db_models.Transaction) response_models.TransactionResponse {
	res := response_models.TransactionResponse{
		ID:                   utils.SafeInt64(t.ID),
		UserID:               t.UserID.String(),
		Amount:               t.Amount,
		PaymentMethodID:      utils.SafeInt64(t.PaymentMethodID),
		TransactionStatus:    string(t.TransactionStatus),
		TransactionReference: t.Reference(),
		InvoiceData:          t.InvoiceData,
		CreatedAt:            t.CreatedAt,
	}
	if t.SubscriptionID != nil {
		id := utils.SafeInt64(*t.SubscriptionID)
		res.SubscriptionID = &id
	}
	return res
}

func toPlaylistResponse(p *db_models.Playlist) response_models.PlaylistResponse {
	res := response_models.PlaylistResponse{
		ID:          p.ID.String(),
		OwnerID:     p.UserID.String(),
		Name:        p.Name,
		Description: p.Description,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
	}
	for _, ps := range p.Songs {
		item := response_models.PlaylistSongResponse{
			SongID:   ps.SongID.String(),
			Position: ps.Position,
			AddedAt:  ps.AddedAt,
		}
		if ps.Song != nil {
			item.Title = ps.Song.Title
		}
		res.Songs = append(res.Songs, item)
	}
	return res
}

func toNotificationResponse(n *db_models.Notification) response_models.NotificationResponse {
	return response_models.NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Body:      n.Body,
		Type:      n.Type,
		IsRead:    n.IsRead,
		Data:      n.Data,
		CreatedAt: n.CreatedAt,
	}
}

func toRatingResponse(r *db_models.Rating) response_models.RatingResponse {
	return response_models.RatingResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		SongID:    r.SongID.String(),
		Score:     r.Score,
		Comment:   r.Comment,
		UpdatedAt: r.UpdatedAt,
	}
}

// mapSlice converts repository rows with fn, taking each element by pointer.
func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
