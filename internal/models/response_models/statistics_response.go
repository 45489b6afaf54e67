package response_models

import (
	"time"

	"github.com/shopspring/decimal"

	"soundwave/pkg/utils"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
}

type Totals struct {
	Users               int64 `json:"users"`
	Songs               int64 `json:"songs"`
	Artists             int64 `json:"artists"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
}

type RevenuePoint struct {
	Bucket       time.Time       `json:"bucket"`
	Amount       decimal.Decimal `json:"amount"`
	Transactions int64           `json:"transactions"`
}

type RevenueSeries struct {
	Points []RevenuePoint  `json:"points"`
	Total  decimal.Decimal `json:"total"`
}

type PlanMixItem struct {
	PlanID   string          `json:"planId"`
	PlanCode string          `json:"planCode"`
	PlanName string          `json:"planName"`
	Price    decimal.Decimal `json:"price"`
	Count    int64           `json:"count"`
	Percent  float64         `json:"percent"`
}

type TopSong struct {
	SongID    string `json:"songId"`
	Title     string `json:"title"`
	Favorites int64  `json:"favorites"`
}

type RecentPayment struct {
	ID                   utils.SafeInt64 `json:"id"`
	TransactionReference string          `json:"transactionReference"`
	Amount               decimal.Decimal `json:"amount"`
	CompletedAt          time.Time       `json:"completedAt"`
	Email                string          `json:"email"`
}

type StatisticsOverview struct {
	Range          TimeRange       `json:"range"`
	Totals         Totals          `json:"totals"`
	Revenue        RevenueSeries   `json:"revenue"`
	PlanMix        []PlanMixItem   `json:"planMix"`
	TopSongs       []TopSong       `json:"topSongs"`
	RecentPayments []RecentPayment `json:"recentPayments"`
}
