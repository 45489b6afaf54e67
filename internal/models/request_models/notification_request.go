package request_models

type SendNotificationRequest struct {
	UserID string                 `json:"userId" binding:"required,uuid"`
	Title  string                 `json:"title" binding:"required,max=200"`
	Body   string                 `json:"body" binding:"required"`
	Type   string                 `json:"type" binding:"omitempty,max=32"`
	Data   map[string]interface{} `json:"data"`
}

type NotificationListQuery struct {
	IsRead *bool `form:"isRead"`
}

type StatisticsQuery struct {
	Interval string `form:"interval" binding:"omitempty,oneof=day week month"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
