package models

type DashboardStats struct {
	Users    int64 `json:"users"`
	Tickets  int64 `json:"tickets"`
	Events   int64 `json:"events"`
	Messages int64 `json:"messages"`
}
