package model

// Tournament is a federation tournament record
type Tournament struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// News is a federation news article
type News struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

// UserStats is the admin overview returned by /users/stats/overview
type UserStats struct {
	TotalUsers      int `json:"totalUsers"`
	ActiveUsers     int `json:"activeUsers"`
	PendingApproval int `json:"pendingApproval"`
	Admins          int `json:"admins"`
}
