package api

import (
	"encoding/json"
	"time"
)

// Stats is the dashboard summary from /stats
type Stats struct {
	ProjectsByStatus map[string]int `json:"projectsByStatus,omitempty"`
	Users            int            `json:"users"`
	Projects         int            `json:"projects"`
	Companies        int            `json:"companies"`
}

// PingResponse is the health answer of /admin/ping
type PingResponse struct {
	Status string `json:"status"`
}

// PingStatusOnline is the status reported by a healthy server
const PingStatusOnline = "online"

// BackupExport is the answer of /admin/backup/export
// Data is kept raw: the console never interprets collections
type BackupExport struct {
	Data json.RawMessage `json:"data"`
	Size int64           `json:"size"`
}

// BackupSize is the answer of /admin/backup/size
type BackupSize struct {
	Size int64 `json:"size"`
}

// BackupCollections are the collections the server can export
var BackupCollections = []string{
	"users",
	"companies",
	"projects",
	"projectcategories",
	"roles",
	"reviews",
	"audits",
	"notifications",
}

// Notification is a message addressed to the current user
type Notification struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
}

// NotificationStats summarises notifications of the current user
type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}
