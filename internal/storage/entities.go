package storage

// Roles a message can carry. Display data only: PostGroupMessage always
// records RoleMember, the poster's actual standing in the group is not
// consulted.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Presence states for a direct-message contact.
const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
	StatusAway    = "Away"
)

// Author is the narrow identity a message-posting operation needs. Callers
// project it from whatever fuller shape they hold (a Session, usually).
type Author struct {
	Name   string
	Avatar string
}

// Group is a study group. Members is fixed at creation; there are no
// join/leave semantics.
type Group struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	Image       string `json:"image"`
}

// Message is a single chat entry, used both for group chat and inside
// direct-message threads. Time is a display label, not a parseable timestamp.
type Message struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Time    string `json:"time"`
	Role    string `json:"role"`
}

// DirectThread is a one-on-one conversation. LastMessage and Time mirror the
// tail of Messages and are updated together with every append.
type DirectThread struct {
	ID            int64     `json:"id"`
	ContactName   string    `json:"contactName"`
	ContactAvatar string    `json:"contactAvatar"`
	LastMessage   string    `json:"lastMessage"`
	Time          string    `json:"time"`
	Unread        int       `json:"unread"`
	Status        string    `json:"status"`
	Messages      []Message `json:"messages"`
}

// Activity is a read-only feed entry.
type Activity struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Target string `json:"target"`
	Time   string `json:"time"`
	Type   string `json:"type"`
}

// Resource is a read-only shared file reference.
type Resource struct {
	Name       string `json:"name"`
	Size       string `json:"size"`
	UploadedBy string `json:"uploadedBy"`
}
