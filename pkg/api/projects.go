package api

import "time"

// Project statuses used by the moderation queue
const (
	ProjectStatusPending    = "pending"
	ProjectStatusPublished  = "published"
	ProjectStatusRejected   = "rejected"
	ProjectStatusWithDrafts = "with_drafts"
)

// Project is a published or moderated project
type Project struct {
	CreatedAt        time.Time     `json:"createdAt"`
	DraftSubmittedAt *time.Time    `json:"draftSubmittedAt,omitempty"`
	Draft            *ProjectDraft `json:"draft,omitempty"`
	CompanyID        *CompanyRef   `json:"companyId,omitempty"`
	Files            ProjectFiles  `json:"files"`
	ID               string        `json:"_id"`
	Slug             string        `json:"slug"`
	Title            string        `json:"title"`
	ShortDesc        string        `json:"shortDesc,omitempty"`
	LongDesc         string        `json:"longDesc,omitempty"`
	Status           string        `json:"status"`
	IconURL          string        `json:"iconUrl,omitempty"`
	ImageURLs        []string      `json:"imageUrls,omitempty"`
	Categories       []string      `json:"categories,omitempty"`
	Platforms        []string      `json:"platforms,omitempty"`
}

// ProjectFiles are the downloadable artifacts of a project
type ProjectFiles struct {
	App    *ProjectFile `json:"app,omitempty"`
	Code   *ProjectFile `json:"code,omitempty"`
	DocPDF *ProjectFile `json:"docPdf,omitempty"`
}

// FileTypeExternal marks an artifact hosted outside the platform
const FileTypeExternal = "external"

// ProjectFile is an uploaded file or an external link
type ProjectFile struct {
	Type     string `json:"type,omitempty"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

// Label returns the link for external files and the file name otherwise
func (f *ProjectFile) Label() string {
	if f == nil {
		return ""
	}
	if f.Type == FileTypeExternal {
		return f.URL
	}
	if f.FileName == "" {
		return "new file"
	}
	return f.FileName
}

// ProjectDraft holds pending edits submitted by the author
type ProjectDraft struct {
	Files     *ProjectFiles `json:"files,omitempty"`
	Title     string        `json:"title,omitempty"`
	ShortDesc string        `json:"shortDesc,omitempty"`
	LongDesc  string        `json:"longDesc,omitempty"`
	IconURL   string        `json:"iconUrl,omitempty"`
	ImageURLs []string      `json:"imageUrls,omitempty"`
}

// ProjectRequest creates or updates a project
type ProjectRequest struct {
	Title      string   `json:"title,omitempty"`
	ShortDesc  string   `json:"shortDesc,omitempty"`
	LongDesc   string   `json:"longDesc,omitempty"`
	Status     string   `json:"status,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Platforms  []string `json:"platforms,omitempty"`
}

// FeedbackRequest carries moderation feedback sent to the author
type FeedbackRequest struct {
	ExpiresInDays *int     `json:"expiresInDays,omitempty"`
	CustomMessage string   `json:"customMessage,omitempty"`
	Reasons       []string `json:"reasons"`
}

// DraftFeedbackRequest explains why a draft was rejected
type DraftFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// FeedbackReasons are the predefined moderation reasons keyed by action
type FeedbackReasons struct {
	Rejection map[string]string `json:"rejection"`
	Edit      map[string]string `json:"edit"`
	Warning   map[string]string `json:"warning"`
	Deletion  map[string]string `json:"deletion"`
}

// Review is a user review of a project
type Review struct {
	CreatedAt time.Time `json:"createdAt"`
	User      *UserRef  `json:"user,omitempty"`
	ID        string    `json:"_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
}

// ReviewRequest creates a review
type ReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
