package cli

import (
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/devhub-admin/internal/client/admin"
)

var funcs = template.FuncMap{
	"join": strings.Join,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("2006-01-02 15:04")
	},
	"size": admin.FormatSize,
	"mark": func(b bool) string {
		if b {
			return "✓"
		}
		return " "
	},
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

const usageText = `DevHub Admin Console

Usage:
  devhub-admin [OPTIONS] COMMAND [ARGS]

Options:
  -version               Show version information
  -server URL            API base URL (env DEVHUB_SERVER, default http://localhost:8080/api)
  -db PATH               Session database (env DEVHUB_DB, default devhub-admin.db)
  -history-db PATH       Backup history database (env DEVHUB_HISTORY_DB)
  -login-url URL         Login page shown when the session ends (env DEVHUB_LOGIN_URL)
  -log-level LEVEL       debug, info, warn or error (env DEVHUB_LOG_LEVEL, default warn)
  -log-format FORMAT     text or json
  -timeout DURATION      HTTP request timeout (env DEVHUB_TIMEOUT, default 30s)
  -backup-dir PATH       Directory for exported backups (default .)
  -no-color              Disable colored notifications

Session:
  login                          Sign in with email and password
  logout                         Close the session
  status                         Show the session state
  whoami                         Show the signed in user
  forgot-password <email>        Send a password reset link
  reset-password <token>         Set a new password with a reset token

Administration:
  dashboard                                   Platform counters
  users list [-search S] [-role R] [-page N]  Browse users
  users reset-password <id> [-email E]        Send a reset link to a user
  companies list [-search S] [-members 1|2-5|6+]
  companies show <id>
  companies verify|unverify <id>
  companies rankings
  companies delete <id>
  companies roles <company-id> <user-id> <role,...>
  companies remove-member <company-id> <user-id>
  projects list [-status S] [-search S] [-category C] [-platform P]
  projects counts | reasons
  projects publish <id>
  projects reject|warn|delete|send <id> -reasons a,b [-message M] [-days N]
  projects drafts
  projects draft <id>
  projects approve-draft <id>
  projects reject-draft <id> -feedback F
  categories list | seed
  categories save -code C -name N [-description D] [-id ID]
  categories delete <id>
  roles list [-category ID]
  roles save -code C -name N -category ID [-description D] [-id ID]
  roles delete <id>
  notifications list [-unread] [-limit N]
  notifications stats | read-all
  notifications read|delete <id>
  backup export [-collections a,b] [-quick]
  backup import <file>
  backup history [-limit N]
  backup size [-collections a,b]

Tools:
  ping                   Check that the server is online
  watch                  Monitor the server and the session until interrupted
  theme [dark|light]     Show or set the color theme
`

var loginTemplate = mustTemplate("login", `
✓ Login successful!
User:    {{.Username}} <{{.Email}}>
Role:    {{.Role}}
Expires: {{date .ExpiresAt}}
{{- if not .IsAdmin }}

⚠️  This account is not an administrator: admin commands will be rejected.
{{- end }}
`)

var statusTemplate = mustTemplate("status", `=== Session Status ===

{{- if .Authenticated }}
Status:         Authenticated
User:           {{.Claims.Username}}
Role:           {{.Claims.Role}}
Token expires:  {{date .ExpiresAt}}
Time remaining: {{.Remaining}}
{{- else }}
Status: Not authenticated ({{.Reason}})

Run 'devhub-admin login' to authenticate.
{{- end }}
`)

var whoamiTemplate = mustTemplate("whoami", `ID:       {{.ID}}
Username: {{.Username}}
Email:    {{.Email}}
Role:     {{.Role}}
`)

var dashboardTemplate = mustTemplate("dashboard", `=== Dashboard ===

Users:     {{.Stats.Users}}
Companies: {{.Stats.Companies}}
Projects:  {{.Stats.Projects}}
{{- range $status, $n := .Stats.ProjectsByStatus }}
  {{ printf "%-10s" $status }} {{ $n }}
{{- end }}
Pending drafts: {{.Drafts}}
`)

var usersTemplate = mustTemplate("users", `=== Users ===
Total: {{.Stats.Total}}  Admins: {{.Stats.Admins}}  Shown: {{.Stats.Filtered}}

{{- if eq .Page.Total 0 }}

No users match the filter.
{{- else }}
{{ range .Page.Items }}
- {{ .Username }} ({{ .Role }})
   ID:     {{ .ID }}
   Email:  {{ .Email }}
   Joined: {{ date .CreatedAt }}
{{- end }}

Showing {{.Page.From}}-{{.Page.To}} of {{.Page.Total}} (page {{.Page.Number}}/{{.Page.TotalPages}})
{{- end }}
`)

var companiesTemplate = mustTemplate("companies", `=== Companies ===

{{- if eq (len .) 0 }}

No companies match the filter.
{{- else }}
{{ range . }}
- [{{ mark .IsVerified }}] {{ .Name }}
   ID:      {{ .ID }}
   {{- with .OwnerID }}
   Owner:   {{ .Username }}
   {{- end }}
   Members: {{ len .Members }}
{{- end }}
{{- end }}
`)

var companyTemplate = mustTemplate("company", `=== {{.Name}} ===

ID:       {{.ID}}
Verified: {{ if .IsVerified }}yes{{ else }}no{{ end }}
{{- with .OwnerID }}
Owner:    {{ .Username }}
{{- end }}
{{- if .Description }}

{{ .Description }}
{{- end }}

Members:
{{- range .Members }}
- {{ if .Username }}{{ .Username }}{{ else }}{{ .ID }}{{ end }} ({{ join .Roles ", " }})
{{- end }}
`)

var rankingsTemplate = mustTemplate("rankings", `=== Company Rankings ===
{{ range $i, $c := . }}
{{ printf "%2d" $c.Ranking }}. {{ $c.Name }} ({{ printf "%.1f" $c.RankingScore }})
{{- end }}
`)

var projectsTemplate = mustTemplate("projects", `=== Projects ({{.Status}}) ===

{{- if eq (len .Projects) 0 }}

No projects found.
{{- else }}
{{ range .Projects }}
- {{ .Title }} [{{ .Status }}]
   ID:         {{ .ID }}
   {{- with .CompanyID }}
   Company:    {{ if .Name }}{{ .Name }}{{ else }}{{ .ID }}{{ end }}
   {{- end }}
   {{- if .Categories }}
   Categories: {{ join .Categories ", " }}
   {{- end }}
   {{- if .Platforms }}
   Platforms:  {{ join .Platforms ", " }}
   {{- end }}
   Created:    {{ date .CreatedAt }}
{{- end }}
{{- end }}
`)

var countsTemplate = mustTemplate("counts", `=== Moderation Queue ===
{{ range .Statuses }}
{{ printf "%-12s" . }} {{ index $.Counts . }}
{{- end }}
`)

var reasonsTemplate = mustTemplate("reasons", `=== Feedback Reasons ===
{{- define "group" }}
{{- range $code, $text := . }}
  {{ printf "%-24s" $code }} {{ $text }}
{{- end }}
{{- end }}

Rejection:{{ template "group" .Rejection }}
Edit:{{ template "group" .Edit }}
Warning:{{ template "group" .Warning }}
Deletion:{{ template "group" .Deletion }}
`)

var draftTemplate = mustTemplate("draft", `=== Draft of {{.Project.Title}} ===
ID: {{.Project.ID}}
{{- if .Project.DraftSubmittedAt }}
Submitted: {{ date .Project.DraftSubmittedAt }}
{{- end }}

{{- if eq (len .Changes) 0 }}

The draft changes nothing.
{{- else }}
{{ range .Changes }}
{{ .Field }}:
   current:  {{ .Current }}
   proposed: {{ .Proposed }}
{{- end }}
{{- end }}
`)

var draftsTemplate = mustTemplate("drafts", `=== Pending Drafts ===

{{- if eq (len .) 0 }}

No pending drafts.
{{- else }}
{{ range . }}
- {{ .Title }} ({{ .Changes }} change(s))
   ID: {{ .ID }}
{{- end }}
{{- end }}
`)

var categoriesTemplate = mustTemplate("categories", `=== Categories ===

{{- if eq (len .) 0 }}

No categories. Run 'devhub-admin categories seed' to load the defaults.
{{- else }}
{{ range . }}
- {{ .Name }} ({{ .Code }})
   ID: {{ .ID }}
   {{- range .Roles }}
   · {{ .Name }} ({{ .Code }})
   {{- end }}
{{- end }}
{{- end }}
`)

var rolesTemplate = mustTemplate("roles", `=== Roles ===

{{- if eq (len .) 0 }}

No roles found.
{{- else }}
{{ range . }}
- {{ .Name }} ({{ .Code }})
   ID: {{ .ID }}
{{- end }}
{{- end }}
`)

var notificationsTemplate = mustTemplate("notifications", `=== Notifications ===

{{- if eq (len .) 0 }}

No notifications.
{{- else }}
{{ range . }}
- {{ if .Read }} {{ else }}•{{ end }} {{ .Title }}
   {{ .Message }}
   ID: {{ .ID }}  {{ date .CreatedAt }}
{{- end }}
{{- end }}
`)

var backupHistoryTemplate = mustTemplate("history", `=== Backup History ===
{{- if .HasLast }}
Last backup: {{ .LastSince }}
{{- end }}

{{- if eq (len .Records) 0 }}

No backups exported yet.
{{- else }}
{{ range .Records }}
- {{ date .CreatedAt }}  {{ size .Size }}  {{ join .Collections ", " }}
{{- end }}
{{- end }}
`)
