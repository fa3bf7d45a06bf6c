package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/pkg/api"
)

// recordedRequest is what the fake server saw
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func TestEndpoints_Routing(t *testing.T) {
	ctx := context.Background()
	days := 7

	tests := []struct {
		call func(c *Client) error
		want recordedRequest
		name string
	}{
		{
			name: "public projects with params",
			call: func(c *Client) error {
				_, err := c.PublicProjects(ctx, url.Values{"platform": {"Android"}})
				return err
			},
			want: recordedRequest{Method: "GET", Path: "/projects", Query: "platform=Android"},
		},
		{
			name: "reviews",
			call: func(c *Client) error { _, err := c.Reviews(ctx, "p1"); return err },
			want: recordedRequest{Method: "GET", Path: "/reviews/p1/reviews"},
		},
		{
			name: "invite code",
			call: func(c *Client) error { _, err := c.InviteCode(ctx, "c1"); return err },
			want: recordedRequest{Method: "POST", Path: "/companies/c1/invite"},
		},
		{
			name: "update member roles",
			call: func(c *Client) error {
				_, err := c.UpdateMemberRoles(ctx, "c1", "u2", []string{"backend"})
				return err
			},
			want: recordedRequest{Method: "PUT", Path: "/companies/c1/members/u2", Body: `{"roles":["backend"]}`},
		},
		{
			name: "remove member",
			call: func(c *Client) error { _, err := c.RemoveMember(ctx, "c1", "u2"); return err },
			want: recordedRequest{Method: "DELETE", Path: "/companies/c1/members/u2"},
		},
		{
			name: "admin projects by status",
			call: func(c *Client) error { _, err := c.AdminProjects(ctx, api.ProjectStatusPending); return err },
			want: recordedRequest{Method: "GET", Path: "/admin/projects", Query: "status=pending"},
		},
		{
			name: "send to author",
			call: func(c *Client) error {
				_, err := c.SendProjectToAuthor(ctx, "p1", api.FeedbackRequest{Reasons: []string{"missing_docs"}, ExpiresInDays: &days})
				return err
			},
			want: recordedRequest{Method: "POST", Path: "/admin/projects/p1/send-to-author", Body: `{"expiresInDays":7,"reasons":["missing_docs"]}`},
		},
		{
			name: "delete project admin",
			call: func(c *Client) error {
				_, err := c.DeleteProjectAdmin(ctx, "p1", api.FeedbackRequest{Reasons: []string{"spam"}})
				return err
			},
			want: recordedRequest{Method: "DELETE", Path: "/admin/projects/p1", Body: `{"reasons":["spam"]}`},
		},
		{
			name: "reject draft",
			call: func(c *Client) error { _, err := c.RejectDraft(ctx, "p1", "blurry screenshots"); return err },
			want: recordedRequest{Method: "POST", Path: "/admin/projects/p1/reject-draft", Body: `{"feedback":"blurry screenshots"}`},
		},
		{
			name: "clear rejected draft",
			call: func(c *Client) error { _, err := c.ClearRejectedDraft(ctx, "p1"); return err },
			want: recordedRequest{Method: "DELETE", Path: "/projects/p1/clear-draft"},
		},
		{
			name: "reset user password with email",
			call: func(c *Client) error { _, err := c.ResetUserPassword(ctx, "u1", "ann@example.com"); return err },
			want: recordedRequest{Method: "POST", Path: "/admin/users/u1/reset-password", Body: `{"email":"ann@example.com"}`},
		},
		{
			name: "reset user password without email",
			call: func(c *Client) error { _, err := c.ResetUserPassword(ctx, "u1", ""); return err },
			want: recordedRequest{Method: "POST", Path: "/admin/users/u1/reset-password"},
		},
		{
			name: "backup size for collections",
			call: func(c *Client) error { _, err := c.BackupSize(ctx, []string{"users", "roles"}); return err },
			want: recordedRequest{Method: "GET", Path: "/admin/backup/size", Query: "collections=users%2Croles"},
		},
		{
			name: "verify company",
			call: func(c *Client) error { _, err := c.VerifyCompany(ctx, "c1", true); return err },
			want: recordedRequest{Method: "PATCH", Path: "/admin/companies/c1/verify", Body: `{"isVerified":true}`},
		},
		{
			name: "mark notification read",
			call: func(c *Client) error { _, err := c.MarkNotificationRead(ctx, "n1"); return err },
			want: recordedRequest{Method: "PATCH", Path: "/notifications/n1/read"},
		},
		{
			name: "roles by category code",
			call: func(c *Client) error { _, err := c.RolesByCategoryCode(ctx, "dev"); return err },
			want: recordedRequest{Method: "GET", Path: "/roles/by-category-code/dev"},
		},
		{
			name: "seed catalog",
			call: func(c *Client) error { _, err := c.SeedCatalog(ctx); return err },
			want: recordedRequest{Method: "POST", Path: "/seed"},
		},
		{
			name: "confirm reset password",
			call: func(c *Client) error { _, err := c.ConfirmResetPassword(ctx, "tok", "n3wPass!"); return err },
			want: recordedRequest{Method: "POST", Path: "/auth/confirm-reset-password", Body: `{"token":"tok","newPassword":"n3wPass!"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recordedRequest
			env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				got = recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)}
				w.WriteHeader(http.StatusOK)
			})
			env.login(t)

			require.NoError(t, tt.call(env.client))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpoints_DecodeTyped(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stats":
			writeJSON(w, http.StatusOK, `{"users":12,"projects":30,"companies":4,"projectsByStatus":{"pending":3}}`)
		case "/platforms":
			writeJSON(w, http.StatusOK, `["Android","iOS","Web"]`)
		case "/admin/feedback-reasons":
			writeJSON(w, http.StatusOK, `{"rejection":{"spam":"Spam"},"edit":{},"warning":{},"deletion":{}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	env.login(t)
	ctx := context.Background()

	stats, err := env.client.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Users)
	assert.Equal(t, 3, stats.ProjectsByStatus[api.ProjectStatusPending])

	platforms, err := env.client.Platforms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Android", "iOS", "Web"}, platforms)

	reasons, err := env.client.FeedbackReasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Spam", reasons.Rejection["spam"])

	_, err = env.client.Company(ctx, "missing")
	assert.Equal(t, "Error 404: Not Found", err.Error())
}

func TestDownloads(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/downloads/app/p1", r.URL.Path)
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
		})
		env.login(t)

		data, err := env.client.DownloadApp(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, data)
	})

	tests := []struct {
		download func(c *Client) ([]byte, error)
		name     string
		wantMsg  string
	}{
		{name: "app", download: func(c *Client) ([]byte, error) { return c.DownloadApp(ctx, "p1") }, wantMsg: "failed to download application"},
		{name: "code", download: func(c *Client) ([]byte, error) { return c.DownloadCode(ctx, "p1") }, wantMsg: "failed to download source code"},
		{name: "doc", download: func(c *Client) ([]byte, error) { return c.DownloadDoc(ctx, "p1") }, wantMsg: "failed to download documentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" fails with fixed message", func(t *testing.T) {
			env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, `{"message":"File missing on disk"}`)
			})
			env.login(t)

			data, err := tt.download(env.client)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusNotFound, StatusCode(err))
		})
	}

	t.Run("401 ends session", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		env.login(t)

		data, err := env.client.DownloadCode(ctx, "p1")
		assert.NoError(t, err)
		assert.Nil(t, data)
		assert.Equal(t, []string{session.ReasonExpiredRelogin}, env.logouts.reasons())
	})
}

func TestImportBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("posts raw document", func(t *testing.T) {
		raw := []byte(`{"users":[{"_id":"1"}]}`)
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/admin/backup/import", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, string(raw), string(body))
			writeJSON(w, http.StatusOK, `{"message":"Backup restored"}`)
		})
		env.login(t)

		resp, err := env.client.ImportBackup(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, "Backup restored", resp.Message)
	})

	t.Run("invalid json is not sent", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		})
		env.login(t)

		_, err := env.client.ImportBackup(ctx, []byte(`{"users":`))
		assert.Error(t, err)
	})
}

func TestAllCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("from export", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/backup/export", r.URL.Path)
			assert.Equal(t, "companies", r.URL.Query().Get("collections"))
			export := api.BackupExport{
				Data: json.RawMessage(`{"companies":[{"_id":"c1","name":"Acme","members":[]}]}`),
				Size: 64,
			}
			data, _ := json.Marshal(export)
			writeJSON(w, http.StatusOK, string(data))
		})
		env.login(t)

		companies, err := env.client.AllCompanies(ctx)
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "Acme", companies[0].Name)
	})

	t.Run("falls back to empty list", func(t *testing.T) {
		var usersCalled bool
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/admin/backup/export":
				writeJSON(w, http.StatusInternalServerError, `{"message":"export disabled"}`)
			case "/admin/users":
				usersCalled = true
				writeJSON(w, http.StatusOK, `[{"_id":"u1","username":"ann","companiesCount":2}]`)
			}
		})
		env.login(t)

		companies, err := env.client.AllCompanies(ctx)
		require.NoError(t, err)
		assert.NotNil(t, companies)
		assert.Empty(t, companies)
		assert.True(t, usersCalled)
	})
}
