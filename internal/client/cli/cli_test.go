package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/client/auth"
	"github.com/iudanet/cardkeeper/internal/client/iocli"
	"github.com/iudanet/cardkeeper/internal/client/storage"
	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/scan"
	"github.com/iudanet/cardkeeper/pkg/api"
)

const testServerURL = "http://localhost:8080"

// console IOMock с записью вывода и заранее заданным вводом
type console struct {
	*iocli.IOMock
	out     bytes.Buffer
	prompts []string
	inputs  []string
}

func newConsole(inputs ...string) *console {
	c := &console{inputs: inputs}
	read := func(prompt string) (string, error) {
		c.prompts = append(c.prompts, prompt)
		if len(c.inputs) == 0 {
			return "", io.EOF
		}
		v := c.inputs[0]
		c.inputs = c.inputs[1:]
		return v, nil
	}
	c.IOMock = &iocli.IOMock{
		PrintlnFunc:      func(a ...any) { _, _ = fmt.Fprintln(&c.out, a...) },
		PrintfFunc:       func(format string, a ...any) { _, _ = fmt.Fprintf(&c.out, format, a...) },
		WriteFunc:        func(p []byte) (int, error) { return c.out.Write(p) },
		ReadInputFunc:    read,
		ReadPasswordFunc: read,
	}
	return c
}

func (c *console) String() string { return c.out.String() }

type testCli struct {
	*Cli
	console *console
	api     *CardAPIMock
	auth    *auth.ServiceMock
	token   string
}

// newTestCli собирает Cli на моках; сессия по умолчанию отсутствует
func newTestCli(t *testing.T, inputs ...string) *testCli {
	t.Helper()

	tc := &testCli{console: newConsole(inputs...)}
	tc.api = &CardAPIMock{
		BaseURLFunc:  func() string { return testServerURL },
		SetTokenFunc: func(token string) { tc.token = token },
	}
	tc.auth = &auth.ServiceMock{
		TokenFunc: func(_ context.Context) (string, error) {
			return "", auth.ErrNotAuthenticated
		},
	}
	tc.Cli = New(tc.console, tc.api, tc.auth)
	tc.openFile = func(name string) (io.ReadCloser, error) {
		if strings.HasPrefix(name, "missing") {
			return nil, errors.New("no such file")
		}
		return io.NopCloser(strings.NewReader("image:" + name)), nil
	}
	return tc
}

func testCard() *api.Card {
	card := api.NewCard(&models.Card{
		ID:            7,
		Name:          "山田 太郎",
		Company:       "株式会社サンプル",
		Position:      "部長",
		Email:         "yamada@sample.co.jp",
		Phone:         "03-1234-5678",
		ImageFilename: "business-card-1700000000000-abc123.png",
		Categories:    []models.Category{{ID: 1, Name: "取引先"}, {ID: 3, Name: "社内"}},
		RegisteredBy:  "alice",
		CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	return &card
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	tc := newTestCli(t)
	err := tc.Run(context.Background(), "sync", nil)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCli_Run_Help(t *testing.T) {
	tc := newTestCli(t)
	require.NoError(t, tc.Run(context.Background(), "help", nil))
	assert.Contains(t, tc.console.String(), "category-add")
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPos  []string
		wantYes  bool
		wantPage int
	}{
		{name: "flags first", args: []string{"--yes", "--page", "2", "5"}, wantPos: []string{"5"}, wantYes: true, wantPage: 2},
		{name: "flags last", args: []string{"5", "--yes"}, wantPos: []string{"5"}, wantYes: true},
		{name: "mixed", args: []string{"5", "-page=3", "file.png"}, wantPos: []string{"5", "file.png"}, wantPage: 3},
		{name: "none", args: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			yes := fs.Bool("yes", false, "")
			page := fs.Int("page", 0, "")

			pos, err := parseArgs(fs, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantYes, *yes)
			assert.Equal(t, tt.wantPage, *page)
		})
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	tc := newTestCli(t)
	err := tc.Run(context.Background(), "list", []string{"--colour", "red"})
	require.Error(t, err)
	assert.Empty(t, tc.api.ListCardsCalls())
}

func TestCli_Login(t *testing.T) {
	t.Setenv(envAPIKey, "")

	tc := newTestCli(t, "alice", "s3cr3t")
	tc.auth.LoginFunc = func(_ context.Context, name, apiKey string) (*storage.Session, error) {
		return &storage.Session{Name: name, AccessToken: "jwt", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
	}

	require.NoError(t, tc.Run(context.Background(), "login", nil))

	require.Len(t, tc.auth.LoginCalls(), 1)
	assert.Equal(t, "alice", tc.auth.LoginCalls()[0].Name)
	assert.Equal(t, "s3cr3t", tc.auth.LoginCalls()[0].ApiKey)
	require.Len(t, tc.console.ReadPasswordCalls(), 1)
	assert.Equal(t, "API key: ", tc.console.ReadPasswordCalls()[0].Prompt)
	assert.Contains(t, tc.console.String(), "Login successful")
	assert.Contains(t, tc.console.String(), "Token expires")
}

func TestCli_Login_FlagAndEnv(t *testing.T) {
	t.Setenv(envAPIKey, "from-env")

	tc := newTestCli(t)
	tc.auth.LoginFunc = func(_ context.Context, name, _ string) (*storage.Session, error) {
		return &storage.Session{Name: name}, nil
	}

	require.NoError(t, tc.Run(context.Background(), "login", []string{"--name", "bob"}))

	assert.Empty(t, tc.console.ReadInputCalls())
	assert.Empty(t, tc.console.ReadPasswordCalls())
	require.Len(t, tc.auth.LoginCalls(), 1)
	assert.Equal(t, "bob", tc.auth.LoginCalls()[0].Name)
	assert.Equal(t, "from-env", tc.auth.LoginCalls()[0].ApiKey)
	assert.NotContains(t, tc.console.String(), "Token expires")
}

func TestCli_Login_Rejected(t *testing.T) {
	t.Setenv(envAPIKey, "wrong")

	tc := newTestCli(t)
	tc.auth.LoginFunc = func(_ context.Context, _, _ string) (*storage.Session, error) {
		return nil, &client.Error{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	err := tc.Run(context.Background(), "login", []string{"--name", "bob"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestCli_Logout(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.LogoutFunc = func(_ context.Context) error { return nil }

	require.NoError(t, tc.Run(context.Background(), "logout", nil))
	assert.Len(t, tc.auth.LogoutCalls(), 1)
	assert.Contains(t, tc.console.String(), "Logout successful")
}

func TestCli_Status(t *testing.T) {
	tests := []struct {
		healthErr error
		session   *storage.Session
		name      string
		want      []string
	}{
		{
			name:    "logged in",
			session: &storage.Session{Name: "alice", ServerURL: testServerURL, ExpiresAt: time.Now().Add(time.Hour).Unix()},
			want:    []string{"Server status: ok (version 1.2.0)", "OCR: tesseract", "Session: alice", "Time remaining"},
		},
		{
			name: "not logged in",
			want: []string{"Authentication: required for changes", "Session: not logged in"},
		},
		{
			name:      "server down",
			healthErr: errors.New("connection refused"),
			session:   &storage.Session{Name: "alice", ServerURL: "https://other.example.com", ExpiresAt: time.Now().Add(-time.Hour).Unix()},
			want:      []string{"Server status: unavailable", "Session belongs to https://other.example.com", "Token has expired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t)
			tc.api.HealthFunc = func(_ context.Context) (*api.HealthResponse, error) {
				if tt.healthErr != nil {
					return nil, tt.healthErr
				}
				return &api.HealthResponse{Status: "ok", Version: "1.2.0", Database: "ok", OCR: "tesseract", Auth: true}, nil
			}
			tc.auth.SessionFunc = func(_ context.Context) (*storage.Session, error) {
				if tt.session == nil {
					return nil, storage.ErrSessionNotFound
				}
				return tt.session, nil
			}

			require.NoError(t, tc.Run(context.Background(), "status", nil))
			for _, want := range tt.want {
				assert.Contains(t, tc.console.String(), want)
			}
		})
	}
}

func TestCli_List(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.TokenFunc = func(_ context.Context) (string, error) { return "jwt", nil }
	tc.api.ListCardsFunc = func(_ context.Context, _ client.CardQuery) ([]api.Card, *api.Pagination, error) {
		return []api.Card{*testCard()}, api.NewPagination(21, 20, 0), nil
	}

	err := tc.Run(context.Background(), "list", []string{"--q", "山田", "--category", "取引先", "--limit", "20"})
	require.NoError(t, err)

	assert.Equal(t, "jwt", tc.token)
	require.Len(t, tc.api.ListCardsCalls(), 1)
	assert.Equal(t, client.CardQuery{Query: "山田", Category: "取引先", Page: 1, Limit: 20}, tc.api.ListCardsCalls()[0].Q)

	out := tc.console.String()
	assert.Contains(t, out, "COMPANY")
	assert.Contains(t, out, "株式会社サンプル")
	assert.Contains(t, out, "取引先, 社内")
	assert.Contains(t, out, "Page 1 of 2 (21 cards)")
}

func TestCli_List_Empty(t *testing.T) {
	tc := newTestCli(t)
	tc.api.ListCardsFunc = func(_ context.Context, _ client.CardQuery) ([]api.Card, *api.Pagination, error) {
		return nil, api.NewPagination(0, 20, 0), nil
	}

	require.NoError(t, tc.Run(context.Background(), "list", nil))
	// без сессии токен не подставляется
	assert.Empty(t, tc.api.SetTokenCalls())
	assert.Contains(t, tc.console.String(), "No cards found.")
}

func TestCli_List_SessionErrors(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.TokenFunc = func(_ context.Context) (string, error) { return "", auth.ErrSessionExpired }

	err := tc.Run(context.Background(), "list", nil)
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
	assert.Empty(t, tc.api.ListCardsCalls())
}

func TestCli_Get(t *testing.T) {
	tc := newTestCli(t)
	tc.api.GetCardFunc = func(_ context.Context, id int64) (*api.Card, error) {
		if id == 7 {
			return testCard(), nil
		}
		return nil, &client.Error{StatusCode: http.StatusNotFound, Message: "card not found"}
	}

	ctx := context.Background()
	require.NoError(t, tc.Run(ctx, "get", []string{"7"}))

	out := tc.console.String()
	assert.Contains(t, out, "山田 太郎")
	assert.Contains(t, out, "Registered by: alice")
	assert.Contains(t, out, testServerURL+"/api/images/business-card-1700000000000-abc123.png")
	assert.NotContains(t, out, "Fax:")

	err := tc.Run(ctx, "get", []string{"8"})
	require.Error(t, err)
	assert.Equal(t, "card 8 not found", err.Error())

	assert.ErrorIs(t, tc.Run(ctx, "get", nil), ErrUsage)
	assert.Error(t, tc.Run(ctx, "get", []string{"abc"}))
	assert.Error(t, tc.Run(ctx, "get", []string{"0"}))
}

func TestCli_Delete(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		inputs     []string
		wantOutput string
		wantDelete bool
	}{
		{name: "confirmed", args: []string{"7"}, inputs: []string{"YES"}, wantDelete: true, wantOutput: "Card 7 deleted"},
		{name: "cancelled", args: []string{"7"}, inputs: []string{"n"}, wantOutput: "Deletion cancelled."},
		{name: "empty answer", args: []string{"7"}, inputs: []string{""}, wantOutput: "Deletion cancelled."},
		{name: "yes flag", args: []string{"7", "--yes"}, wantDelete: true, wantOutput: "Card 7 deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, tt.inputs...)
			tc.api.GetCardFunc = func(_ context.Context, _ int64) (*api.Card, error) { return testCard(), nil }
			tc.api.DeleteCardFunc = func(_ context.Context, _ int64) error { return nil }

			require.NoError(t, tc.Run(context.Background(), "delete", tt.args))

			if tt.wantDelete {
				require.Len(t, tc.api.DeleteCardCalls(), 1)
				assert.Equal(t, int64(7), tc.api.DeleteCardCalls()[0].ID)
			} else {
				assert.Empty(t, tc.api.DeleteCardCalls())
			}
			assert.Contains(t, tc.console.String(), tt.wantOutput)
		})
	}
}

func TestCli_Delete_NotFound(t *testing.T) {
	tc := newTestCli(t)
	tc.api.GetCardFunc = func(_ context.Context, _ int64) (*api.Card, error) {
		return nil, &client.Error{StatusCode: http.StatusNotFound, Message: "card not found"}
	}

	err := tc.Run(context.Background(), "delete", []string{"--yes", "9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card 9 not found")
	assert.Empty(t, tc.api.DeleteCardCalls())
}

// editInputs ответы на запросы edit: Enter везде, кроме answers; ключ "notes" для заметок
func editInputs(answers map[cardparse.Field]string) []string {
	inputs := make([]string, 0, len(cardparse.AllFields)+1)
	for _, field := range cardparse.AllFields {
		inputs = append(inputs, answers[field])
	}
	return append(inputs, answers["notes"])
}

func TestCli_Edit(t *testing.T) {
	str := func(s string) *string { return &s }
	categoryID := int64(3)

	tests := []struct {
		answers    map[cardparse.Field]string
		wantReq    *api.CardRequest
		name       string
		wantOutput string
		args       []string
	}{
		{
			name: "changed fields only",
			args: []string{"7"},
			answers: map[cardparse.Field]string{
				cardparse.FieldDepartment: "営業部",
				cardparse.FieldPosition:   "課長",
				cardparse.FieldPhone:      clearValue,
				"notes":                   "  met at expo ",
			},
			wantReq: &api.CardRequest{
				Department: str("営業部"),
				Position:   str("課長"),
				Phone:      str(""),
				Notes:      str("met at expo"),
			},
			wantOutput: "Card 7 updated",
		},
		{
			name:       "same value typed again",
			args:       []string{"7"},
			answers:    map[cardparse.Field]string{cardparse.FieldPosition: "部長"},
			wantOutput: "No changes.",
		},
		{
			name:       "nothing changed",
			args:       []string{"7"},
			wantOutput: "No changes.",
		},
		{
			name:       "category only",
			args:       []string{"--category-id", "3", "7"},
			wantReq:    &api.CardRequest{CategoryID: &categoryID},
			wantOutput: "Card 7 updated",
		},
		{
			name:       "clear missing category",
			args:       []string{"7", "--clear-category"},
			wantOutput: "No changes.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, editInputs(tt.answers)...)
			tc.api.GetCardFunc = func(_ context.Context, _ int64) (*api.Card, error) { return testCard(), nil }
			tc.api.UpdateCardFunc = func(_ context.Context, id int64, req *api.CardRequest) (*api.Card, error) {
				card := testCard()
				req.Apply(&card.Card)
				return card, nil
			}

			require.NoError(t, tc.Run(context.Background(), "edit", tt.args))

			assert.Contains(t, tc.console.prompts, "Position [部長]: ")
			assert.Contains(t, tc.console.prompts, "Fax: ")

			if tt.wantReq == nil {
				assert.Empty(t, tc.api.UpdateCardCalls())
			} else {
				require.Len(t, tc.api.UpdateCardCalls(), 1)
				assert.Equal(t, int64(7), tc.api.UpdateCardCalls()[0].ID)
				assert.Equal(t, tt.wantReq, tc.api.UpdateCardCalls()[0].Req)
			}
			assert.Contains(t, tc.console.String(), tt.wantOutput)
		})
	}
}

func TestCli_Edit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wantIs  error
		wantErr string
		args    []string
		inputs  []string
	}{
		{name: "no id", args: nil, wantIs: ErrUsage},
		{name: "conflicting flags", args: []string{"7", "--category-id", "2", "--clear-category"}, wantIs: ErrUsage},
		{name: "invalid id", args: []string{"abc"}, wantErr: `invalid id "abc"`},
		{name: "unknown card", args: []string{"9"}, wantErr: "card 9 not found"},
		{
			name:    "required field cleared",
			args:    []string{"7"},
			inputs:  editInputs(map[cardparse.Field]string{cardparse.FieldCompany: clearValue}),
			wantErr: "company is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, tt.inputs...)
			tc.api.GetCardFunc = func(_ context.Context, id int64) (*api.Card, error) {
				if id == 7 {
					return testCard(), nil
				}
				return nil, &client.Error{StatusCode: http.StatusNotFound, Message: "card not found"}
			}

			err := tc.Run(context.Background(), "edit", tt.args)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			assert.Empty(t, tc.api.UpdateCardCalls())
		})
	}
}

func TestCli_Categories(t *testing.T) {
	tc := newTestCli(t)
	tc.api.ListCategoriesFunc = func(_ context.Context) ([]models.Category, error) {
		return []models.Category{
			{ID: 1, Name: "取引先", Color: "#10B981", CardCount: 2, Description: "Clients"},
			{ID: 2, Name: "社内", Color: "#3B82F6"},
		}, nil
	}

	require.NoError(t, tc.Run(context.Background(), "categories", nil))
	out := tc.console.String()
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "#10B981")
	assert.Contains(t, out, "Clients")
}

func TestCli_CategoryAdd(t *testing.T) {
	tc := newTestCli(t, "Partners")
	tc.api.CreateCategoryFunc = func(_ context.Context, req api.CategoryRequest) (*models.Category, error) {
		return &models.Category{ID: 4, Name: *req.Name, Color: "#F59E0B"}, nil
	}

	require.NoError(t, tc.Run(context.Background(), "category-add", []string{"--color", "#f59e0b"}))

	require.Len(t, tc.api.CreateCategoryCalls(), 1)
	req := tc.api.CreateCategoryCalls()[0].Req
	assert.Equal(t, "Partners", *req.Name)
	assert.Equal(t, "#f59e0b", *req.Color)
	assert.Nil(t, req.Description)
	assert.Contains(t, tc.console.String(), `Category "Partners" created (ID 4, color #F59E0B)`)
}

func TestCli_CategoryAdd_Invalid(t *testing.T) {
	tc := newTestCli(t)

	err := tc.Run(context.Background(), "category-add", []string{"--name", "Partners", "--color", "orange"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#RRGGBB")
	assert.Empty(t, tc.api.CreateCategoryCalls())
}

func TestCli_CategoryDelete(t *testing.T) {
	tests := []struct {
		serverErr  error
		name       string
		wantErr    string
		wantOutput string
		args       []string
		inputs     []string
		wantCalled bool
	}{
		{name: "confirmed", args: []string{"2"}, inputs: []string{"y"}, wantCalled: true, wantOutput: "Category 2 deleted"},
		{name: "cancelled", args: []string{"2"}, inputs: []string{"no"}, wantOutput: "Deletion cancelled."},
		{name: "yes flag", args: []string{"--yes", "2"}, wantCalled: true, wantOutput: "Category 2 deleted"},
		{
			name:       "in use",
			args:       []string{"2", "--yes"},
			serverErr:  &client.Error{StatusCode: http.StatusConflict, Message: "category is used by business cards"},
			wantCalled: true,
			wantErr:    "category 2 is in use by business cards",
		},
		{
			name:       "not found",
			args:       []string{"2", "--yes"},
			serverErr:  &client.Error{StatusCode: http.StatusNotFound, Message: "category not found"},
			wantCalled: true,
			wantErr:    "category 2 not found",
		},
		{
			name:       "server error",
			args:       []string{"2", "--yes"},
			serverErr:  &client.Error{StatusCode: http.StatusInternalServerError, Message: "internal server error"},
			wantCalled: true,
			wantErr:    "failed to delete category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, tt.inputs...)
			tc.api.DeleteCategoryFunc = func(_ context.Context, _ int64) error { return tt.serverErr }

			err := tc.Run(context.Background(), "category-delete", tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, tc.console.String(), tt.wantOutput)
			}

			if tt.wantCalled {
				require.Len(t, tc.api.DeleteCategoryCalls(), 1)
				assert.Equal(t, int64(2), tc.api.DeleteCategoryCalls()[0].ID)
			} else {
				assert.Empty(t, tc.api.DeleteCategoryCalls())
			}
		})
	}

	tc := newTestCli(t)
	assert.ErrorIs(t, tc.Run(context.Background(), "category-delete", nil), ErrUsage)
}

func TestCli_Upload(t *testing.T) {
	tc := newTestCli(t)
	tc.api.UploadImageFunc = func(_ context.Context, _ int64, _ string, r io.Reader) (*api.UploadResponse, error) {
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "image:card.png", string(data))
		return &api.UploadResponse{ImageURL: "/api/images/business-card-1-abcdef.png", Size: 14}, nil
	}

	ctx := context.Background()
	require.NoError(t, tc.Run(ctx, "upload", []string{"7", "card.png"}))

	require.Len(t, tc.api.UploadImageCalls(), 1)
	assert.Equal(t, int64(7), tc.api.UploadImageCalls()[0].CardID)
	assert.Contains(t, tc.console.String(), testServerURL+"/api/images/business-card-1-abcdef.png (14 bytes)")

	err := tc.Run(ctx, "upload", []string{"7", "missing.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open image")

	assert.ErrorIs(t, tc.Run(ctx, "upload", []string{"7"}), ErrUsage)
}

func scanReport() *api.ScanReport {
	return &api.ScanReport{
		Engine:     "tesseract",
		Recognized: true,
		Preset:     "otsu",
		PSM:        6,
		Score:      0.812,
		Text:       "山田 太郎\n株式会社サンプル",
		Fields: cardparse.Fields{
			Name:    "山田 太郎",
			Company: "株式会社サンプル",
			Email:   "yamada@sample.co.jp",
			Fax:     "03-1234-5679",
		},
		Levels: map[cardparse.Field]cardparse.ConfidenceLevel{
			cardparse.FieldName:    cardparse.LevelMedium,
			cardparse.FieldCompany: cardparse.LevelMedium,
			cardparse.FieldEmail:   cardparse.LevelHigh,
			cardparse.FieldFax:     cardparse.LevelHigh,
		},
		Candidates: []scan.Candidate{
			{Preset: "otsu", PSM: 6, OCRConfidence: 0.9, FieldScore: 0.68, Score: 0.812},
			{Preset: "otsu", PSM: 3, Error: "tesseract crashed"},
		},
	}
}

func TestCli_Scan(t *testing.T) {
	tc := newTestCli(t)
	tc.api.ScanFunc = func(_ context.Context, _ string, _ io.Reader) (*api.ScanReport, error) {
		return scanReport(), nil
	}

	require.NoError(t, tc.Run(context.Background(), "scan", []string{"card.jpg", "--text", "--candidates"}))

	require.Len(t, tc.api.ScanCalls(), 1)
	assert.Equal(t, "card.jpg", tc.api.ScanCalls()[0].Filename)

	out := tc.console.String()
	assert.Contains(t, out, "preset otsu, psm 6, score 0.812")
	assert.Contains(t, out, "yamada@sample.co.jp")
	assert.Contains(t, out, "yamada@sample.co.jp")
	assert.Contains(t, out, string(cardparse.LevelHigh))
	assert.Contains(t, out, "error: tesseract crashed")
	assert.Contains(t, out, "Text:\n山田 太郎")
}

func TestCli_Scan_Errors(t *testing.T) {
	tc := newTestCli(t)
	tc.api.ScanFunc = func(_ context.Context, _ string, _ io.Reader) (*api.ScanReport, error) {
		return nil, &client.Error{StatusCode: http.StatusNotImplemented, Message: "ocr is disabled on this server"}
	}

	ctx := context.Background()
	err := tc.Run(ctx, "scan", []string{"card.jpg"})
	require.Error(t, err)
	assert.Equal(t, "ocr is disabled on "+testServerURL, err.Error())

	tc.api.ScanFunc = func(_ context.Context, _ string, _ io.Reader) (*api.ScanReport, error) {
		return &api.ScanReport{Engine: "tesseract"}, nil
	}
	require.NoError(t, tc.Run(ctx, "scan", []string{"blank.jpg"}))
	assert.Contains(t, tc.console.String(), "No text recognized.")

	assert.ErrorIs(t, tc.Run(ctx, "scan", nil), ErrUsage)
}

func TestCli_Add_FromScan(t *testing.T) {
	// 12 полей: Enter оставляет подсказку, "-" очищает
	inputs := []string{
		"",        // name
		"やまだ たろう", // kana
		"",        // company
		"営業部",     // department
		"",        // position
		"",        // email
		"", "",    // phone, mobile
		"-",        // fax
		"", "", "", // postal code, address, website
		"met at expo", // notes
		"42", "1",     // unknown category, then existing
	}
	tc := newTestCli(t, inputs...)
	tc.auth.TokenFunc = func(_ context.Context) (string, error) { return "jwt", nil }
	tc.api.ScanFunc = func(_ context.Context, _ string, _ io.Reader) (*api.ScanReport, error) {
		return scanReport(), nil
	}
	tc.api.ListCategoriesFunc = func(_ context.Context) ([]models.Category, error) {
		return []models.Category{{ID: 1, Name: "取引先"}}, nil
	}
	tc.api.CreateCardFunc = func(_ context.Context, req *api.CardRequest) (*api.Card, error) {
		card := api.NewCard(req.ToCard())
		card.ID = 15
		return &card, nil
	}
	tc.api.UploadImageFunc = func(_ context.Context, _ int64, _ string, _ io.Reader) (*api.UploadResponse, error) {
		return &api.UploadResponse{ImageURL: "/api/images/business-card-1-abcdef.jpg"}, nil
	}

	require.NoError(t, tc.Run(context.Background(), "add", []string{"--scan", "card.jpg"}))

	assert.Contains(t, tc.console.prompts, "Name [山田 太郎]: ")
	assert.Contains(t, tc.console.prompts, "Name (kana): ")

	require.Len(t, tc.api.CreateCardCalls(), 1)
	card := tc.api.CreateCardCalls()[0].Req.ToCard()
	assert.Equal(t, "山田 太郎", card.Name)
	assert.Equal(t, "やまだ たろう", card.NameKana)
	assert.Equal(t, "株式会社サンプル", card.Company)
	assert.Equal(t, "営業部", card.Department)
	assert.Equal(t, "yamada@sample.co.jp", card.Email)
	assert.Empty(t, card.Fax)
	assert.Equal(t, "met at expo", card.Notes)
	require.NotNil(t, card.CategoryID)
	assert.Equal(t, int64(1), *card.CategoryID)

	require.Len(t, tc.api.UploadImageCalls(), 1)
	assert.Equal(t, int64(15), tc.api.UploadImageCalls()[0].CardID)
	assert.Equal(t, "card.jpg", tc.api.UploadImageCalls()[0].Filename)

	out := tc.console.String()
	assert.Contains(t, out, `Unknown category "42"`)
	assert.Contains(t, out, "Card 15 created: 山田 太郎 (株式会社サンプル)")
	assert.Contains(t, out, "Image attached")
}

func TestCli_Add_Invalid(t *testing.T) {
	// только имя: компания обязательна
	inputs := append([]string{"John Smith"}, make([]string, len(cardparse.AllFields))...)
	tc := newTestCli(t, inputs...)
	tc.api.ListCategoriesFunc = func(_ context.Context) ([]models.Category, error) { return nil, nil }

	err := tc.Run(context.Background(), "add", []string{"--category-id", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company is required")
	assert.Empty(t, tc.api.CreateCardCalls())
	assert.Empty(t, tc.api.ScanCalls())
}
