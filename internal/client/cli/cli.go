// Package cli команды консольного клиента cardkeeper.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/client/auth"
	"github.com/iudanet/cardkeeper/internal/client/iocli"
	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/pkg/api"
)

//go:generate moq -out api_mock.go . CardAPI

// CardAPI операции сервера, которые используют команды
type CardAPI interface {
	BaseURL() string
	SetToken(token string)
	Health(ctx context.Context) (*api.HealthResponse, error)
	ListCards(ctx context.Context, q client.CardQuery) ([]api.Card, *api.Pagination, error)
	GetCard(ctx context.Context, id int64) (*api.Card, error)
	CreateCard(ctx context.Context, req *api.CardRequest) (*api.Card, error)
	UpdateCard(ctx context.Context, id int64, req *api.CardRequest) (*api.Card, error)
	DeleteCard(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req api.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, cardID int64, filename string, r io.Reader) (*api.UploadResponse, error)
	Scan(ctx context.Context, filename string, r io.Reader) (*api.ScanReport, error)
}

// ErrUsage неверные аргументы команды
var ErrUsage = errors.New("usage")

type Cli struct {
	io       iocli.IO
	api      CardAPI
	auth     auth.Service
	openFile func(name string) (io.ReadCloser, error)
}

func New(ioc iocli.IO, apiClient CardAPI, authService auth.Service) *Cli {
	return &Cli{
		io:   ioc,
		api:  apiClient,
		auth: authService,
		openFile: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// authorize подставляет сохраненный токен в API клиент.
// Без сессии запросы уходят анонимно: сервер может не требовать авторизацию
func (c *Cli) authorize(ctx context.Context) error {
	token, err := c.auth.Token(ctx)
	switch {
	case err == nil:
		c.api.SetToken(token)
		return nil
	case errors.Is(err, auth.ErrNotAuthenticated):
		return nil
	default:
		return err
	}
}

// newFlagSet флаги команды; ошибки разбора печатаются в консоль клиента
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// parseArgs разбирает флаги, стоящие в любом месте среди позиционных аргументов
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// confirm принимает y/yes в любом регистре
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// imageURL абсолютный адрес изображения на сервере
func (c *Cli) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return c.api.BaseURL() + path
}

func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `cardkeeper - business card manager client

Usage:
  cardkeeper [OPTIONS] COMMAND [ARGS]

Options:
  --version       Show version information
  --server URL    Server URL (remembered; default: http://localhost:8080)
  --db PATH       Path to local session database (default: ~/.cardkeeper.db)

Commands:
  login [--name NAME]                      Exchange an API key for an access token
  logout                                   Delete the local session
  status                                   Show server and session status
  list [--q TEXT] [--category NAME] [--page N] [--limit N]
                                           List business cards
  get <id>                                 Show card details
  add [--scan FILE] [--image FILE]         Add a card interactively; --scan prefills fields from a photo
  edit <id> [--category-id N | --clear-category]
                                           Edit a card interactively; only changed fields are sent
  delete <id> [--yes]                      Delete a card
  categories                               List categories
  category-add [--name N] [--color #RRGGBB] [--description D]
                                           Create a category
  category-delete <id> [--yes]             Delete a category that no card uses
  upload <id> <file>                       Attach an image to a card
  scan [--text] <file>                     Recognize a business card photo

Environment:
  CARDKEEPER_SERVER    Server URL
  CARDKEEPER_API_KEY   API key for login (otherwise prompted)

Examples:
  cardkeeper --server https://cards.example.com login --name alice
  cardkeeper list --q yamada
  cardkeeper add --scan card.jpg
  cardkeeper edit 12
  cardkeeper delete 12 --yes
`)
}
