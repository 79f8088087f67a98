// authctl — консольный клиент auth-сервера: регистрация, вход
// и проверка доступности через клиентский шлюз.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"

	clientcfg "github.com/pribylovaa/go-mobile-auth/internal/client/config"
	"github.com/pribylovaa/go-mobile-auth/internal/client/gateway"
	"github.com/pribylovaa/go-mobile-auth/internal/client/tokenstore"
)

const minPasswordLen = 6

// readPassword — точка подмены term.ReadPassword в тестах.
var readPassword = term.ReadPassword

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to client config file")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		return 2
	}

	cfg, err := clientcfg.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "authctl: failed to load config: %v\n", err)
		return 1
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tokens, err := openTokenStore(ctx, cfg.TokenDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "authctl: failed to open token store: %v\n", err)
		return 1
	}
	defer tokens.Close()

	g := gateway.New(cfg.BaseURL(), tokens, log, nil)

	switch cmd := flag.Arg(0); cmd {
	case "signup":
		err = cmdSignup(ctx, g)
	case "login":
		err = cmdLogin(ctx, g)
	case "health":
		err = cmdHealth(ctx, g)
	default:
		fmt.Fprintf(os.Stderr, "authctl: unknown command %q\n", cmd)
		usage()
		return 2
	}

	if err != nil {
		var reqErr *gateway.RequestFailedError
		if errors.As(err, &reqErr) {
			fmt.Fprintf(os.Stderr, "authctl: server: %s\n", reqErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "authctl: %v\n", err)
		}

		return 1
	}

	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: authctl [--config path] <command>

commands:
  signup   register a new account
  login    sign in to an existing account
  health   check server availability`)
}

// openTokenStore открывает локальную базу токена; при пустом пути
// использует ~/.authctl/tokens.db.
func openTokenStore(ctx context.Context, path string) (*tokenstore.Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}

		dir := filepath.Join(home, ".authctl")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}

		path = filepath.Join(dir, "tokens.db")
	}

	return tokenstore.Open(ctx, path)
}

func cmdSignup(ctx context.Context, g *gateway.Gateway) error {
	reader := bufio.NewReader(os.Stdin)

	name, err := promptLine(reader, "Name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := promptLine(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := promptPassword(os.Stdout)
	if err != nil {
		return err
	}

	// Клиентская проверка дублирует серверную лишь для быстрой
	// обратной связи; источником истины остаётся сервер.
	if name == "" || email == "" || password == "" {
		return errors.New("name, email and password are required")
	}

	if !strings.Contains(email, "@") {
		return errors.New("email looks invalid")
	}

	if utf8.RuneCountInString(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	res, err := g.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Registered as %s <%s>\n", res.Auth.User.Name, res.Auth.User.Email)

	if res.SaveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: account created, but token was not saved locally: %v\n", res.SaveErr)
	}

	return nil
}

func cmdLogin(ctx context.Context, g *gateway.Gateway) error {
	reader := bufio.NewReader(os.Stdin)

	email, err := promptLine(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := promptPassword(os.Stdout)
	if err != nil {
		return err
	}

	env, err := g.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Println(env.Message)

	return nil
}

func cmdHealth(ctx context.Context, g *gateway.Gateway) error {
	env, err := g.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Println(env.Message)

	return nil
}

// promptLine печатает приглашение и читает одну строку без
// обрамляющих пробелов. Частичная строка перед EOF не теряется.
func promptLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptPassword читает пароль без эха терминала.
func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}

	return string(pw), nil
}
