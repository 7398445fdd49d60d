// Command sessiondump verifies a session cookie and prints its content.
//
// Usage:
//
//	HTTPKIT_SECRETS=... sessiondump [-json] [-header] [-env file] [value]
//
// The value is read from stdin when no argument is given. With -header the
// input is a whole Cookie header and the session cookie is picked by name.
// The exit status is 1 when the cookie does not verify.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dmitrymomot/httpkit"
	"github.com/dmitrymomot/httpkit/pkg/config"
	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/session"
	"github.com/dmitrymomot/httpkit/pkg/signer"
)

var errNoInput = errors.New("no cookie value given")

type dumpConfig struct {
	Secrets []string `env:"HTTPKIT_SECRETS,required" envSeparator:","`
	Session session.Config
	Log     logger.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sessiondump:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sessiondump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the session as JSON")
	isHeader := fs.Bool("header", false, "input is a full Cookie header")
	name := fs.String("name", "", "session cookie name (default from SESSION_COOKIE_NAME)")
	envFile := fs.String("env", "", "load variables from this .env file first")
	verbose := fs.Bool("v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			return err
		}
	}
	var cfg dumpConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{logger.WithOutput(stderr), logger.WithFormat(logger.FormatText)}
	if *verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.NewFromConfig(cfg.Log, logOpts...)

	cookieName := cfg.Session.CookieName
	if *name != "" {
		cookieName = *name
	}

	value, err := readValue(ctx, fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	if *isHeader {
		ck, ok := cookie.Parse(value, cookieName)
		if !ok {
			return fmt.Errorf("cookie %q not found in header", cookieName)
		}
		value = ck.Value
	}

	s, err := signer.NewDerived(httpkit.SessionPurpose, cfg.Secrets...)
	if err != nil {
		return err
	}
	codec := session.NewCodec(s, session.WithLogger(log))

	sess, err := codec.Decode(value)
	if err != nil {
		log.DebugContext(ctx, "cookie rejected", logger.Cookie(cookieName), logger.Error(err))
		return fmt.Errorf("invalid session cookie: %w", err)
	}

	if *asJSON {
		return printJSON(stdout, sess)
	}
	return printText(stdout, sess)
}

func readValue(ctx context.Context, arg string, stdin io.Reader) (string, error) {
	if arg != "" {
		return strings.TrimSpace(arg), nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	v := strings.TrimSpace(sc.Text())
	if v == "" {
		return "", errNoInput
	}
	return v, nil
}

type dump struct {
	ID      string            `json:"id,omitempty"`
	Expires *time.Time        `json:"expires,omitempty"`
	Expired bool              `json:"expired"`
	Data    map[string]string `json:"data"`
}

func toDump(s *session.Session) dump {
	d := dump{Data: map[string]string{}, Expired: s.Expired()}
	s.Each(func(k, v string) {
		switch k {
		case session.KeyID:
			d.ID = v
		case session.KeyExpiry:
		default:
			d.Data[k] = v
		}
	})
	if exp, ok := s.Expiry(); ok {
		exp = exp.UTC()
		d.Expires = &exp
	}
	return d
}

func printJSON(w io.Writer, s *session.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDump(s))
}

func printText(w io.Writer, s *session.Session) error {
	d := toDump(s)
	var b strings.Builder
	if d.ID != "" {
		fmt.Fprintf(&b, "id:      %s\n", d.ID)
	}
	if d.Expires != nil {
		state := ""
		if d.Expired {
			state = " (expired)"
		}
		fmt.Fprintf(&b, "expires: %s%s\n", d.Expires.Format(time.RFC3339), state)
	}
	s.Each(func(k, v string) {
		if k != session.KeyID && k != session.KeyExpiry {
			fmt.Fprintf(&b, "%s=%s\n", k, v)
		}
	})
	_, err := io.WriteString(w, b.String())
	return err
}
