package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/infra/downloader"
	"github.com/ApplicationsForge/textokit/internal/infra/fetchstore"
	"github.com/ApplicationsForge/textokit/internal/infra/logger"
)

// transferOptions are the flags shared by fetch and send.
type transferOptions struct {
	config    string
	timeoutMS int
	headers   []string
	protected bool
	username  string
	password  string
	throttle  int
	output    string
	noSave    bool
	quiet     bool
}

type transferDone struct {
	code domain.NetworkError
	body []byte
}

// runTransfer dispatches one top-level downloader call and blocks until its
// terminal outcome, rendering progress on stderr along the way.
func runTransfer(debug bool, o transferOptions, method domain.HTTPMethod, url string, body []byte) error {
	d, err := loadDeps(o.config)
	if err != nil {
		return err
	}
	defer setupLogging(d.root, debug)()

	timeout := d.cfg.Network.Timeout
	if o.timeoutMS >= 0 {
		timeout = time.Duration(o.timeoutMS) * time.Millisecond
	}
	throttle := d.cfg.Network.ThrottleBytesPerSec
	if o.throttle > 0 {
		throttle = o.throttle
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	done := make(chan transferDone, 1)

	dl := downloader.New(
		downloader.WithLogger(logger.L()),
		downloader.WithUserAgent(d.cfg.Network.UserAgent),
		downloader.WithMaxRedirects(d.cfg.Network.MaxRedirects),
		downloader.WithThrottle(throttle),
		downloader.OnProgress(func(received, total int64) {
			if o.quiet {
				return
			}
			if total > 0 {
				fmt.Fprintf(os.Stderr, "\r%s %s", bar.ViewAs(float64(received)/float64(total)), humanBytes(received))
			} else {
				fmt.Fprintf(os.Stderr, "\r%s %s", labelStyle.Render("downloading"), humanBytes(received))
			}
		}),
		downloader.OnCompleted(func(code domain.NetworkError, payload []byte) {
			done <- transferDone{code: code, body: payload}
		}),
	)

	for name, value := range d.cfg.Headers {
		dl.SetHeader(name, value)
	}
	for _, h := range o.headers {
		name, value, err := parseHeader(h)
		if err != nil {
			return err
		}
		dl.SetHeader(name, value)
	}

	cred := domain.Credentials{
		Protected: o.protected || o.username != "",
		Username:  o.username,
		Password:  o.password,
	}

	startedAt := time.Now()
	switch method {
	case domain.MethodGet:
		dl.Fetch(url, timeout, cred)
	case domain.MethodPost:
		dl.Send(url, body, timeout, cred)
	case domain.MethodPut:
		dl.Put(url, body, timeout, cred)
	case domain.MethodDelete:
		dl.Delete(url, timeout, cred)
	default:
		return fmt.Errorf("unsupported method %q", method)
	}

	res := <-done
	if !o.quiet {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}

	if !o.noSave {
		store := fetchstore.NewJSONStore(d.root, d.cfg, fetchstore.WithIndex(true))
		if _, err := store.SaveFetch(domain.FetchArtifact{
			Method:      method,
			URL:         url,
			Error:       res.code,
			Bytes:       int64(len(res.body)),
			ContentType: dl.LastContentType(),
			StartedAt:   startedAt,
			FinishedAt:  time.Now(),
		}); err != nil {
			logger.L().Warn("history.save_failed", "err", err)
		}
	}

	if res.code != domain.NetworkNoError {
		fmt.Fprintf(os.Stderr, "%s %s\n", errStyle.Render("FAIL"), res.code)
		return fmt.Errorf("transfer failed: %s", res.code)
	}

	if o.output != "" {
		if err := os.WriteFile(o.output, res.body, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s %s -> %s (%s)\n",
			okStyle.Render("OK"), url, o.output, humanBytes(int64(len(res.body))))
		return nil
	}

	if _, err := os.Stdout.Write(res.body); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s %s (%s)\n", okStyle.Render("OK"), url, humanBytes(int64(len(res.body))))
	return nil
}

func parseHeader(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !ok || name == "" || value == "" {
		return "", "", fmt.Errorf("invalid header %q (expected \"Name: Value\")", raw)
	}
	return name, value, nil
}
