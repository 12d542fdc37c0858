// Package downloader implements the asynchronous request runner used by the
// update checker and the CLI: one HTTP operation per top-level call, manual
// redirect following, an instance-wide inactivity timer, and progress plus
// completion notifications.
package downloader

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/infra/httpclient"
)

const defaultMaxRedirects = 20

// Progress is invoked as response bytes arrive for the current attempt.
// total is -1 when the response length is unknown.
type Progress func(received, total int64)

// Completed is invoked exactly once per top-level Fetch/Send/Put/Delete call.
type Completed func(code domain.NetworkError, body []byte)

// Downloader runs one HTTP operation at a time. It is constructed once and
// reused across sequential top-level calls; starting a new call while one is
// in flight supersedes tracking of the previous one.
type Downloader struct {
	client       *http.Client
	logger       *slog.Logger
	userAgent    string
	maxRedirects int
	limiter      *rate.Limiter

	onProgress  Progress
	onCompleted Completed

	mu           sync.Mutex
	headers      map[string]string
	gen          uint64
	timerGen     uint64
	cancelActive context.CancelFunc
	timer        *time.Timer
	timeout      time.Duration
	timedOut     bool
	last         domain.Outcome
}

type Option func(*Downloader)

// WithClient sets a custom HTTP client. The client must not follow
// redirects on its own (see httpclient.New).
func WithClient(c *http.Client) Option {
	return func(d *Downloader) { d.client = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Downloader) { d.logger = l }
}

// WithUserAgent sets a User-Agent applied when no explicit one is registered.
func WithUserAgent(ua string) Option {
	return func(d *Downloader) { d.userAgent = ua }
}

// WithMaxRedirects bounds a redirect chain; 0 means unlimited.
func WithMaxRedirects(n int) Option {
	return func(d *Downloader) { d.maxRedirects = n }
}

// WithThrottle caps download speed to bytesPerSec; 0 means unthrottled.
func WithThrottle(bytesPerSec int) Option {
	return func(d *Downloader) {
		if bytesPerSec <= 0 {
			d.limiter = nil
			return
		}
		burst := bytesPerSec
		if burst < readChunk {
			burst = readChunk
		}
		d.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), burst)
	}
}

func OnProgress(fn Progress) Option {
	return func(d *Downloader) { d.onProgress = fn }
}

func OnCompleted(fn Completed) Option {
	return func(d *Downloader) { d.onCompleted = fn }
}

func New(opts ...Option) *Downloader {
	d := &Downloader{
		client:       httpclient.New(httpclient.DefaultConfig()),
		logger:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		maxRedirects: defaultMaxRedirects,
		headers:      map[string]string{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fetch issues a GET. It returns immediately; the outcome arrives through
// the Completed callback. timeout is the inactivity deadline, 0 disables it.
func (d *Downloader) Fetch(url string, timeout time.Duration, cred domain.Credentials) {
	d.run(domain.MethodGet, url, nil, timeout, cred)
}

// Send issues a POST with the given body.
func (d *Downloader) Send(url string, data []byte, timeout time.Duration, cred domain.Credentials) {
	d.run(domain.MethodPost, url, data, timeout, cred)
}

// Put issues a PUT with the given body.
func (d *Downloader) Put(url string, data []byte, timeout time.Duration, cred domain.Credentials) {
	d.run(domain.MethodPut, url, data, timeout, cred)
}

// Delete issues a DELETE.
func (d *Downloader) Delete(url string, timeout time.Duration, cred domain.Credentials) {
	d.run(domain.MethodDelete, url, nil, timeout, cred)
}

// SetHeader registers a custom header applied to every subsequent attempt,
// including redirect hops, for the lifetime of the Downloader. An empty
// value is a no-op and does not clear an existing entry.
func (d *Downloader) SetHeader(name, value string) {
	if name == "" || value == "" {
		return
	}
	d.mu.Lock()
	d.headers[http.CanonicalHeaderKey(name)] = value
	d.mu.Unlock()
}

// Cancel aborts the in-flight attempt, if any. The abort surfaces through
// the normal completion path; with nothing in flight this is a no-op.
func (d *Downloader) Cancel() {
	d.mu.Lock()
	cancel := d.cancelActive
	d.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// LastOutcome returns the error code and body of the last terminal outcome.
func (d *Downloader) LastOutcome() (domain.NetworkError, []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last.Error, d.last.Body
}

// LastContentType returns the declared media type of the last terminal
// response, or empty.
func (d *Downloader) LastContentType() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last.ContentType
}

func (d *Downloader) run(method domain.HTTPMethod, rawURL string, body []byte, timeout time.Duration, cred domain.Credentials) {
	ctx, cancel := context.WithCancel(context.Background())

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.cancelActive != nil {
		// Supersede: release the previous in-flight attempt. Its terminal
		// outcome is dropped by the generation check in finish.
		d.cancelActive()
	}
	d.cancelActive = cancel
	d.timeout = timeout
	d.timedOut = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	payload := append([]byte(nil), body...)
	go d.attemptLoop(ctx, gen, method, rawURL, payload, cred)
}

// attemptLoop chains attempts until a terminal response arrives. Each
// redirect hop reuses the same method and body and reapplies all custom
// headers; only the final outcome is visible to the caller.
func (d *Downloader) attemptLoop(ctx context.Context, gen uint64, method domain.HTTPMethod, rawURL string, body []byte, cred domain.Credentials) {
	current := rawURL
	hops := 0

	for {
		req, err := d.buildRequest(ctx, method, current, body, cred)
		if err != nil {
			d.finish(gen, domain.Outcome{Error: domain.NetworkProtocol})
			return
		}

		d.armTimer(gen)
		d.logger.Debug("downloader.attempt", "method", string(method), "url", current, "hop", hops)

		resp, err := d.client.Do(req)
		if err != nil {
			d.finish(gen, domain.Outcome{Error: d.classify(err)})
			return
		}

		payload, readErr := d.readBody(ctx, gen, resp)
		resp.Body.Close()
		if readErr != nil {
			d.finish(gen, domain.Outcome{Error: d.classify(readErr)})
			return
		}

		if target, ok := redirectTarget(resp); ok {
			if next, valid := resolveRedirect(req.URL, target); valid {
				hops++
				if d.maxRedirects > 0 && hops > d.maxRedirects {
					d.finish(gen, domain.Outcome{Error: domain.NetworkTooManyRedirects})
					return
				}
				current = next
				continue
			}
			// Invalid target: the response is terminal.
		}

		d.finish(gen, domain.Outcome{
			Error:       domain.ClassifyStatus(resp.StatusCode),
			Body:        payload,
			ContentType: resp.Header.Get("Content-Type"),
		})
		return
	}
}

func (d *Downloader) buildRequest(ctx context.Context, method domain.HTTPMethod, rawURL string, body []byte, cred domain.Credentials) (*http.Request, error) {
	var rd io.Reader
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), rawURL, rd)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}
	d.mu.Unlock()

	if d.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", d.userAgent)
	}
	if method == domain.MethodPost && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cred.Protected {
		req.SetBasicAuth(cred.Username, cred.Password)
	}

	return req, nil
}

func (d *Downloader) finish(gen uint64, out domain.Outcome) {
	d.mu.Lock()
	if gen != d.gen {
		// Superseded by a newer top-level call.
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancelActive != nil {
		d.cancelActive()
		d.cancelActive = nil
	}
	d.last = out
	cb := d.onCompleted
	d.mu.Unlock()

	d.logger.Debug("downloader.completed", "code", string(out.Error), "bytes", len(out.Body))
	if cb != nil {
		cb(out.Error, out.Body)
	}
}

// classify forwards the transport classification, upgrading a cancellation
// caused by the inactivity timer to a timeout.
func (d *Downloader) classify(err error) domain.NetworkError {
	code := domain.ClassifyNetError(err)
	if code == domain.NetworkCanceled {
		d.mu.Lock()
		timed := d.timedOut
		d.mu.Unlock()
		if timed {
			return domain.NetworkTimeout
		}
	}
	return code
}

// armTimer (re)starts the instance-wide inactivity timer for an attempt.
func (d *Downloader) armTimer(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen || d.timeout <= 0 {
		return
	}
	d.timerGen = gen
	if d.timer == nil {
		d.timer = time.AfterFunc(d.timeout, d.timerFired)
	} else {
		d.timer.Reset(d.timeout)
	}
}

func (d *Downloader) timerFired() {
	d.mu.Lock()
	if d.timerGen != d.gen || d.cancelActive == nil {
		d.mu.Unlock()
		return
	}
	d.timedOut = true
	cancel := d.cancelActive
	d.mu.Unlock()
	cancel()
}
