package downloader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/ports"
)

// SyncFetcher adapts a Downloader to the blocking ports.Fetcher interface
// used by usecases. Calls are serialized; the underlying Downloader is
// reused across them.
type SyncFetcher struct {
	d *Downloader

	callMu sync.Mutex
	ch     chan syncOutcome
}

type syncOutcome struct {
	code domain.NetworkError
	body []byte
}

func NewSyncFetcher(opts ...Option) *SyncFetcher {
	f := &SyncFetcher{}
	opts = append(opts, OnCompleted(f.deliver))
	f.d = New(opts...)
	return f
}

var _ ports.Fetcher = (*SyncFetcher)(nil)

// SetHeader registers a custom header on the underlying Downloader.
func (f *SyncFetcher) SetHeader(name, value string) {
	f.d.SetHeader(name, value)
}

func (f *SyncFetcher) FetchBytes(ctx context.Context, url string, timeout time.Duration) ([]byte, string, error) {
	f.callMu.Lock()
	defer f.callMu.Unlock()

	f.ch = make(chan syncOutcome, 1)
	f.d.Fetch(url, timeout, domain.Credentials{})

	var out syncOutcome
	select {
	case out = <-f.ch:
	case <-ctx.Done():
		f.d.Cancel()
		// Completion still fires through the normal path.
		out = <-f.ch
	}

	if out.code != domain.NetworkNoError {
		return nil, "", &domain.OpError{
			Op:   "downloader.fetch",
			Kind: domain.KindNetwork,
			Err:  fmt.Errorf("transport error: %s", out.code),
		}
	}
	return out.body, f.d.LastContentType(), nil
}

func (f *SyncFetcher) deliver(code domain.NetworkError, body []byte) {
	f.ch <- syncOutcome{code: code, body: body}
}
