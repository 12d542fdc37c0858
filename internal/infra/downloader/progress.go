package downloader

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

const readChunk = 32 * 1024

// readBody drains the response body in chunks, emitting a progress event
// and pushing the inactivity deadline out after every chunk. The optional
// throttle limiter is charged per chunk.
func (d *Downloader) readBody(ctx context.Context, gen uint64, resp *http.Response) ([]byte, error) {
	total := resp.ContentLength // -1 when unknown

	var buf bytes.Buffer
	chunk := make([]byte, readChunk)
	var received int64

	for {
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			received += int64(n)

			if d.limiter != nil {
				if werr := d.limiter.WaitN(ctx, n); werr != nil {
					return buf.Bytes(), werr
				}
			}
			d.noteProgress(gen, received, total)
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return buf.Bytes(), err
		}
	}
}

func (d *Downloader) noteProgress(gen uint64, received, total int64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	if d.timeout > 0 && d.timer != nil {
		// Inactivity semantics: the deadline extends as long as bytes arrive.
		d.timer.Reset(d.timeout)
	}
	cb := d.onProgress
	d.mu.Unlock()

	if cb != nil {
		cb(received, total)
	}
}
