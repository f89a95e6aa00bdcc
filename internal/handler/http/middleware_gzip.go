package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/ar-fit/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzipBody transparently inflates request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's Compress.
func withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") || req.Body == nil || req.Body == http.NoBody {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteError(w, "invalid gzip data", http.StatusBadRequest)
			return
		}

		original := req.Body
		req.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
				original.Close()
			},
		}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()

	once sync.Once
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.once.Do(w.OnClose)
	}
	return nil
}
