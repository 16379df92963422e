package muxbind

import (
	"io"
	"net/http"
	"strconv"

	"github.com/rohanthewiz/rctl/consts"
	"github.com/rohanthewiz/serr"
)

// HTML sends body with status and the content type set to `text/html`.
// Rendered views describe controller state, so they are never cached.
func HTML(w http.ResponseWriter, status int, body string) error {
	w.Header().Set(consts.HeaderContentType, consts.ContentTypeHTML)
	w.Header().Set(consts.HeaderCacheControl, "no-store")
	return write(w, status, body)
}

// Text sends body with status and the content type set to `text/plain`.
func Text(w http.ResponseWriter, status int, body string) error {
	w.Header().Set(consts.HeaderContentType, consts.ContentTypeText)
	return write(w, status, body)
}

func write(w http.ResponseWriter, status int, body string) error {
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		return serr.Wrap(err, "status", strconv.Itoa(status))
	}
	return nil
}
