package muxbind_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rctl"
	"github.com/rohanthewiz/rctl/consts"
	"github.com/rohanthewiz/rctl/muxbind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type title string

func (t title) Render(b *element.Builder) any {
	b.H1().T(string(t))
	return nil
}

type recLogger struct {
	info, warn []string
}

func (l *recLogger) Debug(string, ...string) {}
func (l *recLogger) Info(msg string, kv ...string) {
	l.info = append(l.info, msg+" "+strings.Join(kv, " "))
}
func (l *recLogger) Warn(msg string, kv ...string) {
	l.warn = append(l.warn, msg+" "+strings.Join(kv, " "))
}

func bundleController(got *[]any) *rctl.Controller {
	c := rctl.NewController(rctl.ControllerOptions{
		Name:               "bundle",
		ActionMethodSuffix: "Action",
		NoDefaultAction:    true,
		Logger:             rctl.NopLogger{},
	})
	c.HandleAction("bundleEdit", func(args rctl.Args) (any, error) {
		*got = args.Interfaces()
		return rctl.NewView(title("Edit bundle"), nil), nil
	})
	c.HandleAction("bundleBroken", func(rctl.Args) (any, error) {
		return 42, nil
	})
	return c
}

func get(t *testing.T, h http.Handler, method, target string) (*http.Response, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestMountDispatchesVarsInTemplateOrder(t *testing.T) {
	var got []any
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.Mount("/bundle/edit/{slug}/{id}", "bundle-edit", bundleController(&got), consts.MethodGet)

	resp, body := get(t, b, http.MethodGet, "/bundle/edit/nuff/10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, consts.ContentTypeHTML, resp.Header.Get(consts.HeaderContentType))
	assert.Equal(t, "bundleEditAction", resp.Header.Get(consts.HeaderXAction))
	assert.Contains(t, body, "Edit bundle")
	assert.Equal(t, []any{"nuff", 10.0}, got)
}

func TestMountLiteralLeftoverComesFirst(t *testing.T) {
	var got []any
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.Mount("/bundle/edit/nuff/{id}", "", bundleController(&got))

	resp, _ := get(t, b, http.MethodGet, "/bundle/edit/nuff/10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"nuff", 10.0}, got)
}

func TestMountNoActionIsNotFound(t *testing.T) {
	var got []any
	log := &recLogger{}
	b := muxbind.New(nil).SetLogger(log)
	b.Mount("/unknown/{id}", "unknown", bundleController(&got))

	resp, body := get(t, b, http.MethodGet, "/unknown/3")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusNotFound), body)
	require.Len(t, log.warn, 1)
	assert.Contains(t, log.warn[0], "status 404")
}

func TestMountInvalidResultIsServerError(t *testing.T) {
	var got []any
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.Mount("/bundle/broken", "broken", bundleController(&got))

	resp, _ := get(t, b, http.MethodGet, "/bundle/broken")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMountMethodRestriction(t *testing.T) {
	var got []any
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.Mount("/bundle/edit/{slug}", "", bundleController(&got), consts.MethodGet)

	resp, _ := get(t, b, http.MethodPost, "/bundle/edit/nuff")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Nil(t, got)
}

func TestCustomErrorHandler(t *testing.T) {
	var got []any
	var seen error
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		seen = err
		w.WriteHeader(http.StatusTeapot)
	})
	b.Mount("/nothing", "", bundleController(&got))

	resp, _ := get(t, b, http.MethodGet, "/nothing")
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.True(t, errors.Is(seen, rctl.ErrNoAction))
}

func TestActionErrorPassesToHandler(t *testing.T) {
	boom := errors.New("boom")
	c := rctl.NewController(rctl.ControllerOptions{Logger: rctl.NopLogger{}})
	c.Handle("index", func(rctl.Args) (any, error) { return nil, boom })

	var seen error
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		seen = err
		w.WriteHeader(muxbind.StatusFor(err))
	})
	b.Mount("/", "home", c)

	resp, _ := get(t, b, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Same(t, boom, seen)
}

func TestEmptyViewRendersEmptyBody(t *testing.T) {
	c := rctl.NewController(rctl.ControllerOptions{Logger: rctl.NopLogger{}})
	c.Handle("ping", func(rctl.Args) (any, error) { return nil, nil })

	b := muxbind.New(mux.NewRouter()).SetLogger(&recLogger{})
	b.Mount("/ping", "", c)

	resp, body := get(t, b, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ping", resp.Header.Get(consts.HeaderXAction))
	assert.Empty(t, body)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, muxbind.StatusFor(nil))
	assert.Equal(t, http.StatusNotFound, muxbind.StatusFor(&rctl.NoActionError{}))
	assert.Equal(t, http.StatusInternalServerError, muxbind.StatusFor(rctl.ErrInvalidActionResult))
	assert.Equal(t, http.StatusInternalServerError, muxbind.StatusFor(errors.New("x")))
}

func TestListRoutes(t *testing.T) {
	var got []any
	ctrl := bundleController(&got)
	b := muxbind.New(nil)
	b.Mount("/bundle/edit/{slug}", "edit", ctrl, consts.MethodGet, consts.MethodPost)
	b.Group("/admin").Mount("/bundle/broken", "broken", ctrl)

	assert.Equal(t, []muxbind.RouteList{
		{Method: "GET", Path: "/bundle/edit/{slug}", Name: "edit"},
		{Method: "POST", Path: "/bundle/edit/{slug}", Name: "edit"},
		{Method: "*", Path: "/admin/bundle/broken", Name: "broken"},
	}, b.ListRoutes())
}

func TestRequestInfoLogsStatus(t *testing.T) {
	var got []any
	log := &recLogger{}
	b := muxbind.New(nil).SetLogger(rctl.NopLogger{})
	b.Use(muxbind.RequestInfo(log))
	b.Mount("/bundle/edit/{slug}", "", bundleController(&got))
	b.Mount("/missing", "", bundleController(&got))

	get(t, b, http.MethodGet, "/bundle/edit/nuff")
	get(t, b, http.MethodGet, "/missing")

	require.Len(t, log.info, 2)
	assert.Contains(t, log.info[0], "method GET path /bundle/edit/nuff status 200")
	assert.Contains(t, log.info[1], "path /missing status 404")
}

func TestSharedControllerAcrossMounts(t *testing.T) {
	var got []any
	ctrl := bundleController(&got)
	b := muxbind.New(nil).SetLogger(&recLogger{})
	b.Mount("/bundle/edit/{slug}", "a", ctrl)
	b.Group("/v2").Mount("/bundle/edit/{slug}", "b", ctrl)

	resp, _ := get(t, b, http.MethodGet, "/v2/bundle/edit/two")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"two"}, got)

	resp, _ = get(t, b, http.MethodGet, "/bundle/edit/one")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"one"}, got)
}
