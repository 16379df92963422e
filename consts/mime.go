package consts

const (
	MIMETextPlain = "text/plain"
	MIMEHTML      = "text/html"
	MIMEJSON      = "application/json"
	MIMETOML      = "application/toml"
)

const (
	ContentTypeHTML = MIMEHTML + "; charset=utf-8"
	ContentTypeText = MIMETextPlain + "; charset=utf-8"
)
