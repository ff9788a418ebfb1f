package internal

const (
	COOKIE_REDIRECT_NAME = "caresmv_redirect"
)
