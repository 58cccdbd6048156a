package games

import (
	"net/url"
	"testing"
)

func TestShareURL(t *testing.T) {
	msg := "Scored 42 points & counting? yes!"
	raw := ShareURL(msg)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("ShareURL produced an invalid URL: %v", err)
	}
	if u.Host != "www.linkedin.com" || u.Path != "/messaging/compose" {
		t.Errorf("Unexpected target %s%s", u.Host, u.Path)
	}
	q := u.Query()
	if q.Get("recipient") != "geet-h17" {
		t.Errorf("Unexpected recipient %q", q.Get("recipient"))
	}
	if q.Get("body") != msg {
		t.Errorf("Body round trip: got %q", q.Get("body"))
	}
}
