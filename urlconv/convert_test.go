package urlconv

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConvertFollowsRedirectChain(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/share/abc", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/interstitial", http.StatusFound)
	})
	mux.HandleFunc("/interstitial", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/maps/place/East+Harlem+Bottling+Co", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/maps/place/East+Harlem+Bottling+Co", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>place page</body></html>")
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	conv := NewConverter(5*time.Second, zap.NewNop())
	full, err := conv.Convert(server.URL + "/share/abc")
	require.NoError(t, err)
	require.Equal(t, server.URL+"/maps/place/East+Harlem+Bottling+Co", full)
}

func TestConvertFollowsMetaRefresh(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/share/xyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w,
			`<html><head><meta http-equiv="refresh" content="0; URL=%s/maps/place/Corner+Slice"></head></html>`,
			server.URL)
	})
	mux.HandleFunc("/maps/place/Corner+Slice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>place page</body></html>")
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	conv := NewConverter(5*time.Second, zap.NewNop())
	full, err := conv.Convert(server.URL + "/share/xyz")
	require.NoError(t, err)
	require.Equal(t, server.URL+"/maps/place/Corner+Slice", full)
}

func TestConvertRejectsNonPlaceURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/share/nope", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>not a place</body></html>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	conv := NewConverter(5*time.Second, zap.NewNop())
	full, err := conv.Convert(server.URL + "/share/nope")
	require.ErrorIs(t, err, ErrNoPlaceURL)
	require.Equal(t, server.URL+"/share/nope", full)
}

func TestIsPlaceURL(t *testing.T) {
	require.True(t, IsPlaceURL("https://www.google.com/maps/place/Foo/@40.7,-73.9,17z"))
	require.False(t, IsPlaceURL("https://share.google/BZ1MKnpaihk5PX6OO"))
}
