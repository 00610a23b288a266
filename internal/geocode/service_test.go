package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeocodeService_LocationName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "city", body: `{"address":{"city":"Mysuru","town":"X","state":"Karnataka"}}`, want: "Mysuru, Karnataka"},
		{name: "town", body: `{"address":{"town":"Tenali","state":"Andhra Pradesh"}}`, want: "Tenali, Andhra Pradesh"},
		{name: "village", body: `{"address":{"village":"Hampi","state":"Karnataka"}}`, want: "Hampi, Karnataka"},
		{name: "state only", body: `{"address":{"state":"Telangana"}}`, want: "Telangana"},
		{name: "place only", body: `{"address":{"city":"Pune"}}`, want: "Pune"},
		{name: "no address", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ua, format string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ua = r.Header.Get("User-Agent")
				format = r.URL.Query().Get("format")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got := NewGeocodeService(srv.URL, srv.Client()).LocationName(context.Background(), "12.3", "76.6")

			require.Equal(t, tt.want, got)
			require.Equal(t, DefaultUserAgent, ua)
			require.Equal(t, "json", format)
		})
	}
}

func TestGeocodeService_LocationName_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "1" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	gs := NewGeocodeService(srv.URL, srv.Client())

	require.Equal(t, "", gs.LocationName(context.Background(), "1", "1"))
	require.Equal(t, "", gs.LocationName(context.Background(), "2", "2"))
	require.Equal(t, "", gs.LocationName(context.Background(), "999", "2"))
}
