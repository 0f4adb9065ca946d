package duo

import (
	"net/http"
)

//go:generate mockgen -destination=mock_duo.go -package=duo github.com/carverauto/duocleanup/pkg/duo HTTPClient

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
