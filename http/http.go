// Package http wraps GET requests with a timeout suited for the
// RCSB download endpoints.
package http

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const timeout = 120 * time.Second

// Get fetches the given URL and returns the response body.
// A non-200 status code is an error.
func Get(url string) ([]byte, error) {
	client := http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Encoding", "text/html")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP status code %d", res.StatusCode)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
