package httpx

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxMultipartMemory = 1 << 20

// ParseForm accepts url-encoded and multipart bodies. A malformed body is an
// error.
func ParseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.ParseForm()
	}
	return r.ParseMultipartForm(maxMultipartMemory)
}

// FormInt64 parses an optional integer form value. It returns 0 when absent.
func FormInt64(r *http.Request, key string) (int64, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// FormInt64List reads a repeated key; each value may also hold a
// comma-separated list.
func FormInt64List(r *http.Request, key string) ([]int64, error) {
	var out []int64
	for _, raw := range r.Form[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must contain integers", key)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormTime parses an optional date form value. It returns the zero time when
// absent.
func FormTime(r *http.Request, key string) (time.Time, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s must be a date (YYYY-MM-DD) or date-time", key)
}
