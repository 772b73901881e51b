package httpx

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/livro", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseForm_URLEncoded(t *testing.T) {
	r := formRequest(url.Values{"title": {"Dom Casmurro"}})

	require.NoError(t, ParseForm(r))
	assert.Equal(t, "Dom Casmurro", r.FormValue("title"))
}

func TestParseForm_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Companhia das Letras"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/editora", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	require.NoError(t, ParseForm(r))
	assert.Equal(t, "Companhia das Letras", r.FormValue("name"))
}

func TestParseForm_MalformedURLEncoded(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/autor", strings.NewReader("name=%zz"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.Error(t, ParseForm(r))
}

func TestParseForm_MalformedMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/editora", strings.NewReader("not a multipart body"))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	assert.Error(t, ParseForm(r))
}

func TestParseForm_NoBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/livro?title=Iracema", nil)

	require.NoError(t, ParseForm(r))
	assert.Equal(t, "Iracema", r.FormValue("title"))
}

func TestFormInt64(t *testing.T) {
	r := formRequest(url.Values{"publisher_id": {" 42 "}, "bad": {"x1"}})
	require.NoError(t, ParseForm(r))

	n, err := FormInt64(r, "publisher_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = FormInt64(r, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = FormInt64(r, "bad")
	assert.Error(t, err)
}

func TestFormInt64List(t *testing.T) {
	r := formRequest(url.Values{"author_ids": {"1", "2,3", " 4 ,"}})
	require.NoError(t, ParseForm(r))

	ids, err := FormInt64List(r, "author_ids")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	r = formRequest(url.Values{"author_ids": {"1", "two"}})
	require.NoError(t, ParseForm(r))
	_, err = FormInt64List(r, "author_ids")
	assert.Error(t, err)
}

func TestFormTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"1899-01-01", time.Date(1899, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"1981-05-10T08:30:00", time.Date(1981, 5, 10, 8, 30, 0, 0, time.UTC)},
		{"2020-02-29T10:00:00Z", time.Date(2020, 2, 29, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		r := formRequest(url.Values{"publication_date": {tt.in}})
		require.NoError(t, ParseForm(r))

		got, err := FormTime(r, "publication_date")
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %v", tt.in, got)
	}

	r := formRequest(url.Values{"publication_date": {"yesterday"}})
	require.NoError(t, ParseForm(r))
	_, err := FormTime(r, "publication_date")
	assert.Error(t, err)

	r = formRequest(url.Values{})
	require.NoError(t, ParseForm(r))
	got, err := FormTime(r, "publication_date")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
