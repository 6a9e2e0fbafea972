package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ActivePosts fetches posts across every active location.
func (c *Client) ActivePosts(ctx context.Context, pageSize int, pageToken string) (*PostsPage, error) {
	if pageSize <= 0 {
		pageSize = defaultPostsPerPage
	}
	q := url.Values{"page_size": {strconv.Itoa(pageSize)}}
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}

	var page PostsPage
	if err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    "/active-posts",
		query:   q,
		timeout: PostsTimeout,
		noCache: true,
	}, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// CreatePost publishes a simple post with the backend defaults.
func (c *Client) CreatePost(ctx context.Context, in NewPost) (*Post, error) {
	q := url.Values{
		"location_id": {bareID(in.LocationID)},
		"summary":     {in.Summary},
	}
	if in.MediaURL != "" {
		q.Set("media_url", in.MediaURL)
	}

	return c.createPost(ctx, "/active-posts/create", q)
}

// CreateExtendedPost publishes a post with explicit language, topic and call to action.
func (c *Client) CreateExtendedPost(ctx context.Context, in NewPost) (*Post, error) {
	q := url.Values{
		"location_id": {bareID(in.LocationID)},
		"summary":     {in.Summary},
	}
	for key, value := range map[string]string{
		"media_url":     in.MediaURL,
		"language_code": in.LanguageCode,
		"topic_type":    in.TopicType,
		"cta_type":      in.CTAType,
		"cta_url":       in.CTAURL,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}

	return c.createPost(ctx, "/active-posts/create-extended", q)
}

func (c *Client) createPost(ctx context.Context, path string, q url.Values) (*Post, error) {
	var post Post
	if err := c.do(ctx, request{method: http.MethodPost, path: path, query: q, timeout: PostsTimeout}, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// UploadImage sends r as the multipart "file" field.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*UploadedImage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(filepath.Base(filename))+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart part")
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart body")
	}

	var out UploadedImage
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/upload-image",
		body:        &buf,
		contentType: w.FormDataContentType(),
		timeout:     UploadTimeout,
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
