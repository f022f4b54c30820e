package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type RequestOptions[T any] struct {
	Body        io.Reader
	ContentType string
	Headers     map[string]string
	QueryParams map[string]string
	Result      *T
}

func NewRequestOptions[T any](contentType string, result *T) *RequestOptions[T] {
	headers := make(map[string]string)
	headers["Content-Type"] = contentType

	return &RequestOptions[T]{
		ContentType: contentType,
		Headers:     headers,
		QueryParams: make(map[string]string),
		Result:      result,
	}
}

func (o *RequestOptions[T]) AddHeader(key string, value string) {
	o.Headers[key] = value
}

func (o *RequestOptions[T]) AddQueryParam(key string, value string) {
	o.QueryParams[key] = value
}

// SetBody encodes the body according to the content type: JSON for
// application/json, form encoding for a map[string]string body.
func (o *RequestOptions[T]) SetBody(body any) error {
	switch o.ContentType {
	case "application/json":
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		o.Body = bytes.NewBuffer(jsonBody)
		return nil
	case "application/x-www-form-urlencoded":
		form, ok := body.(map[string]string)
		if !ok {
			return errors.New("form bodies must be a map[string]string")
		}
		values := url.Values{}
		for key, value := range form {
			values.Add(key, value)
		}
		o.Body = strings.NewReader(values.Encode())
		return nil
	}
	return errors.Errorf("unsupported content type: %s", o.ContentType)
}

// DoRequest performs the request and, when a Result destination is set,
// unmarshals the response body into it. The raw body is returned
// otherwise.
func DoRequest[T any](method string, uri string, options *RequestOptions[T]) ([]byte, error) {
	httpClient := &http.Client{}

	if options != nil && len(options.QueryParams) > 0 {
		queryParams := url.Values{}
		for key, value := range options.QueryParams {
			queryParams.Add(key, value)
		}
		uri += "?" + queryParams.Encode()
	}

	body := io.Reader(nil)
	if options != nil {
		body = options.Body
	}

	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", uri)
	}

	if options != nil {
		for key, value := range options.Headers {
			req.Header.Set(key, value)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "requesting %s", uri)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, errors.Wrapf(err, "reading error response from %s", uri)
			}
			var errorResponse map[string]string
			if err := json.Unmarshal(respBody, &errorResponse); err == nil {
				return nil, errors.Errorf("status code %d: %s", resp.StatusCode, errorResponse["error_description"])
			}
		}
		return nil, errors.Errorf("status code %d from %s", resp.StatusCode, uri)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response from %s", uri)
	}

	if options != nil && options.Result != nil {
		if err := json.Unmarshal(respBody, options.Result); err != nil {
			return nil, errors.Wrapf(err, "decoding response from %s", uri)
		}
	}

	return respBody, nil
}
