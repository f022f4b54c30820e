package connectors

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/craftline/craftline/utils"
)

type HTTPConnector struct {
	uri string
}

func (c *HTTPConnector) NewFromURI(uri string) (Connector, error) {
	return &HTTPConnector{uri: uri}, nil
}

func (c *HTTPConnector) GetURI() string { return c.uri }

func (c *HTTPConnector) GetScheme() string {
	if strings.HasPrefix(c.uri, "https://") {
		return "https"
	}
	return "http"
}

func (c *HTTPConnector) Connect() error { return nil }

func (c *HTTPConnector) Fetch() ([]byte, error) {
	data, err := utils.DoRequest[struct{}](http.MethodGet, c.uri, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", c.uri)
	}
	return data, nil
}

func (c *HTTPConnector) Close() error { return nil }
