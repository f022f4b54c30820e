package connectors

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

type FileConnector struct {
	uri  string
	path string
}

func (c *FileConnector) NewFromURI(uri string) (Connector, error) {
	return &FileConnector{
		uri:  uri,
		path: strings.TrimPrefix(uri, "file://"),
	}, nil
}

func (c *FileConnector) GetURI() string { return c.uri }

func (c *FileConnector) GetScheme() string { return "file" }

func (c *FileConnector) Connect() error { return nil }

func (c *FileConnector) Fetch() ([]byte, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", c.path)
	}
	return data, nil
}

func (c *FileConnector) Close() error { return nil }
