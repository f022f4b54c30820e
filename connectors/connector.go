// Package connectors fetches manifest documents from wherever they live,
// selected by URI scheme.
package connectors

import (
	"strings"

	"github.com/pkg/errors"
)

type Connector interface {
	NewFromURI(uri string) (Connector, error)

	GetURI() string
	GetScheme() string

	Connect() error
	// Fetch downloads the document the URI points at.
	Fetch() ([]byte, error)
	Close() error
}

var CONNECTORS = map[string]Connector{
	"file":  new(FileConnector),
	"http":  new(HTTPConnector),
	"https": new(HTTPConnector),
	"sftp":  new(SFTPConnector),
}

func FindConnectorFromURI(uri string) (Connector, error) {
	for scheme, connector := range CONNECTORS {
		if strings.HasPrefix(uri, scheme+"://") {
			return connector.NewFromURI(uri)
		}
	}
	return nil, errors.Errorf("no connector for uri %q", uri)
}
