package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type generationSchema interface {
	Versioned
	validate() error
}

// Parse resolves a raw manifest document against the six known schema
// generations, newest first, and returns the first one that accepts it.
//
// Newest-first matters: the older generations are near-subsets of the
// newer ones, so walking oldest-first would silently downgrade a modern
// document to a legacy representation and lose javaVersion, structured
// arguments and the mapping downloads. Walking newest-first is not fully
// safe either -- an old document that happens to satisfy a newer strict
// schema would be promoted -- which is why every generation rejects
// unknown fields and checks its own marker fields before accepting.
func Parse(data []byte) (Versioned, error) {
	for _, schema := range []generationSchema{&V6{}, &V5{}, &V4{}, &V3{}, &V2{}, &V1{}} {
		if err := decodeStrict(data, schema); err != nil {
			continue
		}
		if err := schema.validate(); err != nil {
			continue
		}
		return schema, nil
	}
	return nil, ErrUnrecognizedManifest
}

// Serialize writes the manifest back out in its own generation's shape.
// The round trip is lossless: no fields are dropped or invented, so a
// failure here means the typed value itself is broken.
func Serialize(m Versioned) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "serializing manifest: invariant violation")
	}
	return data, nil
}

func decodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after manifest document")
	}
	return nil
}
