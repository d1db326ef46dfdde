package memory

import (
	"github.com/go-viper/mapstructure/v2"
)

// decodeDocument maps stored document data onto a struct using the same
// `firestore` tags the Cloud Firestore client reads, so models carry one
// set of storage tags for both adapters.
func decodeDocument(data map[string]any, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "firestore",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
