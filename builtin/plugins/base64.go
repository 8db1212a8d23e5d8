package plugins

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gauntletsec/gauntlet/module"
)

// Base64 encodes the running text, hiding trigger words from naive
// filters while many models still decode it.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Options() ([]string, bool, error) {
	return []string{"standard", "url"}, false, nil
}

func (Base64) Describe() ([]module.Tag, string, error) {
	return []module.Tag{module.TagEncoding},
		"Base64-encodes the text, optionally with the URL-safe alphabet.", nil
}

func (Base64) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	variant := opts.Variant([]string{"standard", "url"})

	var enc *base64.Encoding
	switch variant {
	case "standard":
		enc = base64.StdEncoding
	case "url":
		enc = base64.URLEncoding
	default:
		return "", fmt.Errorf("base64: unknown variant %q", variant)
	}

	if log != nil {
		log.Append(Note{Plugin: "base64", Detail: variant})
	}
	return enc.EncodeToString([]byte(text)), nil
}
