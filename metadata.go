// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import "github.com/mitchellh/mapstructure"

// DecodeMetadata decodes r's opaque Metadata map into out, a pointer to a
// struct or map. It is a convenience for hosts that would rather work with
// a typed value than a raw map[string]any; the core itself never interprets
// Metadata.
func (r ResolvedPathItem) DecodeMetadata(out any) error {
	return mapstructure.Decode(r.Metadata, out)
}
