// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts this report into a [structpb.Struct], suitable for
// serializing for consumption by other tools.
//
// The result has a single "diagnostics" field containing one object per
// diagnostic, in order.
func (r *Report) ToProto() (*structpb.Struct, error) {
	diagnostics := make([]any, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		diagnostics = append(diagnostics, r.Diagnostics[i].toMap())
	}
	return structpb.NewStruct(map[string]any{
		"diagnostics": diagnostics,
	})
}

// MarshalJSON implements [json.Marshaler], via [Report.ToProto].
func (r *Report) MarshalJSON() ([]byte, error) {
	pb, err := r.ToProto()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(pb)
}

func (d *Diagnostic) toMap() map[string]any {
	m := map[string]any{
		"level":   d.Level.String(),
		"message": d.Message(),
	}
	if path := d.Path(); path != "" {
		m["path"] = path
	}
	if pos := d.Pos(); !pos.IsZero() {
		m["line"] = pos.Line
		m["column"] = pos.Column
		m["offset"] = pos.Offset
	}

	if len(d.Annotations) > 0 {
		annotations := make([]any, 0, len(d.Annotations))
		for _, a := range d.Annotations {
			annotation := map[string]any{
				"start":   a.Start,
				"end":     a.End,
				"primary": a.Primary,
			}
			if a.Message != "" {
				annotation["message"] = a.Message
			}
			annotations = append(annotations, annotation)
		}
		m["annotations"] = annotations
	}

	strs := func(key string, values []string) {
		if len(values) == 0 {
			return
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		m[key] = list
	}
	strs("notes", d.Notes)
	strs("help", d.Help)
	return m
}
