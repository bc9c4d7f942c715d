package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Encode converts a struct into a Document using its json tags. time.Time fields end up
// as RFC 3339 strings.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	return doc, nil
}

// Decode fills out from doc. It is the inverse of Encode.
func Decode(doc Document, out any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}
	return nil
}

func decodeBytes(raw []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("docstore: decode: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

func keyOf(doc Document) (string, error) {
	id, ok := doc[KeyField].(string)
	if !ok || id == "" {
		return "", ErrMissingKey
	}
	return id, nil
}

func cloneDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// normalize maps Go values onto the kinds a decoded Document holds, so filters written
// with ints or time.Time match stored float64s and strings.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case Filter:
		return map[string]any(x)
	}
	return v
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			if want == nil {
				continue
			}
			return false
		}
		if !reflect.DeepEqual(normalize(got), normalize(want)) {
			return false
		}
	}
	return true
}

// compareValues orders RFC 3339 timestamps chronologically and everything else by kind.
func compareValues(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		at, aerr := time.Parse(time.RFC3339Nano, as)
		bt, berr := time.Parse(time.RFC3339Nano, bs)
		if aerr == nil && berr == nil {
			return at.Compare(bt)
		}
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	}
	af, aok := normalize(a).(float64)
	bf, bok := normalize(b).(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	// nil and missing values sort first.
	switch {
	case a == nil && b != nil:
		return -1
	case a != nil && b == nil:
		return 1
	}
	return 0
}

// applyFindOptions sorts and limits docs in place. The sort is stable, so equal keys
// keep insertion order.
func applyFindOptions(docs []Document, opts *FindOptions) []Document {
	if opts == nil {
		return docs
	}
	if opts.SortBy != "" {
		dir := 1
		if opts.Order == Descending {
			dir = -1
		}
		sort.SliceStable(docs, func(i, j int) bool {
			return dir*compareValues(docs[i][opts.SortBy], docs[j][opts.SortBy]) < 0
		})
	}
	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs
}

// upsertDocument is the document inserted when an upsert matches nothing.
func upsertDocument(filter Filter, set Document, opts *UpdateOptions) Document {
	doc := Document{}
	if opts != nil {
		for k, v := range opts.SetOnInsert {
			doc[k] = v
		}
	}
	for k, v := range filter {
		doc[k] = normalize(v)
	}
	for k, v := range set {
		doc[k] = v
	}
	return doc
}
