// Package boltdb exposes the key ordered content of a bolt bucket as a rangekit.Range.
package boltdb

import (
	"bytes"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/multirange/pkg/rangekit"
)

const ErrBucketNotFound errorkit.Error = "ErrBucketNotFound"

// KV is a key-value pair of a bucket.
// The byte slices are only valid for the life of the transaction the range was made in.
type KV struct {
	Key   []byte
	Value []byte
}

// KeyPosition is a position in a bolt bucket.
// The end position of a range has no key.
type KeyPosition struct {
	bucket *bolt.Bucket
	prefix []byte
	key    []byte
	value  []byte
}

func (p KeyPosition) Equal(o KeyPosition) bool {
	return p.bucket == o.bucket && bytes.Equal(p.key, o.key)
}

func (p KeyPosition) Next() KeyPosition {
	if p.key == nil {
		return p
	}
	c := p.bucket.Cursor()
	k, v := c.Seek(p.key)
	if k != nil && bytes.Equal(k, p.key) {
		k, v = c.Next()
	}
	return p.at(k, v)
}

func (p KeyPosition) Get() *KV {
	return &KV{Key: p.key, Value: p.value}
}

// Key is the key at the position, or nil at the end of the range.
func (p KeyPosition) Key() []byte { return p.key }

// at positions to the given key, or to the end if the key is outside of the range.
func (p KeyPosition) at(k, v []byte) KeyPosition {
	// a nil value marks a nested bucket, those are not part of the range
	for k != nil && v == nil {
		c := p.bucket.Cursor()
		c.Seek(k)
		k, v = c.Next()
	}
	if k == nil || !bytes.HasPrefix(k, p.prefix) {
		return KeyPosition{bucket: p.bucket, prefix: p.prefix}
	}
	return KeyPosition{bucket: p.bucket, prefix: p.prefix, key: k, value: v}
}

type Config struct {
	// Prefix limits the range to the keys starting with it.
	Prefix []byte
	// Seek is the key where the range starts.
	// When the key is not present, the range starts at the next key.
	Seek []byte
}

func (c Config) Configure(t *Config) { option.Configure(c, t) }

type Option option.Option[Config]

func Prefix(prefix []byte) Option {
	return option.Func[Config](func(c *Config) { c.Prefix = prefix })
}

func Seek(key []byte) Option {
	return option.Func[Config](func(c *Config) { c.Seek = key })
}

// Range returns the range of the key-value pairs of a bucket in key order.
// The range must not be used after the transaction is closed.
// Keys that are inserted during the transaction ahead of a position are visited,
// as every step seeks the bucket again.
func Range(tx *bolt.Tx, bucket []byte, opts ...Option) (rangekit.Range[KeyPosition, KV], error) {
	c := option.Use[Config](opts)
	b := tx.Bucket(bucket)
	if b == nil {
		return rangekit.Range[KeyPosition, KV]{}, ErrBucketNotFound.F("bucket: %q", bucket)
	}
	start := c.Prefix
	if bytes.Compare(start, c.Seek) < 0 {
		start = c.Seek
	}
	end := KeyPosition{bucket: b, prefix: c.Prefix}
	var (
		cur  = b.Cursor()
		k, v []byte
	)
	if len(start) == 0 {
		k, v = cur.First()
	} else {
		k, v = cur.Seek(start)
	}
	return rangekit.Range[KeyPosition, KV]{
		From: end.at(k, v),
		To:   end,
	}, nil
}

// Values returns the values of the range.
func Values(r rangekit.Range[KeyPosition, KV]) rangekit.Range[rangekit.ViewPosition[KeyPosition, KV, []byte], []byte] {
	return rangekit.View(r, func(kv KV) []byte { return kv.Value })
}
