package rangecat

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/multirange/adapter/boltdb"
	"go.llib.dev/multirange/adapter/localfs"
	"go.llib.dev/multirange/pkg/rangekit"
)

const ErrInvalidSource errorkit.Error = "ErrInvalidSource"

const (
	KindFile   = "file"
	KindBolt   = "bolt"
	KindInline = "inline"
	KindStdin  = "stdin"
)

// Source describes where the elements of a stage come from.
type Source struct {
	Kind   string   `yaml:"kind"`
	Path   string   `yaml:"path,omitempty"`
	Bucket string   `yaml:"bucket,omitempty"`
	Prefix string   `yaml:"prefix,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

// ParseSource interprets a command line source argument.
//
//	-                         the lines of the standard input
//	inline:a,b,c              the listed values
//	bolt:DBPATH:BUCKET        the values of a bolt bucket, in key order
//	bolt:DBPATH:BUCKET:PREFIX the values of the keys starting with PREFIX
//	file:PATH or PATH         the lines of a file
func ParseSource(arg string) (Source, error) {
	switch {
	case arg == "":
		return Source{}, ErrInvalidSource.F("empty source")
	case arg == "-":
		return Source{Kind: KindStdin}, nil
	case strings.HasPrefix(arg, KindInline+":"):
		raw := strings.TrimPrefix(arg, KindInline+":")
		var values = make([]string, 0)
		if raw != "" {
			values = strings.Split(raw, ",")
		}
		return Source{Kind: KindInline, Values: values}, nil
	case strings.HasPrefix(arg, KindBolt+":"):
		parts := strings.SplitN(strings.TrimPrefix(arg, KindBolt+":"), ":", 3)
		if len(parts) < 2 {
			return Source{}, ErrInvalidSource.F("bolt source requires a path and a bucket: %q", arg)
		}
		src := Source{Kind: KindBolt, Path: parts[0], Bucket: parts[1]}
		if len(parts) == 3 {
			src.Prefix = parts[2]
		}
		return src, src.Validate()
	default:
		src := Source{Kind: KindFile, Path: strings.TrimPrefix(arg, KindFile+":")}
		return src, src.Validate()
	}
}

func (src Source) Validate() error {
	switch src.Kind {
	case KindFile:
		if src.Path == "" {
			return ErrInvalidSource.F("file source without a path")
		}
	case KindBolt:
		if src.Path == "" || src.Bucket == "" {
			return ErrInvalidSource.F("bolt source requires a path and a bucket")
		}
	case KindInline, KindStdin:
	default:
		return ErrInvalidSource.F("unknown source kind: %q", src.Kind)
	}
	return nil
}

func (src Source) String() string {
	switch src.Kind {
	case KindStdin:
		return "-"
	case KindInline:
		return KindInline + ":" + strings.Join(src.Values, ",")
	case KindBolt:
		s := KindBolt + ":" + src.Path + ":" + src.Bucket
		if src.Prefix != "" {
			s += ":" + src.Prefix
		}
		return s
	default:
		if src.Path == "-" ||
			strings.HasPrefix(src.Path, KindInline+":") ||
			strings.HasPrefix(src.Path, KindBolt+":") ||
			strings.HasPrefix(src.Path, KindFile+":") {
			return KindFile + ":" + src.Path
		}
		return src.Path
	}
}

// stage is an opened source, bound both as a Chain stage and as an erased range.
type stage struct {
	name   string
	chain  rangekit.Stage[string]
	erased rangekit.Range[rangekit.ErasedPosition[string], string]
	err    func() error
	close  func() error
}

func bind[P rangekit.Position[P, string]](name string, r rangekit.Range[P, string]) stage {
	return stage{
		name:   name,
		chain:  rangekit.StageOf(r),
		erased: rangekit.Erase(r),
		err:    func() error { return nil },
		close:  func() error { return nil },
	}
}

type opener struct {
	fsys  localfs.FileSystem
	stdin io.Reader
	// lines of the standard input, read at the first use
	stdinLines []string
	stdinRead  bool
}

func (o *opener) Open(src Source) (stage, error) {
	switch src.Kind {
	case KindInline:
		return bind(src.String(), rangekit.Slice(src.Values)), nil

	case KindStdin:
		lines, err := o.readStdin()
		if err != nil {
			return stage{}, err
		}
		return bind(src.String(), rangekit.Slice(lines)), nil

	case KindFile:
		file, err := o.fsys.Open(src.Path)
		if err != nil {
			return stage{}, err
		}
		s := bind(src.String(), file.Range())
		s.err = file.Err
		s.close = file.Close
		return s, nil

	case KindBolt:
		return openBolt(src)

	default:
		return stage{}, src.Validate()
	}
}

func (o *opener) readStdin() ([]string, error) {
	if o.stdinRead {
		return o.stdinLines, nil
	}
	o.stdinRead = true
	if o.stdin == nil {
		return nil, nil
	}
	scanner := bufio.NewScanner(o.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		o.stdinLines = append(o.stdinLines, scanner.Text())
	}
	return o.stdinLines, scanner.Err()
}

func openBolt(src Source) (_ stage, returnErr error) {
	db, err := bolt.Open(src.Path, 0600, &bolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return stage{}, err
	}
	defer func() {
		if returnErr != nil {
			returnErr = errorkit.Merge(returnErr, db.Close())
		}
	}()
	tx, err := db.Begin(false)
	if err != nil {
		return stage{}, err
	}
	var opts []boltdb.Option
	if src.Prefix != "" {
		opts = append(opts, boltdb.Prefix([]byte(src.Prefix)))
	}
	r, err := boltdb.Range(tx, []byte(src.Bucket), opts...)
	if err != nil {
		return stage{}, errorkit.Merge(err, tx.Rollback())
	}
	s := bind(src.String(), rangekit.View(r, func(kv boltdb.KV) string {
		return string(kv.Value)
	}))
	s.close = func() error {
		return errorkit.Merge(tx.Rollback(), db.Close())
	}
	return s, nil
}
