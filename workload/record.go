package workload

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Op is the leading character of a command line.
type Op byte

const (
	OpInsert Op = 'p'
	OpGet    Op = 'g'
	OpDelete Op = 'd'
	OpRange  Op = 'r'
)

var (
	opNames = map[Op]string{
		OpInsert: "PUT",
		OpGet:    "GET",
		OpDelete: "DELETE",
		OpRange:  "RANGE",
	}
)

func ParseOp(s string) (Op, error) {
	if len(s) == 1 {
		op := Op(s[0])
		if _, ok := opNames[op]; ok {
			return op, nil
		}
	}
	return 0, errors.Wrapf(ErrBadRecord, "unknown operation %q", s)
}

func (self Op) String() string {
	return string(self)
}

// Name is the operation name latencies are measured under.
func (self Op) Name() string {
	if name, ok := opNames[self]; ok {
		return name
	}
	return "UNKNOWN"
}

// Arity is the number of integer operands following the operation.
func (self Op) Arity() int {
	switch self {
	case OpInsert, OpRange:
		return 2
	default:
		return 1
	}
}

// Record is one command. A range query keeps its lower end in Key and its
// upper end in Value.
type Record struct {
	Op    Op
	Key   int32
	Value int32
}

func Insert(key, value int32) Record {
	return Record{Op: OpInsert, Key: key, Value: value}
}

func Get(key int32) Record {
	return Record{Op: OpGet, Key: key}
}

func Delete(key int32) Record {
	return Record{Op: OpDelete, Key: key}
}

func RangeQuery(low, high int32) Record {
	return Record{Op: OpRange, Key: low, Value: high}
}

// AppendTo appends the command line of the record, without the newline.
func (self Record) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(self.Op), ' ')
	buf = strconv.AppendInt(buf, int64(self.Key), 10)
	if self.Op.Arity() == 2 {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(self.Value), 10)
	}
	return buf
}

func (self Record) String() string {
	return string(self.AppendTo(make([]byte, 0, 24)))
}

// ParseRecord parses one command line.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, errors.Wrap(ErrBadRecord, "empty line")
	}
	op, err := ParseOp(fields[0])
	if err != nil {
		return Record{}, err
	}
	if len(fields) != op.Arity()+1 {
		return Record{}, errors.Wrapf(ErrBadRecord, "%q takes %d operands: %q", op, op.Arity(), line)
	}
	r := Record{Op: op}
	if r.Key, err = parseInt32(fields[1]); err != nil {
		return Record{}, err
	}
	if op.Arity() == 2 {
		if r.Value, err = parseInt32(fields[2]); err != nil {
			return Record{}, err
		}
	}
	return r, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrBadRecord, "invalid integer %q", s)
	}
	return int32(v), nil
}
