package yawg

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Properties map[string]string

func NewProperties() Properties {
	return make(Properties)
}

func (self Properties) Add(key, value string) {
	self[key] = value
}

// Merge copies all the entries of other into this one, overwriting
// existing keys.
func (self Properties) Merge(other map[string]string) {
	for k, v := range other {
		self[k] = v
	}
}

func (self Properties) Clone() Properties {
	ret := make(Properties, len(self))
	for k, v := range self {
		ret[k] = v
	}
	return ret
}

func (self Properties) Get(key string) string {
	v, _ := self[key]
	return v
}

func (self Properties) GetDefault(key string, defaultValue string) string {
	if v, ok := self[key]; ok {
		return v
	}
	return defaultValue
}

// GetInt64 parses a decimal integer, a leading zero is not an octal prefix.
func (self Properties) GetInt64(key string, defaultValue string) (int64, error) {
	propStr := self.GetDefault(key, defaultValue)
	v, err := strconv.ParseInt(propStr, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s=%s", key, propStr)
	}
	return v, nil
}

func (self Properties) GetFloat64(key string, defaultValue string) (float64, error) {
	propStr := self.GetDefault(key, defaultValue)
	v, err := strconv.ParseFloat(propStr, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s=%s", key, propStr)
	}
	return v, nil
}

func (self Properties) GetBool(key string, defaultValue string) (bool, error) {
	propStr := self.GetDefault(key, defaultValue)
	v, err := strconv.ParseBool(propStr)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s=%s", key, propStr)
	}
	return v, nil
}

// Keys returns the property names in sorted order.
func (self Properties) Keys() []string {
	keys := make([]string, 0, len(self))
	for k := range self {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseProperty splits a "name=value" argument.
func ParseProperty(arg string) (string, string, error) {
	i := strings.Index(arg, "=")
	if i <= 0 {
		return "", "", errors.Errorf("invalid property: %s", arg)
	}
	return arg[:i], arg[i+1:], nil
}

// LoadProperties reads a property file. The file is a flat YAML mapping,
// scalar values of any type are kept in their textual form.
func LoadProperties(filename string) (Properties, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to read property file %s", filename)
	}
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrapf(err, "fail to parse property file %s", filename)
	}
	p := NewProperties()
	for k, v := range raw {
		switch v.(type) {
		case map[interface{}]interface{}, []interface{}:
			return nil, errors.Errorf("property %s in %s is not a scalar", k, filename)
		case nil:
			p.Add(k, "")
		case float64:
			// no exponent form, so 100000000.0 still reads as an integer
			p.Add(k, strconv.FormatFloat(v.(float64), 'f', -1, 64))
		default:
			p.Add(k, fmt.Sprint(v))
		}
	}
	return p, nil
}

func SinceNS(start time.Time) int64 {
	return int64(time.Since(start))
}
