// Package env provides a uniform way of dealing with environment such as .env files and os.Environ.
// The goal is, that applications don't have to care about the source from a variable but just handle the values.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/mazzegi/mcal/convert"
)

// merge merges "from" env into "to" env, keeping already existing values
func merge(from map[string]any, to map[string]any) {
	for k, v := range from {
		if _, ok := to[k]; !ok {
			to[k] = v
		}
	}
}

func unquote(s string) string {
	if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`)) {
		return s[1 : len(s)-1]
	}
	return s
}

type Var struct {
	Key   string
	Value any
}

func MkVar(k string, v any) Var {
	return Var{Key: k, Value: v}
}

type Env map[string]any

func (env Env) add(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// Load loads variables of the .env files found from dir upwards and of os.Environ, where os.Environ wins.
// Additional vars are added last and override both.
func Load(dir string, vars ...Var) Env {
	env := Env{}
	for k, v := range LoadDotenvFrom(dir) {
		env.add(k, v)
	}
	for _, osev := range os.Environ() {
		k, v, _ := strings.Cut(osev, "=")
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			env.add(k, true)
		} else {
			env.add(k, v)
		}
	}
	for _, v := range vars {
		env.add(v.Key, v.Value)
	}

	// expand all values to allow for "inline" string vars
	repl := env.Expander()
	for k, v := range env {
		if s, ok := v.(string); ok {
			env[k] = repl.Replace(s)
		}
	}
	return env
}

func (env Env) Expander() *strings.Replacer {
	var oldnew []string
	for k := range env {
		new, ok := env.String(k)
		if !ok {
			continue
		}
		oldnew = append(oldnew, fmt.Sprintf("{%s}", k), new)
	}
	return strings.NewReplacer(oldnew...)
}

// WithPrefix returns the variables whose key starts with prefix, with the prefix removed and the key lower-cased.
func (env Env) WithPrefix(prefix string) Env {
	sub := Env{}
	for k, v := range env {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			sub.add(strings.ToLower(rest), v)
		}
	}
	return sub
}

// Var returns the value for the passed key if exists, otherwise, false
func (env Env) Var(key string) (any, bool) {
	v, ok := env[key]
	if !ok {
		return nil, false
	}
	return v, true
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	v, ok := env[key]
	if !ok {
		return "", false
	}
	return convert.ToString(v), true
}

// Int returns the int-value for the passed key. The error is non-nil if the value exists but is not an int.
func (env Env) Int(key string) (int, bool, error) {
	v, ok := env[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := convert.ToInt(v)
	if !ok {
		return 0, true, fmt.Errorf("%s: %q is not an integer", key, convert.ToString(v))
	}
	return n, true, nil
}

// Bool returns the bool-value for the passed key. The error is non-nil if the value exists but is not a bool.
func (env Env) Bool(key string) (bool, bool, error) {
	v, ok := env[key]
	if !ok {
		return false, false, nil
	}
	b, ok := convert.ToBool(v)
	if !ok {
		return false, true, fmt.Errorf("%s: %q is not a boolean", key, convert.ToString(v))
	}
	return b, true, nil
}

// StringOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}
