package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs
// (relative to it), then lets environment variables override any key.
// SECTION_FIELD_NAME style variables are matched against the YAML keys
// ignoring case and separators, so BACKEND_BASE_URL sets backend.baseUrl.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromFile := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return envKeyPath(key, fromFile), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoderConfig(out)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func locate(filename string, dirs []string) (string, error) {
	candidates := []string{filename}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir, filename))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found (looked in %s)", filename, strings.Join(candidates, ", "))
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName: strings.EqualFold,
	}
}

// envKeyPath turns an environment variable name into a koanf key path,
// reusing the spelling of existing YAML keys where one matches.
func envKeyPath(name string, tree map[string]any) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(words))

	for i := 0; i < len(words); {
		key, child, used := matchKey(tree, words[i:])
		if used == 0 {
			key, child, used = words[i], nil, 1
		}
		path = append(path, key)
		tree = child
		i += used
	}

	return strings.Join(path, ".")
}

// matchKey finds the key of tree spelled by the longest run of leading words,
// so that both BACKEND_BASEURL and BACKEND_BASE_URL reach "baseUrl".
func matchKey(tree map[string]any, words []string) (key string, child map[string]any, used int) {
	if len(tree) == 0 {
		return "", nil, 0
	}

	index := make(map[string]string, len(tree))
	for k := range tree {
		index[squash(k)] = k
	}

	for n := len(words); n > 0; n-- {
		if k, ok := index[strings.Join(words[:n], "")]; ok {
			child, _ = tree[k].(map[string]any)

			return k, child, n
		}
	}

	return "", nil, 0
}

// squash lowercases s and drops everything but letters and digits.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
