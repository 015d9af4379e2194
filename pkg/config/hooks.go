package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// trimSpaceHookFunc trims strings, and the elements of string slices
// produced from comma-separated environment values
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		switch v := data.(type) {
		case string:
			if t.Kind() == reflect.String {
				return strings.TrimSpace(v), nil
			}
		case []string:
			out := make([]string, 0, len(v))
			for _, s := range v {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
			return out, nil
		}
		return data, nil
	}
}
