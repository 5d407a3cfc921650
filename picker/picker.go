package picker

import (
	"reflect"
	"sync"
	"sync/atomic"
)

var defaultPickKeys atomic.Pointer[[]string]

func init() {
	SetDefaultPickKeys("value")
}

// SetDefaultPickKeys 可与 Pick/GetDefaultPickKeys 并发调用；keys 会被复制。
func SetDefaultPickKeys(keys ...string) {
	ks := append([]string(nil), keys...)
	defaultPickKeys.Store(&ks)
}

// GetDefaultPickKeys 返回当前默认字段名，调用方不得修改。
func GetDefaultPickKeys() []string {
	return *defaultPickKeys.Load()
}

type structInfo struct {
	fieldMap map[string]int
}

var structCache sync.Map // map[reflect.Type]*structInfo

//go:nosplit
func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		b := make([]byte, len(s))
		b[0] = s[0] - 32
		copy(b[1:], s[1:])
		return string(b)
	}
	return s
}

// Pick 按 keys 顺序在 v 中找第一个存在的字段。
// 支持 map[string]any、map[string]string、任意 string 键的 map 以及结构体（及其指针）；
// 结构体按字段名、json tag、strtol tag 匹配。
func Pick(v any, keys []string) (any, bool) {
	if v == nil {
		return nil, false
	}

	// 快路径
	switch m := v.(type) {
	case map[string]any:
		for _, k := range keys {
			if val, ok := m[k]; ok {
				return val, true
			}
			if val, ok := m[capitalizeFirst(k)]; ok {
				return val, true
			}
		}
		return nil, false
	case map[string]string:
		for _, k := range keys {
			if val, ok := m[k]; ok {
				return val, true
			}
			if val, ok := m[capitalizeFirst(k)]; ok {
				return val, true
			}
		}
		return nil, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		for _, key := range keys {
			for _, k := range [...]string{key, capitalizeFirst(key)} {
				val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
				if val.IsValid() {
					return val.Interface(), true
				}
			}
		}
		return nil, false
	case reflect.Struct:
		si := loadStructInfo(rv.Type())
		for _, k := range keys {
			if idx, ok := si.fieldMap[k]; ok {
				return rv.Field(idx).Interface(), true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func loadStructInfo(rt reflect.Type) *structInfo {
	if cached, ok := structCache.Load(rt); ok {
		return cached.(*structInfo)
	}
	si := &structInfo{fieldMap: make(map[string]int, rt.NumField()*2)}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" { // 非导出
			continue
		}
		si.fieldMap[sf.Name] = i
		if name := tagName(sf.Tag.Get("json")); name != "" && name != "-" {
			si.fieldMap[name] = i
		}
		// strtol tag 优先级最高，最后写入
		if name := tagName(sf.Tag.Get("strtol")); name != "" && name != "-" {
			si.fieldMap[name] = i
		}
	}
	actual, _ := structCache.LoadOrStore(rt, si)
	return actual.(*structInfo)
}

//go:nosplit
func tagName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}
