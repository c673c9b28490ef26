package dialog

import (
	"encoding/json"
	"slices"
)

// GetInt после JSON числа приходят как float64, до сохранения как int.
func GetInt(p Payload, key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func GetStrings(p Payload, key string) []string {
	switch v := p[key].(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Toggle добавляет имя в конец списка или убирает его, если оно уже выбрано.
func Toggle(p Payload, key, name string) []string {
	list := GetStrings(p, key)
	if i := slices.Index(list, name); i >= 0 {
		list = slices.Delete(list, i, i+1)
	} else {
		list = append(list, name)
	}
	p[key] = list
	return list
}

// Put кладёт значение в том же виде, в каком оно вернётся из БД.
func Put(p Payload, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	p[key] = generic
	return nil
}

// Decode обратная операция к Put; отсутствующий ключ оставляет dst без изменений.
func Decode(p Payload, key string, dst any) error {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
