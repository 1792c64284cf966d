package auto

import (
	"reflect"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/godec-io/godec"
)

type recordField struct {
	name  string
	index int
	c     *coder
}

func jsonName(sf reflect.StructField, cs CaseStrategy) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, true
		}
	}
	return cs.Convert(sf.Name), true
}

// recordCoder maps a struct onto a JSON object, one member per exported
// field in declaration order. A nil option field is omitted on encode unless
// nulls are kept; on decode a missing member is an error unless the field's
// coder tolerates absence.
func (g *genCtx) recordCoder(t reflect.Type) *coder {
	fields := make([]recordField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name, ok := jsonName(sf, g.opts.cs)
		if !ok {
			continue
		}
		fields = append(fields, recordField{name: name, index: i, c: g.coderFor(sf.Type, false)})
	}
	keepNulls := g.opts.keepNulls
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			members := make([]godec.Member, 0, len(fields))
			for _, f := range fields {
				fv := rv.Field(f.index)
				if !keepNulls && f.c.optional && fv.Kind() == reflect.Ptr && fv.IsNil() {
					continue
				}
				members = append(members, godec.Pair(f.name, f.c.enc(fv)))
			}
			return godec.ObjOf(members)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.KindOf() != godec.KindObject {
				return reflect.Value{}, godec.BadType(path, "an object", v)
			}
			out := reflect.New(t).Elem()
			for _, f := range fields {
				fv, ok := v.Field(f.name)
				if !ok {
					if f.c.optional {
						continue
					}
					return reflect.Value{}, godec.BadField(path, "an object with a field named `"+f.name+"`", v)
				}
				x, fl := f.c.dec(godec.JoinField(path, f.name), fv)
				if fl != nil {
					return reflect.Value{}, fl
				}
				out.Field(f.index).Set(x)
			}
			return out, nil
		},
	}
}

// mapCoder picks the wire shape from the key type: keys with a natural
// string form become object members, anything else becomes an array of
// [key, value] pairs. Decoding a string-keyed map accepts both shapes.
func (g *genCtx) mapCoder(t reflect.Type) *coder {
	kt := t.Key()
	keyc := g.coderFor(kt, false)
	valc := g.coderFor(t.Elem(), false)
	if kt.Kind() == reflect.String || kt == uuidType {
		return stringKeyedMapCoder(t, kt, keyc, valc)
	}
	return pairKeyedMapCoder(t, keyc, valc)
}

func stringKeyedMapCoder(t, kt reflect.Type, keyc, valc *coder) *coder {
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			members := make([]godec.Member, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				members = append(members, godec.Pair(mapKeyString(iter.Key()), valc.enc(iter.Value())))
			}
			sort.Slice(members, func(i, j int) bool { return members[i].Key < members[j].Key })
			return godec.ObjOf(members)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.KindOf() == godec.KindArray {
				return decodeMapPairs(t, keyc, valc, path, v)
			}
			if v.KindOf() != godec.KindObject {
				return reflect.Value{}, godec.BadType(path, "an object", v)
			}
			out := reflect.MakeMapWithSize(t, v.Len())
			for _, m := range v.Members() {
				k, f := mapKeyFromString(kt, path, m.Key)
				if f != nil {
					return reflect.Value{}, f
				}
				x, f := valc.dec(godec.JoinField(path, m.Key), m.Value)
				if f != nil {
					return reflect.Value{}, f
				}
				out.SetMapIndex(k, x)
			}
			return out, nil
		},
	}
}

func mapKeyString(k reflect.Value) string {
	if k.Type() == uuidType {
		return k.Interface().(uuid.UUID).String()
	}
	return k.String()
}

func mapKeyFromString(kt reflect.Type, path, key string) (reflect.Value, *godec.Failure) {
	if kt == uuidType {
		id, err := uuid.Parse(key)
		if err != nil {
			return reflect.Value{}, godec.BadPrimitive(godec.JoinField(path, key), "a guid", godec.Str(key))
		}
		return reflect.ValueOf(id), nil
	}
	k := reflect.New(kt).Elem()
	k.SetString(key)
	return k, nil
}

func pairKeyedMapCoder(t reflect.Type, keyc, valc *coder) *coder {
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			pairs := make([]godec.Value, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				pairs = append(pairs, godec.Arr(keyc.enc(iter.Key()), valc.enc(iter.Value())))
			}
			sort.Slice(pairs, func(i, j int) bool {
				return pairs[i].At(0).String() < pairs[j].At(0).String()
			})
			return godec.ArrOf(pairs)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.KindOf() != godec.KindArray {
				return reflect.Value{}, godec.BadType(path, "an array of key/value pairs", v)
			}
			return decodeMapPairs(t, keyc, valc, path, v)
		},
	}
}

func decodeMapPairs(t reflect.Type, keyc, valc *coder, path string, v godec.Value) (reflect.Value, *godec.Failure) {
	out := reflect.MakeMapWithSize(t, v.Len())
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		ipath := godec.JoinIndex(path, i)
		if item.KindOf() != godec.KindArray {
			return reflect.Value{}, godec.BadType(ipath, "an array of length 2", item)
		}
		if item.Len() < 2 {
			return reflect.Value{}, godec.TooSmallArray(ipath, 1, item)
		}
		if item.Len() > 2 {
			return reflect.Value{}, godec.BadPrimitiveExtra(ipath, "an array of length 2", item, "The array has too many elements")
		}
		k, f := keyc.dec(godec.JoinIndex(ipath, 0), item.At(0))
		if f != nil {
			return reflect.Value{}, f
		}
		x, f := valc.dec(godec.JoinIndex(ipath, 1), item.At(1))
		if f != nil {
			return reflect.Value{}, f
		}
		out.SetMapIndex(k, x)
	}
	return out, nil
}
