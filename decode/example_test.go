package decode_test

import (
	"fmt"

	"github.com/godec-io/godec/decode"
)

func ExampleObject() {
	type user struct {
		Name  string
		Age   int
		Email *string
	}
	dec := decode.Object(func(g *decode.Getters) user {
		return user{
			Name:  decode.ReqField(g, "name", decode.Decoder[string](decode.String)),
			Age:   decode.ReqField(g, "age", decode.Decoder[int](decode.Int)),
			Email: decode.OptField(g, "email", decode.Decoder[string](decode.String)),
		}
	})
	u, err := decode.FromString(dec, `{"name":"Alice","age":30}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u.Name, u.Age, u.Email)
	// Output: Alice 30 <nil>
}

func ExampleField() {
	dec := decode.Field("user", decode.Field("name", decode.Decoder[string](decode.String)))
	name, _ := decode.FromString(dec, `{"user":{"name":"Alice"}}`)
	fmt.Println(name)
	// Output: Alice
}

func ExampleOneOf() {
	flexible := decode.OneOf(
		decode.Decoder[int](decode.Int),
		decode.Map(func(b bool) int {
			if b {
				return 1
			}
			return 0
		}, decode.Decoder[bool](decode.Bool)),
	)
	a, _ := decode.FromString(flexible, `7`)
	b, _ := decode.FromString(flexible, `true`)
	fmt.Println(a, b)
	// Output: 7 1
}

func ExampleList() {
	dec := decode.List(decode.Field("id", decode.Decoder[int](decode.Int)))
	ids, _ := decode.FromString(dec, `[{"id":1},{"id":2}]`)
	fmt.Println(ids)
	// Output: [1 2]
}

func ExampleFromString_failure() {
	_, err := decode.FromString(decode.Field("age", decode.Decoder[int](decode.Int)), `{"age":"old"}`)
	fmt.Println(err)
	// Output:
	// Error at: `$.age`
	// Expecting an int but instead got: "old"
}
