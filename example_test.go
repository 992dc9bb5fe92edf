package swaggervalidation_test

import (
	"fmt"

	v "github.com/Gobd/swaggervalidation"
)

func userDocument() *v.Document {
	return &v.Document{
		Definitions: map[string]*v.Schema{
			"User": {
				Type:     v.TypeObject,
				Required: []string{"name", "email"},
				Properties: []v.Property{
					{Name: "name", Schema: &v.Schema{Type: v.TypeString, MinLength: v.Int(1), MaxLength: v.Int(100)}},
					{Name: "email", Schema: &v.Schema{Type: v.TypeString, Format: "email"}},
					{Name: "age", Schema: &v.Schema{Type: v.TypeInteger, Minimum: v.Float(0), Maximum: v.Float(150)}},
				},
			},
		},
		Paths: []*v.PathItem{{
			Template: "/users/{id}",
			Operations: map[string]*v.Operation{
				"put": {
					ID: "updateUser",
					Parameters: []*v.Parameter{
						{
							Name:       "id",
							In:         v.InPath,
							Required:   true,
							DataType:   &v.Schema{Type: v.TypeInteger, Minimum: v.Float(1)},
							Extensions: v.Extensions{v.ExtCoerce: true},
						},
						{Name: "user", In: v.InBody, Required: true, Schema: &v.Schema{Ref: "#/definitions/User"}},
					},
				},
			},
		}},
	}
}

func ExampleValidator_ValidateRequest() {
	validator, err := v.New(userDocument())
	if err != nil {
		fmt.Println(err)
		return
	}

	req := &v.Request{
		Method: "PUT",
		Path:   "/users/42",
		Body:   map[string]any{"name": "Alice", "email": "alice@example.com", "age": 30.0},
	}
	if err := validator.ValidateRequest(req); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%T %v\n", req.PathParams["id"], req.PathParams["id"])
	// Output: int64 42
}

func ExampleValidator_ValidateRequest_error() {
	validator, err := v.New(userDocument())
	if err != nil {
		fmt.Println(err)
		return
	}

	req := &v.Request{
		Method: "PUT",
		Path:   "/users/0",
		Body:   map[string]any{"name": "", "email": "alice", "age": -1.0},
	}
	err = validator.ValidateRequest(req)
	if set, ok := err.(*v.ValidationErrors); ok {
		for _, e := range set.Errors {
			fmt.Println(e.Code, e.Message)
		}
	}
	// Output:
	// BELOW_MINIMUM The value in "id" must be greater than or equal to "1" > "0"
	// MINLENGTH The value in "User.name" must be at least "1" characters long
	// INVALID_FORMAT The value in "User.email" must be in the format "email"
	// BELOW_MINIMUM The value in "User.age" must be greater than or equal to "0" > "-1"
}

func ExampleValidator_ValidateSchema() {
	validator, err := v.New(&v.Document{})
	if err != nil {
		fmt.Println(err)
		return
	}

	node := &v.Schema{
		Type:             v.TypeArray,
		CollectionFormat: v.CollectionPipes,
		Items:            &v.Schema{Type: v.TypeInteger, Extensions: v.Extensions{v.ExtCoerce: true}},
	}
	out, errs := validator.ValidateSchema("3|1|2", node, "ids")
	fmt.Println(out, len(errs))
	// Output: [3 1 2] 0
}
