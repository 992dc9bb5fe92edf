// Package openapi converts kin-openapi Swagger 2.0 documents into the
// [swaggervalidation.Document] model:
//
//	var doc openapi2.T
//	if err := json.Unmarshal(data, &doc); err != nil {
//	    return err
//	}
//	model, err := openapi.FromV2(&doc)
//	if err != nil {
//	    return err
//	}
//	validator, err := swaggervalidation.New(model)
//
// kin-openapi stores paths and properties in maps, so the converted document
// lists them in alphabetical order.
package openapi
