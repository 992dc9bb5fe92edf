// Package transform normalizes decoded JSON values before they are validated,
// for example trimming every string of a request body. The functions fit
// [swaggervalidation.WithBodyTransform].
package transform
