// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to stamp firmware image",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "image":  path,
//	        "offset": offset,
//	    },
//	)
package errors
