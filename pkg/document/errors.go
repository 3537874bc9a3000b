package document

import "errors"

var (
	ErrFragmentCollision    = errors.New("fragment collision")
	ErrUnsupportedMethod    = errors.New("unsupported method")
	ErrDuplicateSchema      = errors.New("schema already declared with a different definition")
	ErrMissingPathParameter = errors.New("path placeholder has no parameter")
	ErrUnknownPathParameter = errors.New("path parameter has no placeholder")
	ErrUnresolvedRef        = errors.New("unresolved schema reference")
	ErrInvalidExample       = errors.New("example does not match schema")
	ErrNoResponses          = errors.New("operation declares no responses")
	ErrNoSecurityScheme     = errors.New("authenticated operation without a security scheme")
)
