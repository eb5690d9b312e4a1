package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/scaffold/compiler/editor"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

// Sentinel errors for common failure cases. The leaf packages own the
// sentinels of their failures; they are re-exported here so callers can
// match every failure against one package.
var (
	// ErrInvalidFieldDefinition indicates a malformed schema segment.
	ErrInvalidFieldDefinition = field.ErrInvalidFieldDefinition
	// ErrDuplicateFieldName indicates a field declared twice in one schema.
	ErrDuplicateFieldName = field.ErrDuplicateFieldName
	// ErrTemplateNotFound indicates a stub missing from every source.
	ErrTemplateNotFound = stub.ErrTemplateNotFound
	// ErrWriteConflict indicates an existing file that was not overwritten.
	ErrWriteConflict = writer.ErrWriteConflict
	// ErrMergeTargetMissing indicates a missing aggregate file.
	ErrMergeTargetMissing = writer.ErrMergeTargetMissing
	// ErrStructuralPatchFailed indicates an anchor missing from an aggregate file.
	ErrStructuralPatchFailed = editor.ErrStructuralPatchFailed

	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("scaffold: invalid configuration")
	// ErrInvalidRequest indicates a generation request that cannot be served.
	ErrInvalidRequest = errors.New("scaffold: invalid request")
	// ErrGenerationFailed indicates an artifact that could not be generated.
	ErrGenerationFailed = errors.New("scaffold: generation failed")
	// ErrRollbackAborted indicates a rollback that was not confirmed.
	ErrRollbackAborted = errors.New("scaffold: rollback aborted")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("scaffold: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("scaffold: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// RequestError represents an invalid generation request.
type RequestError struct {
	Entity  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString("scaffold: request error")
	if e.Entity != "" {
		b.WriteString(" for ")
		b.WriteString(e.Entity)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RequestError.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewRequestError creates a new RequestError.
func NewRequestError(entity, message string, cause error) *RequestError {
	return &RequestError{Entity: entity, Message: message, Cause: cause}
}

// GenerationError represents the failure of one artifact kind.
type GenerationError struct {
	Kind    Kind
	Entity  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("scaffold: generation error")
	if e.Kind.Valid() {
		b.WriteString(" in ")
		b.WriteString(e.Kind.String())
	}
	if e.Entity != "" {
		b.WriteString(" for ")
		b.WriteString(e.Entity)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(kind Kind, entity, message string, cause error) *GenerationError {
	return &GenerationError{
		Kind:    kind,
		Entity:  entity,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsRequestError reports whether the error is a RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsFieldError reports whether the error is a schema parse error.
func IsFieldError(err error) bool {
	var parseErr *field.ParseError
	return errors.As(err, &parseErr)
}

// IsStructural reports whether err is a structural failure: a schema that
// cannot be parsed, a stub missing from every source, or an invalid
// configuration or request.
func IsStructural(err error) bool {
	for _, target := range []error{
		ErrInvalidFieldDefinition,
		ErrDuplicateFieldName,
		ErrTemplateNotFound,
		ErrInvalidConfig,
		ErrInvalidRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
